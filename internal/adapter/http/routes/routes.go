package routes

import (
	"context"
	"net/http"
	"os"
	"strconv"

	_ "pawnshop/docs" // swagger registration
	"pawnshop/internal/adapter/feed"
	"pawnshop/internal/adapter/http/handlers"
	"pawnshop/internal/adapter/http/middleware"
	repository2 "pawnshop/internal/adapter/persistence/repository"
	"pawnshop/internal/infrastructure/database"
	"pawnshop/internal/infrastructure/logging"
	"pawnshop/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const defaultPort = 8080

// Run wires the service together and starts the server.
func Run() {
	log := logging.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer func() { _ = log.Sync() }()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := registerRoutes(log); err != nil {
		log.Fatal("failed to wire the application", zap.Error(err))
	}

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal("failed to start the server", zap.Error(err))
	}
}

func registerRoutes(log *zap.Logger) error {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}
	rdb, err := database.ConnectRedis(ctx)
	if err != nil {
		return err
	}

	applicationRepo := repository2.NewApplicationDynamoRepository(ddb)
	identityResolver := repository2.NewUserDynamoRepository(ddb)
	changeFeed := feed.NewRedisChangeFeed(rdb, log)

	applicationUseCase := usecase.NewApplicationUseCase(applicationRepo, changeFeed, log)
	watchUseCase := usecase.NewWatchUseCase(applicationRepo, changeFeed, log)

	applicationHandler := handlers.NewApplicationHandler(applicationUseCase, watchUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authenticated := v1.Group("")
	authenticated.Use(middleware.Identity(identityResolver))
	addApplicationRoutes(authenticated, applicationHandler)

	return nil
}

func setMiddlewares(log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
