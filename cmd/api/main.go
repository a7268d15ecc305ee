package main

import (
	_ "pawnshop/docs"
	"pawnshop/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pawn Application Service API
// @version         1.0
// @description     Pawn application lifecycle (submission, pricing, confirmation) with live snapshot streams, backed by DynamoDB and Redis.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the user id token.

func main() {
	routes.Run()
}
