package routes

import (
	"pawnshop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathApplications = "/applications"

func addApplicationRoutes(rg *gin.RouterGroup, applicationHandler *handlers.ApplicationHandler) {
	applications := rg.Group(PathApplications)
	{
		applications.POST("", applicationHandler.Submit)
		applications.GET("", applicationHandler.List)
		applications.GET("/watch", applicationHandler.WatchCollection)
		applications.GET("/:id", applicationHandler.GetByID)
		applications.GET("/:id/watch", applicationHandler.WatchByID)
		applications.PATCH("/:id/price", applicationHandler.Price)
		applications.PATCH("/:id/confirm", applicationHandler.Confirm)
		applications.PATCH("/:id/decline", applicationHandler.Decline)
	}
}
