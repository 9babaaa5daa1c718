package routes

import (
	"github.com/AdventureLog/worldtravel-backend/src/controllers"
	"github.com/AdventureLog/worldtravel-backend/src/dtos"
	"github.com/AdventureLog/worldtravel-backend/src/middleware"
	"github.com/AdventureLog/worldtravel-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupVisitedRegionRoutes(router *gin.Engine, service *services.VisitedRegionService, serializer *dtos.Serializer, secret string) {
	visitedController := controllers.NewVisitedRegionController(service, serializer)

	// Protected routes
	visited := router.Group("/visitedregions")
	visited.Use(middleware.AuthMiddleware(secret))
	{
		visited.GET("/", visitedController.GetVisitedRegions)
		visited.POST("/", visitedController.CreateVisitedRegion)
		visited.DELETE("/:id", visitedController.DeleteVisitedRegion)
	}
}
