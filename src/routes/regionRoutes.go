package routes

import (
	"github.com/AdventureLog/worldtravel-backend/src/controllers"
	"github.com/AdventureLog/worldtravel-backend/src/dtos"
	"github.com/AdventureLog/worldtravel-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupRegionRoutes(router *gin.Engine, service *services.RegionService, serializer *dtos.Serializer) {
	regionController := controllers.NewRegionController(service, serializer)

	// Public routes
	region := router.Group("/regions")
	{
		region.GET("/", regionController.GetRegions)
		region.GET("/:id", regionController.GetRegionByID)
	}
}
