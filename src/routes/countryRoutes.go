package routes

import (
	"github.com/AdventureLog/worldtravel-backend/src/controllers"
	"github.com/AdventureLog/worldtravel-backend/src/dtos"
	"github.com/AdventureLog/worldtravel-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCountriesRoutes(router *gin.Engine, service *services.CountryService, export *services.ExportService, serializer *dtos.Serializer) {
	countryController := controllers.NewCountryController(service, export, serializer)

	// Public routes
	country := router.Group("/countries")
	{
		country.GET("/", countryController.GetAllCountries)
		country.GET("/export", countryController.ExportCatalog)
		country.GET("/:code", countryController.GetCountryByCode)
		country.GET("/:code/regions", countryController.GetCountryRegions)
	}
}
