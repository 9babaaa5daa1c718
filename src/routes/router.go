package routes

import (
	"net/http"
	"path/filepath"

	"github.com/AdventureLog/worldtravel-backend/src/config"
	"github.com/AdventureLog/worldtravel-backend/src/dtos"
	"github.com/AdventureLog/worldtravel-backend/src/middleware"
	"github.com/AdventureLog/worldtravel-backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires every worldtravel route onto a fresh gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.AllowedOrigins))

	serializer := dtos.NewSerializer(cfg.PublicURL)

	SetupCountriesRoutes(router, services.NewCountryService(db), services.NewExportService(db), serializer)
	SetupRegionRoutes(router, services.NewRegionService(db), serializer)
	SetupVisitedRegionRoutes(router, services.NewVisitedRegionService(db), serializer, cfg.JWTSecret)

	// Flags downloaded by the seeder, matching dtos.FlagURL.
	router.Static("/media/flags", filepath.Clean(cfg.FlagsDir()))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "worldtravel API")
	})

	return router
}
