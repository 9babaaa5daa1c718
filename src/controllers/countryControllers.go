package controllers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/AdventureLog/worldtravel-backend/src/dtos"
	"github.com/AdventureLog/worldtravel-backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CountryController struct {
	service    *services.CountryService
	export     *services.ExportService
	serializer *dtos.Serializer
}

func NewCountryController(service *services.CountryService, export *services.ExportService, serializer *dtos.Serializer) *CountryController {
	return &CountryController{service: service, export: export, serializer: serializer}
}

// GetAllCountries handles GET requests to retrieve all country records
func (c *CountryController) GetAllCountries(ctx *gin.Context) {
	countries, err := c.service.GetAllCountries()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, c.serializer.Countries(countries))
}

// GetCountryByCode handles GET requests to retrieve one country by ISO code
func (c *CountryController) GetCountryByCode(ctx *gin.Context) {
	country, err := c.service.GetCountryByCode(ctx.Param("code"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, c.serializer.Country(*country))
}

// GetCountryRegions handles GET requests to list the regions of a country
func (c *CountryController) GetCountryRegions(ctx *gin.Context) {
	regions, err := c.service.GetRegionsByCountry(ctx.Param("code"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, c.serializer.Regions(regions))
}

// ExportCatalog handles GET requests to download countries and regions as xlsx
func (c *CountryController) ExportCatalog(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.export.WriteCatalog(&buf); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="worldtravel.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// respondError maps service errors onto HTTP status codes
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyVisited):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
