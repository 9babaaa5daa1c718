package controllers

import (
	"net/http"

	"github.com/AdventureLog/worldtravel-backend/src/dtos"
	"github.com/AdventureLog/worldtravel-backend/src/services"
	"github.com/gin-gonic/gin"
)

type RegionController struct {
	service    *services.RegionService
	serializer *dtos.Serializer
}

func NewRegionController(service *services.RegionService, serializer *dtos.Serializer) *RegionController {
	return &RegionController{service: service, serializer: serializer}
}

// GetRegions handles GET requests to retrieve all region records
func (c *RegionController) GetRegions(ctx *gin.Context) {
	regions, err := c.service.GetAllRegions()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, c.serializer.Regions(regions))
}

// GetRegionByID handles GET requests to retrieve a single region
func (c *RegionController) GetRegionByID(ctx *gin.Context) {
	region, err := c.service.GetRegionByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, c.serializer.Region(*region))
}
