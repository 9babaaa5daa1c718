package controllers

import (
	"net/http"
	"strconv"

	"github.com/AdventureLog/worldtravel-backend/src/dtos"
	"github.com/AdventureLog/worldtravel-backend/src/middleware"
	"github.com/AdventureLog/worldtravel-backend/src/services"
	"github.com/gin-gonic/gin"
)

type VisitedRegionController struct {
	service    *services.VisitedRegionService
	serializer *dtos.Serializer
}

type createVisitedRegionRequest struct {
	Region string `json:"region" binding:"required"`
}

func NewVisitedRegionController(service *services.VisitedRegionService, serializer *dtos.Serializer) *VisitedRegionController {
	return &VisitedRegionController{service: service, serializer: serializer}
}

// GetVisitedRegions handles GET requests for the caller's visited regions
func (c *VisitedRegionController) GetVisitedRegions(ctx *gin.Context) {
	visits, err := c.service.GetVisitedRegions(middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, c.serializer.VisitedRegions(visits))
}

// CreateVisitedRegion handles POST requests marking a region as visited
func (c *VisitedRegionController) CreateVisitedRegion(ctx *gin.Context) {
	var req createVisitedRegionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	visit, err := c.service.CreateVisitedRegion(middleware.UserID(ctx), req.Region)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, c.serializer.VisitedRegion(*visit))
}

// DeleteVisitedRegion handles DELETE requests removing a visit by ID
func (c *VisitedRegionController) DeleteVisitedRegion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}
	if err := c.service.DeleteVisitedRegion(middleware.UserID(ctx), uint(id)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
