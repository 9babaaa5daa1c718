package services

import (
	"github.com/AdventureLog/worldtravel-backend/src/models"
	"gorm.io/gorm"
)

type RegionService struct {
	db *gorm.DB
}

// NewRegionService creates a new instance of RegionService
func NewRegionService(db *gorm.DB) *RegionService {
	return &RegionService{db: db}
}

// GetAllRegions retrieves all Region records from the database
func (s *RegionService) GetAllRegions() ([]models.RegionModel, error) {
	var regions []models.RegionModel
	result := s.db.Order("id").Find(&regions)
	if result.Error != nil {
		return nil, result.Error
	}
	return regions, nil
}

// GetRegionByID retrieves a Region record by its ISO 3166-2 id
func (s *RegionService) GetRegionByID(id string) (*models.RegionModel, error) {
	var region models.RegionModel
	result := s.db.First(&region, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &region, nil
}
