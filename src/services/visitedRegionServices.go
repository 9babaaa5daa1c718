package services

import (
	"errors"
	"fmt"

	"github.com/AdventureLog/worldtravel-backend/src/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyVisited = errors.New("region already marked as visited")
)

type VisitedRegionService struct {
	db *gorm.DB
}

// NewVisitedRegionService creates a new instance of VisitedRegionService
func NewVisitedRegionService(db *gorm.DB) *VisitedRegionService {
	return &VisitedRegionService{db: db}
}

// GetVisitedRegions retrieves the regions a user has visited
func (s *VisitedRegionService) GetVisitedRegions(userID string) ([]models.VisitedRegionModel, error) {
	var visits []models.VisitedRegionModel
	result := s.db.Where("user_id = ?", userID).Order("id").Find(&visits)
	if result.Error != nil {
		return nil, result.Error
	}
	return visits, nil
}

// CreateVisitedRegion marks a region as visited by a user
func (s *VisitedRegionService) CreateVisitedRegion(userID, regionID string) (*models.VisitedRegionModel, error) {
	var visit *models.VisitedRegionModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var regions int64
		if err := tx.Model(&models.RegionModel{}).Where("id = ?", regionID).Count(&regions).Error; err != nil {
			return err
		}
		if regions == 0 {
			return fmt.Errorf("region %s: %w", regionID, ErrNotFound)
		}

		var existing int64
		if err := tx.Model(&models.VisitedRegionModel{}).Where("user_id = ? AND region_id = ?", userID, regionID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyVisited
		}

		visit = &models.VisitedRegionModel{UserID: userID, RegionID: regionID}
		return tx.Omit("Region").Create(visit).Error
	})
	if err != nil {
		return nil, err
	}
	return visit, nil
}

// DeleteVisitedRegion removes one of the user's visits
func (s *VisitedRegionService) DeleteVisitedRegion(userID string, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.VisitedRegionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
