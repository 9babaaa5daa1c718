package services

import (
	"github.com/AdventureLog/worldtravel-backend/src/models"
	"gorm.io/gorm"
)

type CountryService struct {
	db *gorm.DB
}

// NewCountryService creates a new instance of CountryService
func NewCountryService(db *gorm.DB) *CountryService {
	return &CountryService{db: db}
}

// GetAllCountries retrieves all country records ordered by name
func (s *CountryService) GetAllCountries() ([]models.CountryModel, error) {
	var countries []models.CountryModel
	result := s.db.Order("name").Find(&countries)
	if result.Error != nil {
		return nil, result.Error
	}
	return countries, nil
}

// GetCountryByCode retrieves a Country record by its ISO code
func (s *CountryService) GetCountryByCode(code string) (*models.CountryModel, error) {
	var country models.CountryModel
	result := s.db.Where("country_code = ?", code).First(&country)
	if result.Error != nil {
		return nil, result.Error
	}
	return &country, nil
}

// GetRegionsByCountry retrieves every region of the country with the given code
func (s *CountryService) GetRegionsByCountry(code string) ([]models.RegionModel, error) {
	country, err := s.GetCountryByCode(code)
	if err != nil {
		return nil, err
	}
	var regions []models.RegionModel
	result := s.db.Where("country_id = ?", country.ID).Order("name").Find(&regions)
	if result.Error != nil {
		return nil, result.Error
	}
	return regions, nil
}
