package dtos

import (
	"strings"
	"time"

	"github.com/AdventureLog/worldtravel-backend/src/models"
)

type CountryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	Continent   string `json:"continent"`
	FlagURL     string `json:"flag_url"`
}

type RegionDTO struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	NameEn   string               `json:"name_en"`
	Country  uint                 `json:"country"`
	Geometry *models.MultiPolygon `json:"geometry"`
}

type VisitedRegionDTO struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"user_id"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
}

// FlagURL builds the public address of a country's flag image.
func FlagURL(publicURL, countryCode string) string {
	base := strings.ReplaceAll(strings.TrimRight(publicURL, "/"), "'", "")
	return base + "/media/flags/" + countryCode + ".png"
}

// Serializer renders database rows as API payloads.
type Serializer struct {
	PublicURL string
}

func NewSerializer(publicURL string) *Serializer {
	return &Serializer{PublicURL: publicURL}
}

func (s *Serializer) Country(c models.CountryModel) CountryDTO {
	return CountryDTO{
		ID:          c.ID,
		Name:        c.Name,
		CountryCode: c.CountryCode,
		Continent:   c.Continent,
		FlagURL:     FlagURL(s.PublicURL, c.CountryCode),
	}
}

func (s *Serializer) Countries(countries []models.CountryModel) []CountryDTO {
	out := make([]CountryDTO, len(countries))
	for i, c := range countries {
		out[i] = s.Country(c)
	}
	return out
}

func (s *Serializer) Region(r models.RegionModel) RegionDTO {
	return RegionDTO{
		ID:       r.ID,
		Name:     r.Name,
		NameEn:   r.NameEn,
		Country:  r.CountryID,
		Geometry: r.Geometry,
	}
}

func (s *Serializer) Regions(regions []models.RegionModel) []RegionDTO {
	out := make([]RegionDTO, len(regions))
	for i, r := range regions {
		out[i] = s.Region(r)
	}
	return out
}

func (s *Serializer) VisitedRegion(v models.VisitedRegionModel) VisitedRegionDTO {
	return VisitedRegionDTO{
		ID:        v.ID,
		UserID:    v.UserID,
		Region:    v.RegionID,
		CreatedAt: v.CreatedAt,
	}
}

func (s *Serializer) VisitedRegions(visits []models.VisitedRegionModel) []VisitedRegionDTO {
	out := make([]VisitedRegionDTO, len(visits))
	for i, v := range visits {
		out[i] = s.VisitedRegion(v)
	}
	return out
}
