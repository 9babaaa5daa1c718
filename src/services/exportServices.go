package services

import (
	"fmt"
	"io"

	"github.com/AdventureLog/worldtravel-backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	countriesSheet = "Countries"
	regionsSheet   = "Regions"
)

type ExportService struct {
	db *gorm.DB
}

// NewExportService creates a new instance of ExportService
func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

// WriteCatalog writes every country and region as an xlsx workbook to w
func (s *ExportService) WriteCatalog(w io.Writer) error {
	var countries []models.CountryModel
	if err := s.db.Order("name").Find(&countries).Error; err != nil {
		return err
	}
	var regions []models.RegionModel
	if err := s.db.Preload("Country").Order("id").Find(&regions).Error; err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", countriesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(regionsSheet); err != nil {
		return err
	}

	rows := [][]any{{"Code", "Name", "Continent"}}
	for _, c := range countries {
		rows = append(rows, []any{c.CountryCode, c.Name, c.Continent})
	}
	if err := writeRows(f, countriesSheet, rows); err != nil {
		return err
	}

	rows = [][]any{{"ID", "Name", "English name", "Country", "Has geometry"}}
	for _, r := range regions {
		rows = append(rows, []any{r.ID, r.Name, r.NameEn, r.Country.CountryCode, hasGeometry(r)})
	}
	if err := writeRows(f, regionsSheet, rows); err != nil {
		return err
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func hasGeometry(r models.RegionModel) string {
	if r.Geometry != nil {
		return "yes"
	}
	return "no"
}
