package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AdventureLog/worldtravel-backend/src/catalog"
	"github.com/AdventureLog/worldtravel-backend/src/models"
	"gorm.io/gorm"
)

// ErrCountryNotFound is returned when a region references a country that has
// no row. It aborts the whole seeding transaction.
var ErrCountryNotFound = errors.New("country not found")

// UpsertPolicy decides what happens to rows that already exist.
type UpsertPolicy int

const (
	// CreateOrSkip inserts missing rows and leaves existing ones untouched.
	CreateOrSkip UpsertPolicy = iota
	// CreateOrUpdate also overwrites existing rows and deletes rows that are
	// no longer listed.
	CreateOrUpdate
)

// PolicyFor maps the --force flag onto a policy.
func PolicyFor(force bool) UpsertPolicy {
	if force {
		return CreateOrUpdate
	}
	return CreateOrSkip
}

func (p UpsertPolicy) String() string {
	if p == CreateOrUpdate {
		return "sync"
	}
	return "insert"
}

type outcome int

const (
	unchanged outcome = iota
	created
	updated
)

// Counts tallies what happened to one table.
type Counts struct {
	Created   int
	Updated   int
	Unchanged int
	Deleted   int
}

func (c *Counts) add(o outcome) {
	switch o {
	case created:
		c.Created++
	case updated:
		c.Updated++
	default:
		c.Unchanged++
	}
}

// Result summarises a seeding run.
type Result struct {
	Skipped         bool
	Policy          UpsertPolicy
	Countries       Counts
	Regions         Counts
	VisitedDeleted  int
	FlagsDownloaded int
	FlagsCached     int
	FlagsFailed     int
	Geometries      int
}

// Flags saves the flag image for a country code.
type Flags interface {
	Save(ctx context.Context, code string) (FlagResult, error)
}

// Geometry attaches a boundary to a region row inside tx.
type Geometry interface {
	Attach(tx *gorm.DB, regionID string) (bool, error)
}

type Seeder struct {
	db       *gorm.DB
	catalog  *catalog.Catalog
	flags    Flags
	geometry Geometry
	logger   *slog.Logger
}

func New(db *gorm.DB, c *catalog.Catalog, flags Flags, geometry Geometry, logger *slog.Logger) *Seeder {
	return &Seeder{db: db, catalog: c, flags: flags, geometry: geometry, logger: logger}
}

// Run seeds countries and regions in a single transaction. Without force it
// does nothing if any country or region already exists. With force, rows not
// listed in the catalog are deleted and listed rows are overwritten. Any
// error rolls the whole run back.
func (s *Seeder) Run(ctx context.Context, force bool) (Result, error) {
	res := Result{Policy: PolicyFor(force)}
	db := s.db.WithContext(ctx)

	if !force {
		exists, err := s.hasData(db)
		if err != nil {
			return res, err
		}
		if exists {
			s.logger.Warn("Countries or regions already exist in the database. Use --force to override.")
			res.Skipped = true
			return res, nil
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if res.Policy == CreateOrUpdate {
			if err := s.deleteStale(tx, &res); err != nil {
				return err
			}
		}
		if err := s.seedCountries(ctx, tx, res.Policy, &res); err != nil {
			return err
		}
		return s.seedRegions(tx, res.Policy, &res)
	})
	if err != nil {
		return Result{Policy: res.Policy}, err
	}

	s.logger.Info("Successfully imported world travel data",
		"mode", res.Policy,
		"countries_created", res.Countries.Created,
		"countries_updated", res.Countries.Updated,
		"countries_deleted", res.Countries.Deleted,
		"regions_created", res.Regions.Created,
		"regions_updated", res.Regions.Updated,
		"regions_deleted", res.Regions.Deleted,
		"flags_downloaded", res.FlagsDownloaded,
		"flags_failed", res.FlagsFailed,
		"geometries", res.Geometries,
	)
	return res, nil
}

func (s *Seeder) hasData(db *gorm.DB) (bool, error) {
	var countries, regions int64
	if err := db.Model(&models.CountryModel{}).Count(&countries).Error; err != nil {
		return false, fmt.Errorf("count countries: %w", err)
	}
	if err := db.Model(&models.RegionModel{}).Count(&regions).Error; err != nil {
		return false, fmt.Errorf("count regions: %w", err)
	}
	return countries > 0 || regions > 0, nil
}

// deleteStale removes countries and regions missing from the catalog.
// Deleting a country deletes its regions, and deleting a region deletes the
// visits recorded for it.
func (s *Seeder) deleteStale(tx *gorm.DB, res *Result) error {
	var staleCountries []uint
	if err := notIn(tx.Model(&models.CountryModel{}), "country_code", s.catalog.CountryCodes()).
		Pluck("id", &staleCountries).Error; err != nil {
		return fmt.Errorf("find stale countries: %w", err)
	}

	query := tx.Model(&models.RegionModel{})
	if regionIDs := s.catalog.RegionIDs(); len(regionIDs) > 0 {
		query = query.Where("id NOT IN ?", regionIDs)
		if len(staleCountries) > 0 {
			query = query.Or("country_id IN ?", staleCountries)
		}
	}
	var staleRegions []string
	if err := query.Pluck("id", &staleRegions).Error; err != nil {
		return fmt.Errorf("find stale regions: %w", err)
	}

	if len(staleRegions) > 0 {
		visits := tx.Where("region_id IN ?", staleRegions).Delete(&models.VisitedRegionModel{})
		if visits.Error != nil {
			return fmt.Errorf("delete visited regions: %w", visits.Error)
		}
		res.VisitedDeleted = int(visits.RowsAffected)

		regions := tx.Where("id IN ?", staleRegions).Delete(&models.RegionModel{})
		if regions.Error != nil {
			return fmt.Errorf("delete regions: %w", regions.Error)
		}
		res.Regions.Deleted = int(regions.RowsAffected)
	}

	if len(staleCountries) > 0 {
		countries := tx.Where("id IN ?", staleCountries).Delete(&models.CountryModel{})
		if countries.Error != nil {
			return fmt.Errorf("delete countries: %w", countries.Error)
		}
		res.Countries.Deleted = int(countries.RowsAffected)
	}

	if res.Countries.Deleted > 0 || res.Regions.Deleted > 0 {
		s.logger.Info("Deleted stale rows", "countries", res.Countries.Deleted, "regions", res.Regions.Deleted, "visits", res.VisitedDeleted)
	}
	return nil
}

func (s *Seeder) seedCountries(ctx context.Context, tx *gorm.DB, policy UpsertPolicy, res *Result) error {
	for _, country := range s.catalog.Countries {
		o, err := upsertCountry(tx, country, policy)
		if err != nil {
			return err
		}
		res.Countries.add(o)
		s.logOutcome(o, country.Name, "countries")

		flag, err := s.flags.Save(ctx, country.Code)
		if err != nil {
			s.logger.Warn("Error saving flag", "country", country.Code, "err", err)
		}
		switch flag {
		case FlagDownloaded:
			res.FlagsDownloaded++
		case FlagCached:
			res.FlagsCached++
		default:
			res.FlagsFailed++
		}
	}
	return nil
}

func (s *Seeder) seedRegions(tx *gorm.DB, policy UpsertPolicy, res *Result) error {
	countryIDs := make(map[string]uint)
	for _, region := range s.catalog.Regions {
		countryID, ok := countryIDs[region.Country]
		if !ok {
			var country models.CountryModel
			result := tx.Where("country_code = ?", region.Country).Limit(1).Find(&country)
			if result.Error != nil {
				return fmt.Errorf("look up country %s: %w", region.Country, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %q referenced by region %s", ErrCountryNotFound, region.Country, region.ID)
			}
			countryID = country.ID
			countryIDs[region.Country] = countryID
		}

		o, err := upsertRegion(tx, region, countryID, policy)
		if err != nil {
			return err
		}
		res.Regions.add(o)
		s.logOutcome(o, region.Name, "regions")

		attached, err := s.geometry.Attach(tx, region.ID)
		if err != nil {
			return err
		}
		if attached {
			res.Geometries++
		}
	}
	return nil
}

func upsertCountry(tx *gorm.DB, c catalog.Country, policy UpsertPolicy) (outcome, error) {
	var existing models.CountryModel
	result := tx.Where("country_code = ?", c.Code).Limit(1).Find(&existing)
	if result.Error != nil {
		return unchanged, fmt.Errorf("look up country %s: %w", c.Code, result.Error)
	}

	if result.RowsAffected == 0 {
		row := models.CountryModel{CountryCode: c.Code, Name: c.Name, Continent: c.Continent}
		if err := tx.Create(&row).Error; err != nil {
			return unchanged, fmt.Errorf("create country %s: %w", c.Code, err)
		}
		return created, nil
	}

	if policy == CreateOrSkip {
		return unchanged, nil
	}
	if err := tx.Model(&existing).Updates(map[string]any{"name": c.Name, "continent": c.Continent}).Error; err != nil {
		return unchanged, fmt.Errorf("update country %s: %w", c.Code, err)
	}
	return updated, nil
}

func upsertRegion(tx *gorm.DB, r catalog.Region, countryID uint, policy UpsertPolicy) (outcome, error) {
	var existing models.RegionModel
	result := tx.Where("id = ?", r.ID).Limit(1).Find(&existing)
	if result.Error != nil {
		return unchanged, fmt.Errorf("look up region %s: %w", r.ID, result.Error)
	}

	if result.RowsAffected == 0 {
		row := models.RegionModel{ID: r.ID, Name: r.Name, NameEn: r.NameEn, CountryID: countryID}
		if err := tx.Omit("Country").Create(&row).Error; err != nil {
			return unchanged, fmt.Errorf("create region %s: %w", r.ID, err)
		}
		return created, nil
	}

	if policy == CreateOrSkip {
		return unchanged, nil
	}
	if err := tx.Model(&existing).Updates(map[string]any{"name": r.Name, "name_en": r.NameEn, "country_id": countryID}).Error; err != nil {
		return unchanged, fmt.Errorf("update region %s: %w", r.ID, err)
	}
	return updated, nil
}

func (s *Seeder) logOutcome(o outcome, name, table string) {
	switch o {
	case created:
		s.logger.Info(fmt.Sprintf("Inserted %s into worldtravel %s", name, table))
	case updated:
		s.logger.Info(fmt.Sprintf("Updated %s in worldtravel %s", name, table))
	default:
		s.logger.Debug(fmt.Sprintf("%s already exists in worldtravel %s", name, table))
	}
}

// notIn filters out rows whose column is in values. An empty list matches
// every row.
func notIn(query *gorm.DB, column string, values []string) *gorm.DB {
	if len(values) == 0 {
		return query.Where("1 = 1")
	}
	return query.Where(column+" NOT IN ?", values)
}
