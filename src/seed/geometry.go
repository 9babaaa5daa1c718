package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/AdventureLog/worldtravel-backend/src/config"
	"github.com/AdventureLog/worldtravel-backend/src/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

// ErrNoGeometry is wrapped by every reason a region ends up without a boundary.
var ErrNoGeometry = errors.New("no geometry")

// GeometryAttacher looks up region boundaries in per-country GeoJSON files
// named <country-code>.json. Each file is read once and its features are
// reused for every region of that country. Not safe for concurrent use.
type GeometryAttacher struct {
	Dir    string
	Logger *slog.Logger

	files map[string]countryFile
}

// countryFile is the parsed feature list of one country file, or the reason
// it has none.
type countryFile struct {
	features []gjson.Result
	err      error
}

func NewGeometryAttacher(cfg *config.Config, logger *slog.Logger) *GeometryAttacher {
	return &GeometryAttacher{Dir: cfg.GeoDataDir, Logger: logger}
}

// Find returns the boundary of regionID. Features are matched on an exact
// properties.ISOCODE comparison and the first match wins. A feature whose
// geometry cannot be parsed or has malformed rings is logged and skipped.
func (a *GeometryAttacher) Find(regionID string) (orb.MultiPolygon, error) {
	countryCode, _, _ := strings.Cut(regionID, "-")
	file := a.load(strings.ToLower(countryCode))
	if file.err != nil {
		return nil, file.err
	}

	for _, feature := range file.features {
		isocode := feature.Get("properties.ISOCODE")
		if isocode.Type != gjson.String || isocode.Str != regionID {
			continue
		}

		raw := feature.Get("geometry")
		if !raw.Exists() {
			a.Logger.Warn("error processing region", "region", regionID, "err", "feature has no geometry")
			continue
		}
		geom, err := geojson.UnmarshalGeometry([]byte(raw.Raw))
		if err != nil {
			a.Logger.Warn("error processing region", "region", regionID, "err", err)
			continue
		}
		if geom.Geometry() == nil {
			a.Logger.Warn("error processing region", "region", regionID, "err", "empty geometry")
			continue
		}

		var mp orb.MultiPolygon
		switch g := geom.Geometry().(type) {
		case orb.Polygon:
			mp = orb.MultiPolygon{g}
		case orb.MultiPolygon:
			mp = g
		default:
			return nil, fmt.Errorf("%w: unexpected geometry type for region %s: %s", ErrNoGeometry, regionID, g.GeoJSONType())
		}
		if err := validateRings(mp); err != nil {
			a.Logger.Warn("error processing region", "region", regionID, "err", err)
			continue
		}
		return mp, nil
	}

	return nil, fmt.Errorf("%w: no matching region found for %s", ErrNoGeometry, regionID)
}

// load reads and checks the file for countryCode on first use.
func (a *GeometryAttacher) load(countryCode string) countryFile {
	if file, ok := a.files[countryCode]; ok {
		return file
	}
	file := a.parse(countryCode)
	if a.files == nil {
		a.files = make(map[string]countryFile)
	}
	a.files[countryCode] = file
	return file
}

func (a *GeometryAttacher) parse(countryCode string) countryFile {
	path := filepath.Join(a.Dir, countryCode+".json")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return countryFile{err: fmt.Errorf("%w: file %s.json does not exist", ErrNoGeometry, countryCode)}
	}
	if err != nil {
		return countryFile{err: fmt.Errorf("%w: read %s: %w", ErrNoGeometry, path, err)}
	}

	if !gjson.ValidBytes(data) {
		return countryFile{err: fmt.Errorf("%w: invalid JSON in file for %s", ErrNoGeometry, countryCode)}
	}
	if t := gjson.GetBytes(data, "type"); t.Type != gjson.String || t.Str != "FeatureCollection" {
		return countryFile{err: fmt.Errorf("%w: invalid GeoJSON structure for %s: missing or incorrect 'type'", ErrNoGeometry, countryCode)}
	}
	features := gjson.GetBytes(data, "features")
	var list []gjson.Result
	if features.IsArray() {
		list = features.Array()
	}
	if len(list) == 0 {
		return countryFile{err: fmt.Errorf("%w: invalid GeoJSON structure for %s: missing or empty 'features'", ErrNoGeometry, countryCode)}
	}
	return countryFile{features: list}
}

// validateRings rejects boundaries PostGIS would refuse: every polygon needs
// at least one ring, and every ring at least four points and the same first
// and last point.
func validateRings(mp orb.MultiPolygon) error {
	if len(mp) == 0 {
		return errors.New("multipolygon has no polygons")
	}
	for i, polygon := range mp {
		if len(polygon) == 0 {
			return fmt.Errorf("polygon %d has no rings", i)
		}
		for j, ring := range polygon {
			if len(ring) < 4 {
				return fmt.Errorf("polygon %d ring %d has %d points, need at least 4", i, j, len(ring))
			}
			if !ring.Closed() {
				return fmt.Errorf("polygon %d ring %d is not closed", i, j)
			}
		}
	}
	return nil
}

// Attach stores the boundary of regionID on its row. It reports false when
// no boundary was found; only database errors are returned.
func (a *GeometryAttacher) Attach(tx *gorm.DB, regionID string) (bool, error) {
	mp, err := a.Find(regionID)
	if errors.Is(err, ErrNoGeometry) {
		a.Logger.Warn("region left without geometry", "region", regionID, "reason", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	result := tx.Model(&models.RegionModel{}).Where("id = ?", regionID).Update("geometry", models.NewMultiPolygon(mp))
	if result.Error != nil {
		return false, fmt.Errorf("update geometry for %s: %w", regionID, result.Error)
	}
	a.Logger.Debug("updated geometry", "region", regionID)
	return true, nil
}
