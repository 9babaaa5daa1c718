package models

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/paulmach/orb/geojson"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SRID of every stored geometry (WGS84).
const SRID = 4326

// MultiPolygon is a region boundary stored as hex encoded EWKB.
type MultiPolygon struct {
	orb.MultiPolygon
}

// NewMultiPolygon wraps mp for storage.
func NewMultiPolygon(mp orb.MultiPolygon) *MultiPolygon {
	return &MultiPolygon{MultiPolygon: mp}
}

// GormDBDataType uses a native PostGIS column on postgres and a blob elsewhere.
func (MultiPolygon) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return fmt.Sprintf("geometry(MultiPolygon,%d)", SRID)
	}
	return "blob"
}

// Value implements driver.Valuer.
func (m MultiPolygon) Value() (driver.Value, error) {
	data, err := ewkb.Marshal(m.MultiPolygon, SRID)
	if err != nil {
		return nil, err
	}
	return hex.EncodeToString(data), nil
}

// Scan implements sql.Scanner. It accepts hex EWKB as returned by PostGIS in
// text mode as well as raw EWKB bytes.
func (m *MultiPolygon) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		m.MultiPolygon = nil
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into MultiPolygon", src)
	}
	if len(data) == 0 {
		m.MultiPolygon = nil
		return nil
	}

	// Raw EWKB starts with a 0x00 or 0x01 byte order marker, hex with '0'.
	if data[0] == '0' {
		decoded, err := hex.DecodeString(string(data))
		if err != nil {
			return fmt.Errorf("decode geometry: %w", err)
		}
		data = decoded
	}

	geom, _, err := ewkb.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("decode geometry: %w", err)
	}
	switch g := geom.(type) {
	case orb.MultiPolygon:
		m.MultiPolygon = g
	case orb.Polygon:
		m.MultiPolygon = orb.MultiPolygon{g}
	default:
		return fmt.Errorf("unexpected stored geometry type %s", geom.GeoJSONType())
	}
	return nil
}

// MarshalJSON renders the geometry as a GeoJSON MultiPolygon.
func (m MultiPolygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(geojson.NewGeometry(m.MultiPolygon))
}
