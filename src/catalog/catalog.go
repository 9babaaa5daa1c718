// Package catalog holds the static list of countries and regions seeded into
// the worldtravel tables.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/AdventureLog/worldtravel-backend/src/models"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

//go:embed data/worldtravel.yaml
var defaultData []byte

// ErrInvalidCatalog is wrapped by every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

type Country struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	Continent string `yaml:"continent"`
}

type Region struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	NameEn  string `yaml:"name_en"`
	Country string `yaml:"country"`
}

// Catalog is the full seed list, kept in file order.
type Catalog struct {
	Countries []Country `yaml:"countries"`
	Regions   []Region  `yaml:"regions"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultData)
}

// LoadFile reads and validates a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every structural problem in the catalog. Whether a
// region's country is actually listed is left to the seeder.
func (c *Catalog) Validate() error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalidCatalog}, args...)...))
	}

	seenCountries := make(map[string]struct{}, len(c.Countries))
	for i, country := range c.Countries {
		switch {
		case !isCountryCode(country.Code):
			fail("country #%d: code %q is not two lowercase letters", i+1, country.Code)
		case country.Name == "":
			fail("country %s: missing name", country.Code)
		case !slices.Contains(models.Continents, country.Continent):
			fail("country %s: unknown continent %q", country.Code, country.Continent)
		}
		if _, dup := seenCountries[country.Code]; dup {
			fail("country %s: listed twice", country.Code)
		}
		seenCountries[country.Code] = struct{}{}
	}

	seenRegions := make(map[string]struct{}, len(c.Regions))
	for i, region := range c.Regions {
		prefix, _, found := strings.Cut(region.ID, "-")
		switch {
		case region.ID == "":
			fail("region #%d: missing id", i+1)
		case !found || prefix == "":
			fail("region %s: id has no country prefix", region.ID)
		case region.Name == "":
			fail("region %s: missing name", region.ID)
		case strings.ToLower(prefix) != region.Country:
			fail("region %s: id prefix does not match country %q", region.ID, region.Country)
		}
		if _, dup := seenRegions[region.ID]; dup {
			fail("region %s: listed twice", region.ID)
		}
		seenRegions[region.ID] = struct{}{}
	}

	return result.ErrorOrNil()
}

// CountryCodes returns the country codes in list order.
func (c *Catalog) CountryCodes() []string {
	codes := make([]string, len(c.Countries))
	for i, country := range c.Countries {
		codes[i] = country.Code
	}
	return codes
}

// RegionIDs returns the region ids in list order.
func (c *Catalog) RegionIDs() []string {
	ids := make([]string, len(c.Regions))
	for i, region := range c.Regions {
		ids[i] = region.ID
	}
	return ids
}

func isCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
