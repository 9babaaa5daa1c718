package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Countries, 25)
	assert.Len(t, c.Regions, 494)
	assert.Equal(t, Country{Code: "us", Name: "United States", Continent: "NA"}, c.Countries[0])
	assert.Equal(t, Region{ID: "US-AL", Name: "Alabama", NameEn: "Alabama", Country: "us"}, c.Regions[0])
	assert.Equal(t, "us", c.CountryCodes()[0])
	assert.Equal(t, "US-AL", c.RegionIDs()[0])

	countries := make(map[string]bool)
	for _, code := range c.CountryCodes() {
		countries[code] = true
	}
	for _, region := range c.Regions {
		assert.True(t, countries[region.Country], "region %s references unlisted country %s", region.ID, region.Country)
	}
}

func TestParseCollectsEveryProblem(t *testing.T) {
	_, err := Parse([]byte(`
countries:
  - {code: "US", name: "United States", continent: "NA"}
  - {code: "ca", name: "Canada", continent: "XX"}
  - {code: "mx", name: "Mexico", continent: "NA"}
  - {code: "mx", name: "Mexico", continent: "NA"}
regions:
  - {id: "CA-BC", name: "British Columbia", name_en: "British Columbia", country: "us"}
  - {id: "MX", name: "Mexico City", name_en: "Mexico City", country: "mx"}
  - {id: "MX-CMX", name: "", name_en: "", country: "mx"}
`))
	require.ErrorIs(t, err, ErrInvalidCatalog)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 6)
	assert.True(t, strings.Contains(err.Error(), "listed twice"))
}

func TestParseAllowsRegionOfUnlistedCountry(t *testing.T) {
	c, err := Parse([]byte(`
countries:
  - {code: "us", name: "United States", continent: "NA"}
regions:
  - {id: "XX-01", name: "Nowhere", name_en: "Nowhere", country: "xx"}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"XX-01"}, c.RegionIDs())
}

func TestParseRejectsBrokenYAML(t *testing.T) {
	_, err := Parse([]byte("countries: [unterminated"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`countries:
  - {code: "is", name: "Iceland", continent: "EU"}
`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"is"}, c.CountryCodes())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
