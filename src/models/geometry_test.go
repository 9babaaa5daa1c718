package models

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}

func TestMultiPolygonStoresAsHexEWKB(t *testing.T) {
	value, err := NewMultiPolygon(orb.MultiPolygon{square}).Value()
	require.NoError(t, err)

	text, ok := value.(string)
	require.True(t, ok)

	var scanned MultiPolygon
	require.NoError(t, scanned.Scan(text))
	assert.Equal(t, orb.MultiPolygon{square}, scanned.MultiPolygon)

	raw, err := hex.DecodeString(text)
	require.NoError(t, err)
	var fromRaw MultiPolygon
	require.NoError(t, fromRaw.Scan(raw))
	assert.Equal(t, orb.MultiPolygon{square}, fromRaw.MultiPolygon)
}

func TestMultiPolygonScanPromotesPolygon(t *testing.T) {
	data, err := ewkb.Marshal(square, SRID)
	require.NoError(t, err)

	var scanned MultiPolygon
	require.NoError(t, scanned.Scan(data))
	assert.Equal(t, orb.MultiPolygon{square}, scanned.MultiPolygon)
}

func TestMultiPolygonScanRejectsOtherGeometries(t *testing.T) {
	data, err := ewkb.Marshal(orb.Point{1, 2}, SRID)
	require.NoError(t, err)

	var scanned MultiPolygon
	assert.Error(t, scanned.Scan(data))
	assert.Error(t, scanned.Scan(42))
}

func TestMultiPolygonJSON(t *testing.T) {
	out, err := json.Marshal(NewMultiPolygon(orb.MultiPolygon{square}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,1],[0,0]]]]}`, string(out))
}
