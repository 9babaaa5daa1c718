package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AdventureLog/worldtravel-backend/src/config"
	"github.com/AdventureLog/worldtravel-backend/src/db/dbtest"
	"github.com/AdventureLog/worldtravel-backend/src/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "router-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t)
	us := models.CountryModel{Name: "United States", CountryCode: "us", Continent: "NA"}
	require.NoError(t, db.Create(&us).Error)
	require.NoError(t, db.Omit("Country").Create(&models.RegionModel{ID: "US-CA", Name: "California", NameEn: "California", CountryID: us.ID}).Error)

	cfg := &config.Config{
		PublicURL: "https://example.com/",
		MediaRoot: t.TempDir(),
		JWTSecret: jwtSecret,
	}
	require.NoError(t, os.MkdirAll(cfg.FlagsDir(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.FlagsDir(), "us.png"), []byte("png"), 0o644))

	return NewRouter(cfg, db), cfg
}

func do(t *testing.T, router *gin.Engine, method, path, body, user string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"id":  user,
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte(jwtSecret))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCountryRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/countries/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var countries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &countries))
	require.Len(t, countries, 1)
	assert.Equal(t, "https://example.com/media/flags/us.png", countries[0]["flag_url"])
	assert.Equal(t, "us", countries[0]["country_code"])

	rec = do(t, router, http.MethodGet, "/countries/us", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/countries/xx", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/countries/us/regions", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"US-CA","name":"California","name_en":"California","country":1,"geometry":null}]`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/countries/export", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, rec.Body.Len())
}

func TestRegionRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/regions/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"US-CA"`)

	rec = do(t, router, http.MethodGet, "/regions/US-CA", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/regions/US-ZZ", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVisitedRegionRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/visitedregions/", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/visitedregions/", `{"region":"US-CA"}`, "5")
	require.Equal(t, http.StatusCreated, rec.Code)
	var visit map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visit))
	assert.Equal(t, "US-CA", visit["region"])
	assert.Equal(t, "5", visit["user_id"])

	rec = do(t, router, http.MethodPost, "/visitedregions/", `{"region":"US-CA"}`, "5")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPost, "/visitedregions/", `{"region":"US-ZZ"}`, "5")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/visitedregions/", `{}`, "5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/visitedregions/", "", "5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"US-CA"`)

	rec = do(t, router, http.MethodDelete, "/visitedregions/abc", "", "5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodDelete, "/visitedregions/1", "", "6")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, "/visitedregions/1", "", "5")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestFlagsAreServed(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/media/flags/us.png", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png", rec.Body.String())
}
