package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectriclabs/hotcold/internal/api"
	"github.com/spectriclabs/hotcold/internal/app"
	"github.com/spectriclabs/hotcold/internal/render"
)

func TestParseCLIDefaults(t *testing.T) {
	cfg, err := app.ParseCLI(nil)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5056, cfg.Port)
	assert.Equal(t, 256, cfg.DefaultLUTSize)
	assert.InDelta(t, 1.0/3, cfg.DefaultNeutral, 1e-12)
}

func TestServerRoutes(t *testing.T) {
	cfg, err := app.ParseCLI([]string{"--default-lutsize", "16"})
	require.NoError(t, err)
	e := app.SetupServer(api.NewAPI(&cfg, nil), prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/colormap/bezier?neutral=0.9", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var out render.TableJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 16, out.LUTSize)

	req = httptest.NewRequest(http.MethodGet, "/colormap/algorithms", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/colormap/curve?neutral=2", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "hotcold_requests_total"))
}
