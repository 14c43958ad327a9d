package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareMap-App/internal/domain/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDR", "CENTERS_SOURCE", "CENTERS_CSV", "CENTERS_WATCH", "CENTERS_TABLE",
		"GOOGLE_CLOUD_PROJECT", "MAP_DEFAULT_ZOOM", "MAP_FOCUSED_ZOOM", "BOUNDARY_ENABLED",
		"BOUNDARY_TIMEOUT", "REDIS_ADDR", "LOG_LEVEL", "CONFIG_FILE",
		"MAP_DEFAULT_LAT", "MAP_DEFAULT_LNG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, SourceCSV, cfg.Source.Kind)
	assert.Equal(t, "centers.csv", cfg.Source.CSVPath)
	assert.Equal(t, model.DefaultCenterLat, cfg.Map.DefaultLat)
	assert.Equal(t, model.DefaultCenterLng, cfg.Map.DefaultLng)
	assert.Equal(t, 13, cfg.Map.DefaultZoom)
	assert.Equal(t, 15, cfg.Map.FocusedZoom)
	assert.True(t, cfg.Boundary.Enabled)
	assert.Equal(t, DefaultBoundaryURL, cfg.Boundary.URL)
	assert.Equal(t, 5*time.Second, cfg.Boundary.Timeout)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("CENTERS_SOURCE", "Postgres")
	t.Setenv("CENTERS_TABLE", "care_centers")
	t.Setenv("CENTERS_WATCH", "true")
	t.Setenv("BOUNDARY_TIMEOUT", "1500ms")
	t.Setenv("MAP_DEFAULT_ZOOM", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourcePostgres, cfg.Source.Kind)
	assert.Equal(t, "care_centers", cfg.Source.Table)
	assert.True(t, cfg.Source.Watch)
	assert.Equal(t, 1500*time.Millisecond, cfg.Boundary.Timeout)
	assert.Equal(t, model.DefaultZoom, cfg.Map.DefaultZoom)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "caremap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source:
  kind: firestore
  project_id: caremap-dev
map:
  focused_zoom: 16
boundary:
  timeout: 2s
`), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceFirestore, cfg.Source.Kind)
	assert.Equal(t, "caremap-dev", cfg.Source.ProjectID)
	assert.Equal(t, 16, cfg.Map.FocusedZoom)
	assert.Equal(t, 2*time.Second, cfg.Boundary.Timeout)
	// ファイルにない項目は環境変数・既定値のまま
	assert.Equal(t, "centers", cfg.Source.Collection)
	assert.Equal(t, 13, cfg.Map.DefaultZoom)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "不明なソース", env: map[string]string{"CENTERS_SOURCE": "mysql"}},
		{name: "プロジェクト未設定", env: map[string]string{"CENTERS_SOURCE": "firestore"}},
		{name: "ズームの逆転", env: map[string]string{"MAP_DEFAULT_ZOOM": "16", "MAP_FOCUSED_ZOOM": "12"}},
		{name: "既定の中心がNaN", env: map[string]string{"MAP_DEFAULT_LAT": "NaN"}},
		{name: "既定の経度が無限大", env: map[string]string{"MAP_DEFAULT_LNG": "+Inf"}},
		{name: "既定の緯度が範囲外", env: map[string]string{"MAP_DEFAULT_LAT": "127.0"}},
		{name: "タイムアウト0", env: map[string]string{"BOUNDARY_TIMEOUT": "0s"}},
		{name: "設定ファイルがない", env: map[string]string{"CONFIG_FILE": "/nonexistent/caremap.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.True(t, model.IsConfigError(err))
		})
	}
}
