package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
env:
  serviceName: overlap-test
  log:
    level: debug
viewport:
  width: 948
  height: 844
  longitudeRange: [-121.781739849809, -122.50685]
  latitudeRange: [37.22070801115405, 37.820673]
  parallels: [37.0666666667, 38.4333333333]
  rotation: 120.5
circles:
  a: { longitude: -122.409821, latitude: 37.808673, radius: 100 }
  b: { longitude: -122.409821, latitude: 37.408673, radius: 80 }
data:
  markersPath: ./eatings.csv
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeConfig(t, minimalConfig)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "overlap-test", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	require.NotNil(t, cfg.Viewport)
	assert.InDelta(t, 948, cfg.Viewport.Width, 1e-9)
	assert.InDelta(t, 844, cfg.Viewport.Height, 1e-9)
	assert.Equal(t, []float64{-121.781739849809, -122.50685}, cfg.Viewport.LongitudeRange)
	assert.InDelta(t, 120.5, cfg.Viewport.Rotation, 1e-9)
	require.NotNil(t, cfg.Circles)
	assert.InDelta(t, 80, cfg.Circles.B.Radius, 1e-9)
	assert.Equal(t, "./eatings.csv", cfg.Data.MarkersPath)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	dir := writeConfig(t, minimalConfig)
	t.Setenv("OVERLAP_VIEWPORT_WIDTH", "1024")
	t.Setenv("OVERLAP_DATA_MARKERSPATH", "/srv/eatings.csv")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.InDelta(t, 1024, cfg.Viewport.Width, 1e-9)
	assert.Equal(t, "/srv/eatings.csv", cfg.Data.MarkersPath)
}

func TestLoadWithEnv_NotFound(t *testing.T) {
	_, err := LoadWithEnv[Config]("missing", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}

func TestApplyDefaults_FillsControls(t *testing.T) {
	dir := writeConfig(t, minimalConfig)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	applyDefaults(cfg)

	require.NotNil(t, cfg.Controls)
	assert.Equal(t, DefaultRatingCheckboxes(), cfg.Controls.Ratings)
	assert.Equal(t, DefaultPriceCheckboxes(), cfg.Controls.Prices)
	assert.Equal(t, SliderConfig{Min: 10, Max: 300}, cfg.Controls.Slider)
	assert.InDelta(t, 5, cfg.Controls.MarkerRadius, 1e-9)
	require.NotNil(t, cfg.Output)
	assert.Equal(t, 5*time.Second, cfg.Output.FlushTimeout)
	assert.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Viewport: &ViewportConfig{
				Width:          948,
				Height:         844,
				LongitudeRange: []float64{-121.78, -122.50},
				LatitudeRange:  []float64{37.22, 37.82},
				Parallels:      []float64{37.07, 38.43},
				Rotation:       120.5,
			},
			Circles: &CirclesConfig{
				A: CircleConfig{Longitude: -122.4, Latitude: 37.8, Radius: 100},
				B: CircleConfig{Longitude: -122.4, Latitude: 37.4, Radius: 100},
			},
			Data: &DataConfig{MarkersPath: "eatings.csv"},
		}
		applyDefaults(cfg)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero width", mutate: func(cfg *Config) { cfg.Viewport.Width = 0 }, wantErr: true},
		{name: "one parallel", mutate: func(cfg *Config) { cfg.Viewport.Parallels = []float64{37} }, wantErr: true},
		{name: "negative radius", mutate: func(cfg *Config) { cfg.Circles.A.Radius = -1 }, wantErr: true},
		{name: "missing markers path", mutate: func(cfg *Config) { cfg.Data.MarkersPath = "" }, wantErr: true},
		{name: "inverted slider", mutate: func(cfg *Config) { cfg.Controls.Slider = SliderConfig{Min: 50, Max: 10} }, wantErr: true},
		{name: "inverted band", mutate: func(cfg *Config) { cfg.Controls.Ratings[0].Max = 1 }, wantErr: true},
		{name: "degenerate box", mutate: func(cfg *Config) { cfg.Viewport.LatitudeRange = []float64{37, 37} }, wantErr: true},
		{name: "missing viewport", mutate: func(cfg *Config) { cfg.Viewport = nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
