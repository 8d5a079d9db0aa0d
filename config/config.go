package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."
	envPrefix   = "OVERLAP_"

	defaultSliderMin    = 10
	defaultSliderMax    = 300
	defaultMarkerRadius = 5
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Viewport defines the fixed map viewport and the projection fitted to it
	Viewport *ViewportConfig `json:"viewport" yaml:"viewport" validate:"required"`

	// Circles holds the initial geographic anchors and radii of circles A and B
	Circles *CirclesConfig `json:"circles" yaml:"circles" validate:"required"`

	// Controls describes the checkbox and slider surface
	Controls *ControlsConfig `json:"controls" yaml:"controls"`

	// Data points at the marker dataset
	Data *DataConfig `json:"data" yaml:"data" validate:"required"`

	// Output configures where rendered frames go
	Output *OutputConfig `json:"output" yaml:"output"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ViewportConfig defines the pixel viewport and the conic projection parameters
type ViewportConfig struct {
	Width  float64 `json:"width" yaml:"width" validate:"gt=0"`
	Height float64 `json:"height" yaml:"height" validate:"gt=0"`

	// LongitudeRange and LatitudeRange are the extents of the dataset; the
	// projection is fitted so that this box inscribes the viewport
	LongitudeRange []float64 `json:"longitudeRange" yaml:"longitudeRange" validate:"len=2"`
	LatitudeRange  []float64 `json:"latitudeRange" yaml:"latitudeRange" validate:"len=2"`

	// Parallels are the two standard parallels in degrees
	Parallels []float64 `json:"parallels" yaml:"parallels" validate:"len=2"`

	// Rotation in degrees added to every longitude (central meridian = -rotation)
	Rotation float64 `json:"rotation" yaml:"rotation"`
}

// CircleConfig is the initial state of a single circle
type CircleConfig struct {
	Longitude float64 `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
	Latitude  float64 `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Radius    float64 `json:"radius" yaml:"radius" validate:"gt=0"`
}

// CirclesConfig holds both circles
type CirclesConfig struct {
	A CircleConfig `json:"a" yaml:"a"`
	B CircleConfig `json:"b" yaml:"b"`
}

// RatingCheckbox maps a named checkbox to an inclusive rating band
type RatingCheckbox struct {
	Name string  `json:"name" yaml:"name" validate:"required"`
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max" validate:"gtefield=Min"`
}

// PriceCheckbox maps a named checkbox to a price tier
type PriceCheckbox struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Tier string `json:"tier" yaml:"tier" validate:"required"`
}

// SliderConfig is the bounded range of the radius sliders
type SliderConfig struct {
	Min float64 `json:"min" yaml:"min" validate:"gt=0"`
	Max float64 `json:"max" yaml:"max" validate:"gtefield=Min"`
}

// ControlsConfig describes the UI control surface
type ControlsConfig struct {
	Ratings []RatingCheckbox `json:"ratings" yaml:"ratings" validate:"dive"`
	Prices  []PriceCheckbox  `json:"prices" yaml:"prices" validate:"dive"`
	Slider  SliderConfig     `json:"slider" yaml:"slider"`

	// MarkerRadius is the hit radius in pixels used for hover lookups
	MarkerRadius float64 `json:"markerRadius" yaml:"markerRadius" validate:"gte=0"`
}

// DataConfig points at the marker dataset and the event script
type DataConfig struct {
	MarkersPath string `json:"markersPath" yaml:"markersPath" validate:"required"`
	ScriptPath  string `json:"scriptPath" yaml:"scriptPath"`
}

// OutputConfig configures frame output
type OutputConfig struct {
	// Path of the GeoJSON frame stream; empty or "-" writes to stdout
	Path string `json:"path" yaml:"path"`

	// LogFrames additionally logs a summary of every frame
	LogFrames bool `json:"logFrames" yaml:"logFrames"`

	// FlushTimeout bounds closing the output on shutdown
	FlushTimeout time.Duration `json:"flushTimeout" yaml:"flushTimeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Explicit paths are searched before the working directory
	searchPaths := make([]string, 0, len(configPath)+1)
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := path
			if !filepath.IsAbs(path) {
				abs = filepath.Join(pwd, path)
			}
			searchPaths = append(searchPaths, abs)
		}
	}
	searchPaths = append(searchPaths, defaultPath)

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment overrides, e.g. OVERLAP_VIEWPORT_WIDTH -> viewport.width
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(strings.TrimPrefix(k, envPrefix), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct constraints and the cross-field rules validator tags cannot express
func Validate(cfg *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	lon, lat := cfg.Viewport.LongitudeRange, cfg.Viewport.LatitudeRange
	if lon[0] == lon[1] || lat[0] == lat[1] {
		return errors.New("invalid config: viewport bounding box is degenerate")
	}

	return nil
}

// applyDefaults fills the stock control surface when it is not configured
func applyDefaults(cfg *Config) {
	if cfg.Controls == nil {
		cfg.Controls = &ControlsConfig{}
	}
	if len(cfg.Controls.Ratings) == 0 {
		cfg.Controls.Ratings = DefaultRatingCheckboxes()
	}
	if len(cfg.Controls.Prices) == 0 {
		cfg.Controls.Prices = DefaultPriceCheckboxes()
	}
	if cfg.Controls.Slider.Min == 0 && cfg.Controls.Slider.Max == 0 {
		cfg.Controls.Slider = SliderConfig{Min: defaultSliderMin, Max: defaultSliderMax}
	}
	if cfg.Controls.MarkerRadius == 0 {
		cfg.Controls.MarkerRadius = defaultMarkerRadius
	}

	if cfg.Output == nil {
		cfg.Output = &OutputConfig{}
	}
	if cfg.Output.FlushTimeout == 0 {
		cfg.Output.FlushTimeout = 5 * time.Second
	}
}

// DefaultRatingCheckboxes returns the four stock rating bands
func DefaultRatingCheckboxes() []RatingCheckbox {
	return []RatingCheckbox{
		{Name: "rating1", Min: 4.0, Max: 5.0},
		{Name: "rating2", Min: 3.0, Max: 3.99},
		{Name: "rating3", Min: 2.0, Max: 2.99},
		{Name: "rating4", Min: 1.0, Max: 1.99},
	}
}

// DefaultPriceCheckboxes returns the four stock price tiers
func DefaultPriceCheckboxes() []PriceCheckbox {
	return []PriceCheckbox{
		{Name: "price1", Tier: "$"},
		{Name: "price2", Tier: "$$"},
		{Name: "price3", Tier: "$$$"},
		{Name: "price4", Tier: "$$$$"},
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
