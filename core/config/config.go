// Package config carries process configuration: defaults, then an optional
// YAML file, then environment overrides, in that order.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/adalundhe/restyle/core/cache"
	"github.com/adalundhe/restyle/core/presets"
	"github.com/adalundhe/restyle/core/style"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Cache   CacheConfig   `yaml:"cache"`
	HTTP    HTTPConfig    `yaml:"http"`
	Presets []PresetSpec  `yaml:"presets"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"RESTYLE_LOG_LEVEL"`
	Format string `yaml:"format" env:"RESTYLE_LOG_FORMAT"`
}

type CacheConfig struct {
	Enabled     bool          `yaml:"enabled" env:"RESTYLE_CACHE_ENABLED"`
	NumCounters int64         `yaml:"num_counters" env:"RESTYLE_CACHE_NUM_COUNTERS"`
	MaxCost     int64         `yaml:"max_cost" env:"RESTYLE_CACHE_MAX_COST"`
	TTL         time.Duration `yaml:"ttl" env:"RESTYLE_CACHE_TTL"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr" env:"RESTYLE_HTTP_ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"RESTYLE_HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"RESTYLE_HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"RESTYLE_HTTP_SHUTDOWN_TIMEOUT"`
}

// PresetSpec is a user preset as written in the config file. Margin and
// padding are single values fanned out to all four sides.
type PresetSpec struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Color           string   `yaml:"color"`
	BackgroundColor string   `yaml:"background_color"`
	FontSize        float64  `yaml:"font_size"`
	FontFamily      string   `yaml:"font_family"`
	FontWeight      int      `yaml:"font_weight"`
	LineHeight      float64  `yaml:"line_height"`
	Margin          *float64 `yaml:"margin"`
	Padding         *float64 `yaml:"padding"`
}

func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Cache: CacheConfig{
			Enabled:     true,
			NumCounters: 1e5,
			MaxCost:     1e7,
			TTL:         15 * time.Minute,
		},
		HTTP: HTTPConfig{
			Addr:            ":8383",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// SlogLevel maps the configured level name to a slog level. Unknown names
// read as info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ToCacheConfig converts the cache section for the interpretation cache.
func (c CacheConfig) ToCacheConfig() *cache.Config {
	return &cache.Config{
		NumCounters: c.NumCounters,
		MaxCost:     c.MaxCost,
		TTL:         c.TTL,
	}
}

// ToPreset converts the spec into a catalog preset. Validation happens in
// the preset resolver, not here.
func (s PresetSpec) ToPreset() presets.Preset {
	set := style.ChangeSet{
		Color:           s.Color,
		BackgroundColor: s.BackgroundColor,
		FontSize:        s.FontSize,
		FontFamily:      s.FontFamily,
		FontWeight:      s.FontWeight,
		LineHeight:      s.LineHeight,
		Confidence:      1.0,
	}

	if s.Margin != nil {
		set.MarginTop = style.Float(*s.Margin)
		set.MarginBottom = style.Float(*s.Margin)
		set.MarginLeft = style.Float(*s.Margin)
		set.MarginRight = style.Float(*s.Margin)
	}
	if s.Padding != nil {
		set.PaddingTop = style.Float(*s.Padding)
		set.PaddingBottom = style.Float(*s.Padding)
		set.PaddingLeft = style.Float(*s.Padding)
		set.PaddingRight = style.Float(*s.Padding)
	}

	return presets.Preset{
		Name:        s.Name,
		Description: s.Description,
		Changes:     set,
	}
}

// UserPresets converts every configured preset spec.
func (c *Config) UserPresets() []presets.Preset {
	if len(c.Presets) == 0 {
		return nil
	}

	converted := make([]presets.Preset, 0, len(c.Presets))
	for _, spec := range c.Presets {
		converted = append(converted, spec.ToPreset())
	}
	return converted
}
