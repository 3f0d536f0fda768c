// Package config loads moviebox settings from defaults, an optional YAML
// file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "MOVIEBOX_CONFIG"

type Config struct {
	TMDB    TMDBConfig    `koanf:"tmdb"`
	UI      UIConfig      `koanf:"ui"`
	Breaker BreakerConfig `koanf:"breaker"`
	Logging LoggingConfig `koanf:"logging"`
}

type TMDBConfig struct {
	APIKey       string        `koanf:"api_key" validate:"required"`
	BaseURL      string        `koanf:"base_url" validate:"required,url"`
	ImageBaseURL string        `koanf:"image_base_url" validate:"required,url"`
	ImageSize    string        `koanf:"image_size" validate:"required"`
	Language     string        `koanf:"language" validate:"required"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
}

type UIConfig struct {
	Backdrops        bool          `koanf:"backdrops"`
	TransitionFrames int           `koanf:"transition_frames" validate:"gte=1,lte=60"`
	FrameInterval    time.Duration `koanf:"frame_interval" validate:"gt=0"`
	AltScreen        bool          `koanf:"alt_screen"`
	Mouse            bool          `koanf:"mouse"`
}

type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests" validate:"gte=1"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout" validate:"gt=0"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"gte=1"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	File   string `koanf:"file"`
}

// Default returns the built-in configuration. It has no API key.
func Default() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			ImageSize:    "w780",
			Language:     "en-US",
			Timeout:      10 * time.Second,
		},
		UI: UIConfig{
			Backdrops:        true,
			TransitionFrames: 8,
			FrameInterval:    40 * time.Millisecond,
			AltScreen:        true,
			Mouse:            true,
		},
		Breaker: BreakerConfig{
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          30 * time.Second,
			FailureThreshold: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load layers defaults, the config file and the environment. An explicit
// path must exist; otherwise the default search paths are tried.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = findFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// ErrMissingAPIKey is returned when no TMDB credential was provided.
var ErrMissingAPIKey = errors.New("TMDB API key is required (set TMDB_API_KEY or tmdb.api_key)")

func (c *Config) Validate() error {
	if strings.TrimSpace(c.TMDB.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SearchPaths lists the files tried when no explicit path is given.
func SearchPaths() []string {
	paths := []string{"moviebox.yaml", "moviebox.yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "moviebox", "config.yaml"))
	}
	return paths
}

func findFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"tmdb_api_key":                  "tmdb.api_key",
	"moviebox_api_key":              "tmdb.api_key",
	"moviebox_base_url":             "tmdb.base_url",
	"moviebox_image_base_url":       "tmdb.image_base_url",
	"moviebox_image_size":           "tmdb.image_size",
	"moviebox_language":             "tmdb.language",
	"moviebox_timeout":              "tmdb.timeout",
	"moviebox_backdrops":            "ui.backdrops",
	"moviebox_transition_frames":    "ui.transition_frames",
	"moviebox_frame_interval":       "ui.frame_interval",
	"moviebox_alt_screen":           "ui.alt_screen",
	"moviebox_mouse":                "ui.mouse",
	"moviebox_breaker_max_requests": "breaker.max_requests",
	"moviebox_breaker_interval":     "breaker.interval",
	"moviebox_breaker_timeout":      "breaker.timeout",
	"moviebox_breaker_failures":     "breaker.failure_threshold",
	"moviebox_log_level":            "logging.level",
	"moviebox_log_format":           "logging.format",
	"moviebox_log_file":             "logging.file",
}

// envKey maps known environment variables to config paths; everything else
// is skipped.
func envKey(key string) string {
	return envMappings[strings.ToLower(key)]
}
