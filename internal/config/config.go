package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
)

// Config is the on-disk configuration shape. Files ending in .toml are read
// as TOML, everything else as YAML.
type Config struct {
	API      APIConfig      `yaml:"api" toml:"api"`
	Calendar CalendarConfig `yaml:"calendar" toml:"calendar"`
	Store    StoreConfig    `yaml:"store" toml:"store"`
}

type APIConfig struct {
	Port           string   `yaml:"port" toml:"port"`
	Env            string   `yaml:"env" toml:"env"`
	AllowedOrigins []string `yaml:"allowed_origins" toml:"allowed_origins"`
	StaticDir      string   `yaml:"static_dir" toml:"static_dir"`
}

type CalendarConfig struct {
	// DefaultTz is used for terms written without a bracketed zone.
	DefaultTz      string   `yaml:"default_tz" toml:"default_tz"`
	DefaultBuckets []string `yaml:"default_buckets" toml:"default_buckets"`
}

type StoreConfig struct {
	// DBPath enables the run store when set.
	DBPath string `yaml:"db_path" toml:"db_path"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Port:           "8080",
			Env:            "development",
			AllowedOrigins: []string{"*"},
		},
		Calendar: CalendarConfig{
			DefaultTz:      "America/New_York",
			DefaultBuckets: []string{"5x16", "2x16H", "7x8"},
		},
	}
}

// Load reads path (or the defaults when path is empty), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv(os.Getenv)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads the file over the defaults without env overrides or
// validation. Useful for printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(raw), c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	// Relative database paths are taken relative to the config file.
	if c.Store.DBPath != "" && !filepath.IsAbs(c.Store.DBPath) {
		c.Store.DBPath = filepath.Join(filepath.Dir(path), c.Store.DBPath)
	}
	return c, nil
}

// ApplyEnv overlays API_PORT, API_ENV, STATIC_DIR, GRIDCAL_DEFAULT_TZ and
// GRIDCAL_DB when they are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("API_PORT"); v != "" {
		c.API.Port = v
	}
	if v := getenv("API_ENV"); v != "" {
		c.API.Env = v
	}
	if v := getenv("STATIC_DIR"); v != "" {
		c.API.StaticDir = v
	}
	if v := getenv("GRIDCAL_DEFAULT_TZ"); v != "" {
		c.Calendar.DefaultTz = v
	}
	if v := getenv("GRIDCAL_DB"); v != "" {
		c.Store.DBPath = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.API.Port == "" {
		return errors.New("api.port is required")
	}
	if c.Calendar.DefaultTz != "" {
		if _, err := calendar.LoadLocation(c.Calendar.DefaultTz); err != nil {
			return fmt.Errorf("calendar.default_tz: %w", err)
		}
	}
	for _, name := range c.Calendar.DefaultBuckets {
		if _, err := bucket.Parse(name); err != nil {
			return fmt.Errorf("calendar.default_buckets: %w", err)
		}
	}
	return nil
}

// DefaultLocation loads calendar.default_tz. It is nil when the field is
// empty, in which case every term must carry its own zone.
func (c *Config) DefaultLocation() (*time.Location, error) {
	if c.Calendar.DefaultTz == "" {
		return nil, nil
	}
	return calendar.LoadLocation(c.Calendar.DefaultTz)
}

// IsProduction reports whether the API runs in release mode.
func (c *Config) IsProduction() bool { return c.API.Env == "production" }
