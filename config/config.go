// Package config loads the arcade configuration from YAML with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/folio-arcade/constants"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Environment variables applied after the file
const (
	EnvStoreDriver = "FOLIO_ARCADE_STORE_DRIVER"
	EnvStoreDSN    = "FOLIO_ARCADE_STORE_DSN"
	EnvLogLevel    = "FOLIO_ARCADE_LOG_LEVEL"
)

type StoreConfig struct {
	Driver  string        `yaml:"driver"`
	DSN     string        `yaml:"dsn"`
	Key     string        `yaml:"key"`
	Timeout time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	File   string `yaml:"file"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type DisplayConfig struct {
	Color bool `yaml:"color"`
	Mouse bool `yaml:"mouse"`
	Debug bool `yaml:"debug"`
}

// Config is the whole file; Keys holds key binding overrides by section
type Config struct {
	Store   StoreConfig                  `yaml:"store"`
	Log     LogConfig                    `yaml:"log"`
	Audio   AudioConfig                  `yaml:"audio"`
	Display DisplayConfig                `yaml:"display"`
	Keys    map[string]map[string]string `yaml:"keys"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Driver:  "sqlite",
			DSN:     filepath.Join(dataDir(), "progress.db"),
			Key:     constants.ProgressKey,
			Timeout: constants.StoreTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Audio:   AudioConfig{Enabled: true},
		Display: DisplayConfig{Color: true, Mouse: true},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/folio-arcade/config.yaml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "folio-arcade", "config.yaml")
}

func dataDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); dir != "" {
		return filepath.Join(dir, "folio-arcade")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "folio-arcade")
	}
	return "."
}

// Load reads path over the defaults, then applies environment overrides and validates
// An empty path reads DefaultPath, where a missing file is not an error
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvStoreDriver)); v != "" {
		c.Store.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStoreDSN)); v != "" {
		c.Store.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
}

// Validate normalizes case and rejects values the program cannot act on
func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	switch c.Store.Driver {
	case "sqlite", "postgres", "redis", "memory":
	default:
		return fmt.Errorf("%w: store.driver %q", ErrInvalid, c.Store.Driver)
	}
	if c.Store.Driver != "memory" && strings.TrimSpace(c.Store.DSN) == "" {
		return fmt.Errorf("%w: store.dsn is empty", ErrInvalid)
	}
	if c.Store.Key == "" {
		c.Store.Key = constants.ProgressKey
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("%w: store.timeout must be positive", ErrInvalid)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
