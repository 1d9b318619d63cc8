package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"carhub/internal/domain"
)

// Stale response policies
const (
	PolicyLastResolved = "last-resolved"
	PolicyLastIssued   = "last-issued"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	API     APISettings    `toml:"api"`
	Browse  BrowseSettings `toml:"browse"`
	Log     LogSettings    `toml:"log"`
}

// APISettings configures the listing service client
type APISettings struct {
	BaseURL         string   `toml:"base_url"`
	Host            string   `toml:"host"`
	Key             string   `toml:"key"`
	Timeout         Duration `toml:"timeout"`
	BreakerFailures int      `toml:"breaker_failures"`
	BreakerCooldown Duration `toml:"breaker_cooldown"`
}

// BrowseSettings configures the page defaults
type BrowseSettings struct {
	DefaultManufacturer string `toml:"default_manufacturer"`
	DefaultYear         int    `toml:"default_year"`
	PageSize            int    `toml:"page_size"`
	StalePolicy         string `toml:"stale_policy"`
}

// LogSettings configures the diagnostic log
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration that reads and writes as "10s" in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
	getenv   func(string) string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "carhub", "config.toml"),
		getenv:   os.Getenv,
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path, getenv: os.Getenv}
}

// Path returns the file the service reads by default
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file.
// A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.applyEnv(cfg)
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cs.applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold an API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) applyEnv(cfg *Config) {
	if cs.getenv == nil {
		return
	}
	if v := cs.getenv("CARHUB_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := cs.getenv("CARHUB_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
}

// Validate reports settings the application cannot run with
func (c *Config) Validate() error {
	if c.Browse.PageSize <= 0 {
		return fmt.Errorf("%w: browse.page_size must be positive, got %d", ErrInvalidConfig, c.Browse.PageSize)
	}
	switch c.Browse.StalePolicy {
	case PolicyLastResolved, PolicyLastIssued:
	default:
		return fmt.Errorf("%w: browse.stale_policy %q is not one of %q, %q",
			ErrInvalidConfig, c.Browse.StalePolicy, PolicyLastResolved, PolicyLastIssued)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url is empty", ErrInvalidConfig)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:         "https://cars-by-api-ninjas.p.rapidapi.com",
			Host:            "cars-by-api-ninjas.p.rapidapi.com",
			Timeout:         Duration{10 * time.Second},
			BreakerFailures: 5,
			BreakerCooldown: Duration{30 * time.Second},
		},
		Browse: BrowseSettings{
			DefaultManufacturer: domain.DefaultManufacturer,
			DefaultYear:         domain.DefaultYear,
			PageSize:            domain.PageSize,
			StalePolicy:         PolicyLastResolved,
		},
		Log: LogSettings{
			Level: "info",
			File:  "carhub.log",
		},
	}
}
