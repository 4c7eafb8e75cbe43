package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the Brewfather v2 API root.
const DefaultBaseURL = "https://api.brewfather.app/v2"

// ErrMissingCredentials is returned when the Brewfather user id or API key is not configured.
var ErrMissingCredentials = errors.New("missing Brewfather credentials: BREWFATHER_API_USER_ID or BREWFATHER_API_KEY")

// Config represents the overall application configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Debug  DebugConfig  `yaml:"debug"`
	Log    LogConfig    `yaml:"log"`
	Report ReportConfig `yaml:"report"`
	Ops    OpsConfig    `yaml:"ops"`
}

// APIConfig holds the upstream connection settings. Credentials normally come from the environment.
type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	UserID            string        `yaml:"user_id"`
	APIKey            string        `yaml:"api_key"`
	TimeoutSeconds    int           `yaml:"timeout_seconds"`
	Timeout           time.Duration `yaml:"-"`
	HTTPProxy         string        `yaml:"http_proxy"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// DebugConfig controls dumping of raw response bodies.
type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ReportConfig holds presentation settings for text reports.
type ReportConfig struct {
	Timezone string `yaml:"timezone"`
}

// OpsConfig holds the optional metrics/health listener.
type OpsConfig struct {
	MetricsAddr     string  `yaml:"metrics_addr"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// Load reads the configuration from the given path. An empty path skips the file and
// uses defaults. A .env file in the working directory and the process environment are
// applied on top.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	applyEnv(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// Validate checks the settings that make the client unusable when absent.
func (c *Config) Validate() error {
	if c.API.UserID == "" || c.API.APIKey == "" {
		return ErrMissingCredentials
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the report timezone. An empty timezone means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Report.Timezone == "" || c.Report.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Report.Timezone, err)
	}
	return loc, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BREWFATHER_API_USER_ID"); v != "" {
		cfg.API.UserID = v
	}
	if v := os.Getenv("BREWFATHER_API_KEY"); v != "" {
		cfg.API.APIKey = v
	}
	if v := os.Getenv("BREWFATHER_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("BREWFATHER_MCP_DEBUG"); v != "" {
		// Any non-empty value turns debugging on unless it parses as false.
		enabled, err := strconv.ParseBool(v)
		cfg.Debug.Enabled = err != nil || enabled
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 30
	}
	cfg.API.Timeout = time.Duration(cfg.API.TimeoutSeconds) * time.Second

	if cfg.API.RequestsPerSecond > 0 && cfg.API.Burst <= 0 {
		cfg.API.Burst = 1
	}

	if cfg.Debug.Dir == "" {
		cfg.Debug.Dir = "./debug"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if cfg.Ops.RateLimitPerSec <= 0 {
		cfg.Ops.RateLimitPerSec = 10
	}
	if cfg.Ops.RateLimitBurst <= 0 {
		cfg.Ops.RateLimitBurst = 5
	}
}
