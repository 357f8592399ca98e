// Package config loads the site settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ReadHeaderTimeout limits how long the server waits for request headers.
const ReadHeaderTimeout = 5 * time.Second

// ShutdownTimeout limits how long in-flight requests get during shutdown.
const ShutdownTimeout = 5 * time.Second

// Config holds all application configuration
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	BasePath     string        `env:"BASE_PATH" envDefault:"/"`
	ProfilePath  string        `env:"PROFILE_PATH" envDefault:"assets/myData.json"`
	ProfileURL   string        `env:"PROFILE_URL"`
	AssetsDir    string        `env:"ASSETS_DIR" envDefault:"./assets"`
	StaticDir    string        `env:"STATIC_DIR" envDefault:"./static"`
	FetchTimeout time.Duration `env:"PROFILE_FETCH_TIMEOUT" envDefault:"10s"`
	OTelEndpoint string        `env:"OTEL_ENDPOINT"`
	OTelEnabled  bool          `env:"OTEL_ENABLED" envDefault:"true"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("PROFILE_FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	if c.ProfileURL != "" {
		u, err := url.Parse(c.ProfileURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("PROFILE_URL must be an absolute URL, got %q", c.ProfileURL)
		}
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// ProfileSource returns the URL the profile document is fetched from. Unless
// PROFILE_URL overrides it, the document is the site's own data file.
func (c *Config) ProfileSource() string {
	if c.ProfileURL != "" {
		return c.ProfileURL
	}
	return "http://127.0.0.1:" + c.Port + path.Join("/", c.BasePath, c.ProfilePath)
}
