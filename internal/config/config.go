// Package config loads the landing server configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the landing server configuration.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr"`

	// ShutdownTimeout bounds graceful shutdown, as a duration string.
	ShutdownTimeout string `yaml:"shutdown_timeout"`

	Site      SiteConfig      `yaml:"site"`
	Overrides OverridesConfig `yaml:"overrides"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SiteConfig is the document metadata of the landing page.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	// Assets is the URL prefix the stylesheet is served under.
	Assets string `yaml:"assets"`
	// Scripts replace the default htmx and iconify script URLs when set.
	Scripts []string `yaml:"scripts,omitempty"`
}

// OverridesConfig locates the content override file.
type OverridesConfig struct {
	// Path is a YAML, TOML or JSON file. Empty means no overrides.
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		ShutdownTimeout: "10s",
		Site: SiteConfig{
			Title:       "Warehouse Maestro",
			Description: "Warehouse management software for inventory, fulfillment and analytics.",
			Assets:      "/static",
		},
		Overrides: OverridesConfig{
			Watch: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("LANDING_ADDR"); addr != "" {
		c.Addr = addr
	}
	if path := os.Getenv("LANDING_OVERRIDES"); path != "" {
		c.Overrides.Path = path
	}
	if level := os.Getenv("LANDING_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetShutdownTimeout returns the shutdown timeout as a duration.
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Validate reports configuration that cannot be served.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address not configured")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.Logging.Format)
	}
	return nil
}

// Logger builds the zap logger described by the logging section.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	zc := zap.NewProductionConfig()
	if c.Logging.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
