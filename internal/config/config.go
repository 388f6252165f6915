// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// Port the HTTP server listens on.
	Port string `default:"8080"`
	// DataDir, when set, points at CSV constituent tables that override the
	// bundled station calibration.
	DataDir string `split_words:"true"`
	// Station selects which station calibration to serve.
	Station string `default:"hondau"`
	// CORSAllowedOrigins is a comma-separated origin list; empty allows all.
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &c, nil
}
