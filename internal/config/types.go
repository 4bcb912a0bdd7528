// internal/config/types.go

// Package config provides YAML configuration for LinkHarvester: the
// enrichment fetcher, the export destination and the API server. Every
// field has a default, so a config file is optional.
package config

import (
	"time"
)

// Config is the root configuration document.
type Config struct {
	// Name identifies this configuration.
	Name string `yaml:"name" json:"name"`

	// Enrich controls the optional HTTP metadata fetch.
	Enrich EnrichConfig `yaml:"enrich" json:"enrich"`

	// Output controls where and how results are exported.
	Output OutputConfig `yaml:"output" json:"output"`

	// Server configures the HTTP API.
	Server ServerConfig `yaml:"server" json:"server"`
}

// EnrichConfig defines the enrichment fetcher settings.
type EnrichConfig struct {
	// Enabled turns per-URL metadata fetching on.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Timeout is the per-request timeout, as a duration string.
	Timeout string `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// UserAgent overrides the default browser-like User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty" json:"user_agent,omitempty"`
}

// OutputConfig defines the export destination.
type OutputConfig struct {
	// Format is one of json, csv, html, excel.
	Format string `yaml:"format" json:"format"`

	// File is the output path. Empty means stdout (json only).
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// ServerConfig defines the HTTP API settings.
type ServerConfig struct {
	// ListenAddress is the host:port the server binds.
	ListenAddress string `yaml:"listen_address" json:"listen_address"`

	// RateLimit is the allowed request rate per second; zero disables
	// the limiter.
	RateLimit float64 `yaml:"rate_limit,omitempty" json:"rate_limit,omitempty"`

	// RateBurst is the limiter burst size.
	RateBurst int `yaml:"rate_burst,omitempty" json:"rate_burst,omitempty"`
}

// EnrichTimeout parses the enrichment timeout, falling back to the
// default when unset or unparseable input survived validation.
func (c *Config) EnrichTimeout() time.Duration {
	if c.Enrich.Timeout == "" {
		return 10 * time.Second
	}
	d, err := time.ParseDuration(c.Enrich.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
