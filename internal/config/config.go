// internal/config/config.go
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration filename cannot be empty")
	}

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %v", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes loads configuration from YAML bytes. Environment
// variables referenced as $VAR or ${VAR} are expanded before parsing.
func LoadFromBytes(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("configuration data cannot be empty")
	}

	expanded := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %v", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	return &config, nil
}

// LoadFromReader loads configuration from an io.Reader.
func LoadFromReader(reader io.Reader) (*Config, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader cannot be nil")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read from reader: %v", err)
	}

	return LoadFromBytes(data)
}

// Default returns a configuration with every default applied.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// applyDefaults fills unset fields.
func applyDefaults(config *Config) {
	if config.Name == "" {
		config.Name = "linkharvester"
	}
	if config.Enrich.Timeout == "" {
		config.Enrich.Timeout = "10s"
	}
	if config.Output.Format == "" {
		config.Output.Format = "json"
	}
	if config.Server.ListenAddress == "" {
		config.Server.ListenAddress = ":8080"
	}
	if config.Server.RateLimit == 0 {
		config.Server.RateLimit = 10
	}
	if config.Server.RateBurst == 0 {
		config.Server.RateBurst = 20
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "csv", "html", "excel":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}

	if c.Output.Format != "json" && c.Output.File == "" {
		return fmt.Errorf("output format %s requires an output file", c.Output.Format)
	}

	if c.Enrich.Timeout != "" {
		if _, err := time.ParseDuration(c.Enrich.Timeout); err != nil {
			return fmt.Errorf("invalid enrich timeout %q: %v", c.Enrich.Timeout, err)
		}
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server rate limit cannot be negative")
	}
	if c.Server.RateBurst < 0 {
		return fmt.Errorf("server rate burst cannot be negative")
	}

	return nil
}

// GenerateTemplate returns a fully populated configuration suitable for
// dumping as a starting point.
func GenerateTemplate() *Config {
	config := Default()
	config.Name = "my-extraction"
	config.Enrich.Enabled = true
	config.Output.File = "results.json"
	return config
}
