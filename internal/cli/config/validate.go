package config

import (
	"fmt"
	"runtime"

	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/all"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := all.ByFlag(c.Dialect); err != nil {
		return fmt.Errorf("invalid dialect: %w", err)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: must be one of text, json, yaml", c.Output)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.ParseTimeout <= 0 {
		return fmt.Errorf("server.parse_timeout must be positive, got %s", c.Server.ParseTimeout)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// GetDialect resolves the configured dialect.
func (c *Config) GetDialect() (*dialect.Dialect, error) {
	return all.ByFlag(c.Dialect)
}

// GetWorkers returns the configured parallelism, defaulting to one per CPU.
func (c *Config) GetWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
