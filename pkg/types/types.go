package types

import (
	"fmt"
	"time"
)

// DefaultRowLimit is the cap on rows a single query may materialize.
// Queries whose guard count exceeds it return an error instead of rows.
const DefaultRowLimit int64 = 100_000

// Config holds runtime configuration combining flags, a config file, and defaults
type Config struct {
	// PostgreSQL connection
	ConnectionString string // URI or key=value format

	// Execution
	Timeout  time.Duration // Per-script timeout
	RowLimit int64         // Max rows a query may return

	// Output
	Verbose bool // Enable debug logging
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values the driver cannot run with
func (c *Config) Validate() error {
	if c.ConnectionString == "" {
		return &ConfigError{Field: "connection", Message: "connection string is required"}
	}
	if c.Timeout <= 0 {
		return &ConfigError{Field: "timeout", Message: "timeout must be positive"}
	}
	if c.RowLimit <= 0 {
		return &ConfigError{Field: "row_limit", Message: "row limit must be positive"}
	}
	return nil
}
