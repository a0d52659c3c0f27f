package cli

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cybertec-postgresql/pgscript/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	ConnectionString: "",
	Timeout:          30 * time.Second,
	RowLimit:         types.DefaultRowLimit,
	Verbose:          false,
}

// fileConfig mirrors Config with the field representation used in the
// TOML config file.
type fileConfig struct {
	Connection     string `toml:"connection"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	RowLimit       int64  `toml:"row_limit"`
	Verbose        bool   `toml:"verbose"`
}

// LoadConfigFile merges values from a TOML config file into c. Zero-valued
// file entries leave the corresponding setting untouched.
func LoadConfigFile(c *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	if fc.Connection != "" {
		c.ConnectionString = fc.Connection
	}
	if fc.TimeoutSeconds != 0 {
		c.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.RowLimit != 0 {
		c.RowLimit = fc.RowLimit
	}
	if fc.Verbose {
		c.Verbose = true
	}
	return nil
}

// ApplyFlagsToConfig applies command-line flag values to configuration.
// Flags take precedence over the config file.
func ApplyFlagsToConfig(c *Config, connection string, timeout time.Duration,
	rowLimit int64, verbose bool) {

	if connection != "" {
		c.ConnectionString = connection
	}
	if timeout != 0 {
		c.Timeout = timeout
	}
	if rowLimit != 0 {
		c.RowLimit = rowLimit
	}
	if verbose {
		c.Verbose = true
	}
}
