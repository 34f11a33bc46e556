// Package config provides configuration management for the sqlparser CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults, the
// YAML config file, SQLPARSER_* environment variables, then flags given on
// the command line.
package config

import "time"

// Default configuration values.
const (
	DefaultDialect      = "generic"
	DefaultOutput       = "text"
	DefaultAddr         = "127.0.0.1:8722"
	DefaultReadTimeout  = 10 * time.Second
	DefaultParseTimeout = 2 * time.Second
	DefaultMaxBodyBytes = 1 << 20
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ConfigFileNames are searched for in the working directory, in order.
var ConfigFileNames = []string{"sqlparser.yaml", "sqlparser.yml", ".sqlparser.yaml"}

// Config holds all CLI configuration options.
type Config struct {
	Dialect string       `koanf:"dialect"`
	Output  string       `koanf:"output"`
	Verbose bool         `koanf:"verbose"`
	Workers int          `koanf:"workers"` // files parsed concurrently; 0 means one per CPU
	Server  ServerConfig `koanf:"server"`
}

// ServerConfig holds configuration for the HTTP parse service.
type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	ParseTimeout time.Duration `koanf:"parse_timeout"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		Dialect: DefaultDialect,
		Output:  DefaultOutput,
		Server: ServerConfig{
			Addr:         DefaultAddr,
			ReadTimeout:  DefaultReadTimeout,
			ParseTimeout: DefaultParseTimeout,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}
