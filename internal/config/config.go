// Package config holds the shape-serve process configuration.
//
// Nothing is baked in as a compile-time constant: listen address, document
// root and buffer size are explicit values so tests can bind ephemeral
// ports and point at temporary document roots.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete server configuration.
type Config struct {
	Addr           string   `yaml:"addr"`             // TCP listen address, host:port
	Root           string   `yaml:"root"`             // document root directory
	ReadBufferSize int      `yaml:"read_buffer_size"` // bytes read per connection, one read
	ReadTimeout    Duration `yaml:"read_timeout"`     // per-connection read deadline
	WriteTimeout   Duration `yaml:"write_timeout"`    // per-connection write deadline
	ServerToken    string   `yaml:"server_token"`     // Server response header value
	Jail           bool     `yaml:"jail"`             // contain file lookups under Root
	Trace          bool     `yaml:"trace"`            // log requests as AST structures
}

// Default returns the stock configuration: loopback port 8080, "public"
// document root, a 1 KiB request buffer and 10s I/O deadlines.
func Default() Config {
	return Config{
		Addr:           "127.0.0.1:8080",
		Root:           "public",
		ReadBufferSize: 1024,
		ReadTimeout:    Duration(10 * time.Second),
		WriteTimeout:   Duration(10 * time.Second),
		ServerToken:    "RustRawHTTP/1.0",
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr must not be empty")
	}
	if c.Root == "" {
		return fmt.Errorf("config: root must not be empty")
	}
	if c.ReadBufferSize <= 0 {
		return fmt.Errorf("config: read_buffer_size must be positive, got %d", c.ReadBufferSize)
	}
	return nil
}

// Duration is a time.Duration that unmarshals from YAML strings like "10s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
