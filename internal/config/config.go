package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sink kinds understood by the sink package.
const (
	SinkStdout = "stdout"
	SinkSQLite = "sqlite"
	SinkMySQL  = "mysql"
	SinkRedis  = "redis"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// Namespace is used by the v3 and v5 commands when --namespace is not
	// given. It is either a well-known name (dns, url, oid, x500) or a UUID.
	Namespace string `toml:"namespace" yaml:"namespace"`
	Sink      Sink   `toml:"sink" yaml:"sink"`
	Log       Log    `toml:"log" yaml:"log"`
}

// Sink selects where generated identifiers are delivered.
type Sink struct {
	Kind      string `toml:"kind" yaml:"kind"`
	DSN       string `toml:"dsn" yaml:"dsn"`
	Table     string `toml:"table" yaml:"table"`
	BatchSize int    `toml:"batch_size" yaml:"batch_size"`
	RedisKey  string `toml:"redis_key" yaml:"redis_key"`
}

// Log configures the tool's logger. An empty File logs to stderr.
type Log struct {
	Level      string `toml:"level" yaml:"level"`
	Format     string `toml:"format" yaml:"format"`
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `toml:"compress" yaml:"compress"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Namespace: "dns",
		Sink: Sink{
			Kind:      SinkStdout,
			Table:     "uuids",
			BatchSize: 500,
			RedisKey:  "uuids",
		},
		Log: Log{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads configuration from a TOML or YAML file (by extension). If path
// is empty, returns defaults. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(b), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Sink.Kind {
	case SinkStdout:
	case SinkSQLite, SinkMySQL:
		if c.Sink.DSN == "" {
			return fmt.Errorf("sink %s requires a dsn", c.Sink.Kind)
		}
		if !validIdentifier(c.Sink.Table) {
			return fmt.Errorf("invalid table name %q", c.Sink.Table)
		}
	case SinkRedis:
		if c.Sink.DSN == "" {
			return errors.New("sink redis requires a dsn")
		}
		if c.Sink.RedisKey == "" {
			return errors.New("sink redis requires a redis_key")
		}
	default:
		return fmt.Errorf("unknown sink %q; use stdout|sqlite|mysql|redis", c.Sink.Kind)
	}
	if c.Sink.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.Sink.BatchSize)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q; use text|json", c.Log.Format)
	}
	return nil
}

// validIdentifier accepts plain SQL identifiers, since table names are
// interpolated into statements.
func validIdentifier(s string) bool {
	if s == "" || len(s) > 64 {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
