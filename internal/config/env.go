package config

import (
	"os"
	"strconv"
)

// FromEnv overlays UUIDGEN_* environment variables onto cfg. Values that do
// not parse are ignored.
func FromEnv(cfg *Config) {
	if v := os.Getenv("UUIDGEN_NAMESPACE"); v != "" {
		cfg.Namespace = v
	}
	if v := os.Getenv("UUIDGEN_SINK"); v != "" {
		cfg.Sink.Kind = v
	}
	if v := os.Getenv("UUIDGEN_DSN"); v != "" {
		cfg.Sink.DSN = v
	}
	if v := os.Getenv("UUIDGEN_TABLE"); v != "" {
		cfg.Sink.Table = v
	}
	if v := os.Getenv("UUIDGEN_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sink.BatchSize = n
		}
	}
	if v := os.Getenv("UUIDGEN_REDIS_KEY"); v != "" {
		cfg.Sink.RedisKey = v
	}
	if v := os.Getenv("UUIDGEN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("UUIDGEN_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("UUIDGEN_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("UUIDGEN_LOG_COMPRESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Compress = b
		}
	}
}
