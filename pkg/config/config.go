// Package config loads graphreduce's runtime configuration from a TOML
// file.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// CacheConfig selects and configures the Cache backend.
type CacheConfig struct {
	Backend string        `toml:"backend"` // "null", "file", or "redis"
	Dir     string        `toml:"dir"`     // used by the file backend
	Addr    string        `toml:"addr"`    // used by the redis backend
	TTL     time.Duration `toml:"ttl"`
}

// StoreConfig selects and configures the Store backend.
type StoreConfig struct {
	Backend string `toml:"backend"` // "file" or "mongo"
	Dir     string `toml:"dir"`     // used by the file backend
	URI     string `toml:"uri"`     // used by the mongo backend
	DBName  string `toml:"db_name"`
}

// Config is graphreduce's top-level runtime configuration.
type Config struct {
	Cache    CacheConfig `toml:"cache"`
	Store    StoreConfig `toml:"store"`
	LogLevel string      `toml:"log_level"`
}

// Default returns the configuration used when no config file is present:
// a null cache, file-backed run history in the file store's default
// directory (~/.config/graphreduce/runs), and info-level logging.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend: "null",
			TTL:     time.Hour,
		},
		Store: StoreConfig{
			Backend: "file",
			Dir:     "",
		},
		LogLevel: "info",
	}
}

// Load reads and parses a TOML config file at path, filling in defaults
// for anything left unset.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
