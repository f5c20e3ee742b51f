package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Cache.Backend != "null" {
		t.Errorf("Cache.Backend = %q, want null", cfg.Cache.Backend)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("Store.Backend = %q, want file", cfg.Store.Backend)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
log_level = "debug"

[cache]
backend = "redis"
addr = "localhost:6379"

[store]
backend = "mongo"
uri = "mongodb://localhost:27017"
db_name = "graphreduce"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Addr != "localhost:6379" {
		t.Errorf("Cache = %+v, want redis backend at localhost:6379", cfg.Cache)
	}
	if cfg.Store.Backend != "mongo" || cfg.Store.DBName != "graphreduce" {
		t.Errorf("Store = %+v, want mongo backend named graphreduce", cfg.Store)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
