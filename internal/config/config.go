// Package config loads a goCounter.Config from the process environment.
//
// Precedence, lowest first: built-in defaults, the YAML file named by
// COUNTER_CONFIG, then individual environment variables. A .env file in the
// working directory is loaded into the environment first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	goCounter "github.com/MrEthical07/goCounter"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	// EnvConfigFile names an optional YAML file overlaid on the defaults.
	EnvConfigFile = "COUNTER_CONFIG"
	// EnvAddr sets HTTP.Addr, e.g. ":8000".
	EnvAddr = "COUNTER_ADDR"
	// EnvStore selects the backend: "memory" or "redis".
	EnvStore = "COUNTER_STORE"
	// EnvLogLevel sets Log.Level.
	EnvLogLevel = "COUNTER_LOG_LEVEL"
	// EnvLogFormat sets Log.Format: "json" or "console".
	EnvLogFormat = "COUNTER_LOG_FORMAT"
	// EnvShutdownTimeout sets HTTP.ShutdownTimeout as a Go duration.
	EnvShutdownTimeout = "COUNTER_SHUTDOWN_TIMEOUT"
	// EnvRedisAddr sets Redis.Addr.
	EnvRedisAddr = "REDIS_ADDR"
	// EnvRedisPassword sets Redis.Password.
	EnvRedisPassword = "REDIS_PASSWORD"
	// EnvRedisDB sets Redis.DB.
	EnvRedisDB = "REDIS_DB"
	// EnvRedisPrefix sets Redis.Prefix.
	EnvRedisPrefix = "REDIS_PREFIX"
)

// Load builds and validates the configuration.
func Load() (goCounter.Config, error) {
	// Load .env if present
	_ = godotenv.Load()

	cfg := goCounter.DefaultConfig()

	if path := getString(EnvConfigFile, ""); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return goCounter.Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return goCounter.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return goCounter.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *goCounter.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *goCounter.Config) error {
	cfg.HTTP.Addr = getString(EnvAddr, cfg.HTTP.Addr)
	cfg.Store.Backend = goCounter.StoreBackend(strings.ToLower(getString(EnvStore, string(cfg.Store.Backend))))
	cfg.Log.Level = getString(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = getString(EnvLogFormat, cfg.Log.Format)

	cfg.Redis.Addr = getString(EnvRedisAddr, cfg.Redis.Addr)
	cfg.Redis.Password = getString(EnvRedisPassword, cfg.Redis.Password)
	cfg.Redis.Prefix = getString(EnvRedisPrefix, cfg.Redis.Prefix)

	if v := getString(EnvRedisDB, ""); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", EnvRedisDB, v, err)
		}
		cfg.Redis.DB = db
	}

	if v := getString(EnvShutdownTimeout, ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", EnvShutdownTimeout, v, err)
		}
		cfg.HTTP.ShutdownTimeout = d
	}

	return nil
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
