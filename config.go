package goCounter

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// Config defines the runtime settings of a counter service.
//
// Config instances are intended to be configured during initialization and then treated as immutable.
type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	Store StoreConfig `yaml:"store"`
	Redis RedisConfig `yaml:"redis"`
	CORS  CORSConfig  `yaml:"cors"`
	Log   LogConfig   `yaml:"log"`
}

/*
====================================
HTTP CONFIG
====================================
*/

// HTTPConfig controls the listening server.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

/*
====================================
STORE CONFIG
====================================
*/

// StoreBackend selects the counter store implementation.
type StoreBackend string

const (
	// StoreMemory keeps counters in process memory (default).
	StoreMemory StoreBackend = "memory"
	// StoreRedis keeps counters in a Redis hash.
	StoreRedis StoreBackend = "redis"
)

// StoreConfig selects the backend used by Build.
type StoreConfig struct {
	Backend StoreBackend `yaml:"backend"`
}

// RedisConfig is only consulted when Store.Backend is StoreRedis.
type RedisConfig struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	Prefix      string        `yaml:"prefix"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

/*
====================================
CORS CONFIG
====================================
*/

// CORSConfig mirrors the cross-origin policy applied by middleware.CORS.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

/*
====================================
LOG CONFIG
====================================
*/

// LogConfig controls the zerolog logger built by the server binary.
type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Format string `yaml:"format"` // "json" (default) or "console"
}

// DefaultConfig returns the configuration used when nothing is overridden:
// memory store on :8000 with the permissive cross-origin policy.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8000",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Backend: StoreMemory,
		},
		Redis: RedisConfig{
			Addr:        "localhost:6379",
			Prefix:      "ctr",
			DialTimeout: 2 * time.Second,
		},
		CORS: CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{
				http.MethodOptions,
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
			},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.CORS.AllowedOrigins = cloneStrings(cfg.CORS.AllowedOrigins)
	out.CORS.AllowedMethods = cloneStrings(cfg.CORS.AllowedMethods)
	out.CORS.AllowedHeaders = cloneStrings(cfg.CORS.AllowedHeaders)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Validate reports the first invalid setting, or nil.
func (c *Config) Validate() error {
	// HTTP
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("HTTP Addr must not be empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 || c.HTTP.IdleTimeout < 0 {
		return errors.New("HTTP timeouts must be >= 0")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return errors.New("HTTP ShutdownTimeout must be > 0")
	}

	// Store
	switch c.Store.Backend {
	case StoreMemory:
	case StoreRedis:
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return errors.New("Redis Addr must not be empty when Store Backend is redis")
		}
		if c.Redis.DB < 0 {
			return errors.New("Redis DB must be >= 0")
		}
		if strings.ContainsAny(c.Redis.Prefix, " \r\n") {
			return errors.New("Redis Prefix must not contain whitespace")
		}
		if c.Redis.DialTimeout < 0 {
			return errors.New("Redis DialTimeout must be >= 0")
		}
	default:
		return errors.New("unsupported Store Backend")
	}

	// CORS
	if c.CORS.Enabled {
		if len(c.CORS.AllowedOrigins) == 0 {
			return errors.New("CORS AllowedOrigins must not be empty when CORS is enabled")
		}
		if len(c.CORS.AllowedMethods) == 0 {
			return errors.New("CORS AllowedMethods must not be empty when CORS is enabled")
		}
		if c.CORS.MaxAge < 0 {
			return errors.New("CORS MaxAge must be >= 0")
		}
	}

	// Log
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return errors.New("unsupported Log Level")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return errors.New("unsupported Log Format")
	}

	return nil
}
