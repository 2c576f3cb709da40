// Package config loads process configuration from the environment.
//
// An optional .env file is read first; variables already set in the
// environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the full process configuration.
type Config struct {
	Env      string
	Port     string
	LogLevel string

	DB DBConfig

	// AutoMigrate applies the embedded schema on startup.
	AutoMigrate bool

	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// DBConfig selects and tunes the storage driver.
type DBConfig struct {
	Driver   string
	URL      string // postgres DSN
	Path     string // sqlite file
	MaxConns int32
	MinConns int32
}

// IsDevelopment reports whether the process runs with development defaults.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads files (default ".env"), then the environment, and validates the result.
// Missing env files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var errs []error
	cfg := Config{
		Env:      getEnv("APP_ENV", "development"),
		Port:     getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			URL:      os.Getenv("DATABASE_URL"),
			Path:     os.Getenv("DATABASE_PATH"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10, &errs)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 2, &errs)),
		},
		AutoMigrate:        getEnvBool("AUTO_MIGRATE", false, &errs),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second, &errs),
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	var errs []error

	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT: invalid port %q", c.Port))
	}

	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.URL == "" {
			errs = append(errs, errors.New("DATABASE_URL: required for postgres driver"))
		}
	case DriverSQLite:
		if c.DB.Path == "" {
			errs = append(errs, errors.New("DATABASE_PATH: required for sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER: unsupported driver %q", c.DB.Driver))
	}

	if c.DB.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS: must be > 0, got %d", c.DB.MaxConns))
	}
	if c.DB.MinConns < 0 || c.DB.MinConns > c.DB.MaxConns {
		errs = append(errs, fmt.Errorf("DB_MIN_CONNS: must be between 0 and %d, got %d", c.DB.MaxConns, c.DB.MinConns))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: must be positive, got %s", c.ShutdownTimeout))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid integer %q", key, value))
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool, errs *[]error) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid boolean %q", key, value))
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, value))
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
