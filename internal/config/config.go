package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"

	CatalogModePerRequest = "per_request"
	CatalogModeCached     = "cached"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type CatalogConfig struct {
	Source string
	Path   string
	Mode   string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

var databaseRequiredEnv = []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER"}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads the full service configuration.
func Load() (Config, error) {
	return load(true)
}

// LoadTooling reads configuration for command line tools that do not serve
// HTTP, so APP_ENV and HTTP_PORT are optional.
func LoadTooling() (Config, error) {
	return load(false)
}

func load(serving bool) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	def := func(key, fallback string) string {
		if v := opt(key); v != "" {
			return v
		}
		return fallback
	}
	oneOf := func(key, fallback string, allowed ...string) string {
		v := strings.ToLower(def(key, fallback))
		for _, a := range allowed {
			if v == a {
				return v
			}
		}
		invalid = append(invalid, key)
		return v
	}
	boolean := func(key string, fallback bool) bool {
		raw := opt(key)
		if raw == "" {
			return fallback
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return fallback
		}
		return v
	}
	seconds := func(key string, fallback time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return fallback
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return fallback
		}
		return time.Duration(v) * time.Second
	}
	int32Val := func(key string) int32 {
		raw := opt(key)
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return 0
		}
		return int32(v)
	}

	cfg.App = AppConfig{
		AppName:     def("APP_NAME", "SkillPath API"),
		Environment: opt("APP_ENV"),
		HTTPPort:    opt("HTTP_PORT"),
	}
	if serving {
		cfg.App.Environment = req("APP_ENV")
		cfg.App.HTTPPort = req("HTTP_PORT")
	}

	cfg.Log = LogConfig{
		JSON:  oneOf("LOG_FORMAT", "console", "console", "json") == "json",
		Debug: oneOf("LOG_LEVEL", "info", "info", "debug") == "debug",
	}

	cfg.Catalog = CatalogConfig{
		Source: oneOf("CATALOG_SOURCE", CatalogSourceFile, CatalogSourceFile, CatalogSourcePostgres),
		Path:   def("CATALOG_PATH", "careers.json"),
		Mode:   oneOf("CATALOG_MODE", CatalogModePerRequest, CatalogModePerRequest, CatalogModeCached),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  def("DB_SSL_MODE", "disable"),

		ConnectTimeout:        seconds("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32Val("DB_POOL_MAX_CONNS"),
		PoolMinConns:          int32Val("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   seconds("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   seconds("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: seconds("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Redis = RedisConfig{
		Enabled:  boolean("REDIS_ENABLED", false),
		Host:     def("REDIS_HOST", "localhost"),
		Port:     def("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      seconds("REDIS_TTL", 600*time.Second),
	}

	if cfg.Catalog.Source == CatalogSourcePostgres {
		for _, key := range databaseRequiredEnv {
			if opt(key) == "" {
				missing = append(missing, key)
			}
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// Configured reports whether every connection setting in
// databaseRequiredEnv is present.
func (c DatabaseConfig) Configured() bool {
	return c.DBHost != "" && c.DBPort != "" && c.DBName != "" && c.DBUser != ""
}

// DatabaseRequiredEnv lists the variables Configured checks.
func DatabaseRequiredEnv() []string {
	return append([]string(nil), databaseRequiredEnv...)
}
