package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Data     DataConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName         string
	Environment     string
	HTTPPort        string
	CORSAllowOrigin string
}

type DataConfig struct {
	Source string
	Dir    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:         req("APP_NAME"),
		Environment:     req("APP_ENV"),
		HTTPPort:        req("HTTP_PORT"),
		CORSAllowOrigin: opt("CORS_ALLOW_ORIGIN", "http://localhost:3000"),
	}

	cfg.Data = DataConfig{
		Source: strings.ToLower(opt("DATA_SOURCE", DataSourceCSV)),
		Dir:    opt("DATA_DIR", "./data"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", ""),
		DBPort:     opt("DB_PORT", ""),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      parseTTL(opt("REDIS_TTL", "")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	switch cfg.Data.Source {
	case DataSourceCSV, DataSourcePostgres:
	default:
		return Config{}, fmt.Errorf("unknown DATA_SOURCE %q", cfg.Data.Source)
	}

	return cfg, nil
}

func parseTTL(raw string) time.Duration {
	if raw == "" {
		return 10 * time.Minute
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}
