package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// http server
	APP_PORT string
	// logger
	LOG_FILE_PATH string
	// render defaults
	RENDER_OUTPUT_PATH string
	// optional database source for /render/query
	DB_HOST              string
	DB_PORT              int
	DB_USER              string
	DB_PASSWORD          string
	DB_NAME              string
	DB_SSL_MODE          string
	DB_CONN_MAX_LIFETIME time.Duration
	DB_MAX_IDLE_CONNS    int
	DB_MAX_OPEN_CONNS    int
	MAX_QUERY_ROWS       int
}

// DatabaseConfigured reports whether a query source database was set up.
// The HTTP query route is only registered when it is.
func (c *envConfig) DatabaseConfigured() bool {
	return c.DB_HOST != "" && c.DB_NAME != ""
}

func LoadEnvConfig() error {
	// A missing .env file is fine; the process environment still applies.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		APP_PORT:             getEnvString("APP_PORT", "8080"),
		LOG_FILE_PATH:        getEnvString("LOG_FILE_PATH", ""),
		RENDER_OUTPUT_PATH:   getEnvString("RENDER_OUTPUT_PATH", "output.xlsx"),
		DB_HOST:              getEnvString("DB_HOST", ""),
		DB_PORT:              getEnvInt("DB_PORT", 5432),
		DB_USER:              getEnvString("DB_USER", "postgres"),
		DB_PASSWORD:          getEnvString("DB_PASSWORD", "postgres"),
		DB_NAME:              getEnvString("DB_NAME", ""),
		DB_SSL_MODE:          getEnvString("DB_SSL_MODE", "disable"),
		DB_CONN_MAX_LIFETIME: getEnvDuration("DB_CONN_MAX_LIFETIME", 20*time.Minute),
		DB_MAX_IDLE_CONNS:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DB_MAX_OPEN_CONNS:    getEnvInt("DB_MAX_OPEN_CONNS", 100),
		MAX_QUERY_ROWS:       getEnvInt("MAX_QUERY_ROWS", 10000),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
