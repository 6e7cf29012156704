package config

import (
	"fmt"
	"time"

	"courselibrary-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig reads pool tuning from environment variables and
// returns the config consumed by the database package.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	maxConnLifetime, err := time.ParseDuration(getEnv("PG_MAX_CONN_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PG_MAX_CONN_LIFETIME: %w", err)
	}

	maxConnIdleTime, err := time.ParseDuration(getEnv("PG_MAX_CONN_IDLE_TIME", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PG_MAX_CONN_IDLE_TIME: %w", err)
	}

	healthCheckPeriod, err := time.ParseDuration(getEnv("PG_HEALTH_CHECK_PERIOD", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PG_HEALTH_CHECK_PERIOD: %w", err)
	}

	retryDelay, err := time.ParseDuration(getEnv("PG_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PG_RETRY_DELAY: %w", err)
	}

	connectTimeout, err := time.ParseDuration(getEnv("PG_CONNECT_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PG_CONNECT_TIMEOUT: %w", err)
	}

	return &database.DBConfig{
		Host:     getEnv("PG_HOST", "localhost"),
		Port:     getEnvInt("PG_PORT", 5432),
		Username: getEnv("PG_USERNAME", "postgres"),
		Password: getEnv("PG_PASSWORD", "postgres"),
		DBName:   getEnv("PG_DBNAME", "courselibrary"),
		SSLMode:  getEnv("PG_SSLMODE", "disable"),

		MaxConns:          int32(getEnvInt("PG_MAX_CONNS", 25)),
		MinConns:          int32(getEnvInt("PG_MIN_CONNS", 5)),
		MaxConnLifetime:   maxConnLifetime,
		MaxConnIdleTime:   maxConnIdleTime,
		HealthCheckPeriod: healthCheckPeriod,

		MaxRetries:     getEnvInt("PG_MAX_RETRIES", 5),
		RetryDelay:     retryDelay,
		ConnectTimeout: connectTimeout,
	}, nil
}
