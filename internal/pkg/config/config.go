package config

import (
	"fmt"
	"os"
	"time"
)

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
}

// WeatherConfig holds the server-side weather integration settings. The API
// key is never shipped to clients.
type WeatherConfig struct {
	APIKey  string
	BaseURL string
	City    string
	Timeout time.Duration
}

type Config struct {
	Repositories RepositoriesConfig
	Auth         AuthConfig
	Weather      WeatherConfig
	ServerPort   string
	MetricsPort  string
	PprofPort    string
}

func Load() (*Config, error) {
	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
				DB:       getEnvOrDefault("POSTGRES_DB", "wanderer"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: 30,
				MinConns: 5,
			},
		},
		Auth: AuthConfig{
			JWTSecret:       getEnvOrDefault("JWT_SECRET_KEY", ""),
			TokenExpiration: 24 * time.Hour,
		},
		Weather: WeatherConfig{
			APIKey:  getEnvOrDefault("OPENWEATHER_API_KEY", ""),
			BaseURL: getEnvOrDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
			City:    getEnvOrDefault("WEATHER_CITY", "Legazpi,PH"),
			Timeout: 10 * time.Second,
		},
		ServerPort:  getEnvOrDefault("SERVER_PORT", "8080"),
		MetricsPort: getEnvOrDefault("METRICS_PORT", ":9092"),
		PprofPort:   getEnvOrDefault("PPROF_PORT", ":6060"),
	}

	if cfg.Repositories.Postgres.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
