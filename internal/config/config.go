package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Env  string
	Port string
	URL  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig backs the duplicate-submission guard. Addr may be empty; the
// guard then degrades to the database-only check.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	SubmitWindow time.Duration
}

// AdminConfig guards the /admin routes with a static key. The office staff
// is a handful of volunteers; full account management is out of scope for
// this service.
type AdminConfig struct {
	APIKey string
}

type CORSConfig struct {
	Origins []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	submitWindow, _ := time.ParseDuration(getEnv("REGISTER_SUBMIT_WINDOW", "30s"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	cfg := &Config{
		App: AppConfig{
			Env:  getEnv("APP_ENV", "development"),
			Port: getEnv("APP_PORT", "8080"),
			URL:  getEnv("APP_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "vietngu"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "vietngu"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", ""),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           redisDB,
			SubmitWindow: submitWindow,
		},
		Admin: AdminConfig{
			APIKey: getEnv("ADMIN_API_KEY", ""),
		},
		CORS: CORSConfig{
			Origins: func() []string {
				raw := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")
				var normalized []string
				for _, o := range raw {
					o = strings.TrimSpace(o)
					o = strings.TrimSuffix(o, "/")
					if o != "" {
						normalized = append(normalized, o)
					}
				}
				return normalized
			}(),
		},
	}

	// Validate critical configuration
	if cfg.App.Env == "production" && cfg.Admin.APIKey == "" {
		return nil, errors.New("ADMIN_API_KEY must be configured in production environment")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
