package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	LogLevel  string
	JWTSecret string

	UserStore   string
	UsersTable  string
	DatabaseURL string

	MetricsUsername string
	MetricsPassword string
}

func Load() *Config {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	return &Config{
		Env:       getEnv("ENV", "development"),
		Port:      getEnvInt("PORT", 8000),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		UserStore:   getEnv("USER_STORE", StoreMemory),
		UsersTable:  getEnv("USERS_TABLE", "personnel-users"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		MetricsUsername: os.Getenv("METRICS_USERNAME"),
		MetricsPassword: os.Getenv("METRICS_PASSWORD"),
	}
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		if c.Env != "development" {
			return fmt.Errorf("JWT_SECRET is required outside development")
		}
		c.JWTSecret = "dev-secret"
	}

	switch c.UserStore {
	case StoreMemory:
	case StoreDynamoDB:
		if c.UsersTable == "" {
			return fmt.Errorf("USERS_TABLE is required when USER_STORE is %q", StoreDynamoDB)
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when USER_STORE is %q", StorePostgres)
		}
	default:
		return fmt.Errorf("USER_STORE must be one of memory, dynamodb, postgres, got: %s", c.UserStore)
	}
	return nil
}

// InLambda reports whether the process was started by the Lambda runtime.
func InLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
