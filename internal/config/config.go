package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort string
	AppHost string
	AppEnv  string

	MinioEndpoint  string
	MinioPort      string
	MinioAccessKey string
	MinioSecretKey string
	MinioSSL       bool
	MinioRegion    string

	// PublicURL overrides the computed bucket base URL when the store is
	// reachable through a frontend-facing proxy or CDN.
	PublicURL string
}

// LoadConfig loads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	minioSSL := false
	if sslEnv := os.Getenv("MINIO_USE_SSL"); sslEnv != "" {
		val, err := strconv.ParseBool(sslEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid MINIO_USE_SSL value: %v", err)
		}
		minioSSL = val
	}

	cfg := &Config{
		AppPort: getEnv("PORT", "3001"),
		AppHost: getEnv("HOST", "0.0.0.0"),
		AppEnv:  getEnv("APP_ENV", "development"),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost"),
		MinioPort:      getEnv("MINIO_PORT", "9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin123"),
		MinioSSL:       minioSSL,
		MinioRegion:    getEnv("MINIO_REGION", "us-east-1"),

		PublicURL: os.Getenv("FRONTEND_MINIO_URL"),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
