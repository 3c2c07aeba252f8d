package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string
	APIVersion    string

	// Storage configuration
	StorageBackend   string // dynamodb or memory (development only)
	AWSRegion        string
	DynamoDBTable    string
	HistoryIndexName string // GSI1 - recency-ordered history listing

	// Solver configuration
	GeminiAPIKey string
	GeminiModel  string

	// Authentication
	JWTSigningMethod string // RS256 against the identity provider key, HS256 for development
	JWTPublicKey     string
	JWTSecret        string
	JWTIssuer        string
	JWTAudience      string

	// Logging
	LogLevel string

	// CORS
	EnableCORS     bool
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		APIVersion:    getEnv("API_VERSION", "1.0.0"),

		StorageBackend:   getEnv("STORAGE_BACKEND", "dynamodb"),
		AWSRegion:        getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable:    getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", "mathsolver")),
		HistoryIndexName: getEnv("HISTORY_INDEX_NAME", "HistoryIndex"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		JWTSigningMethod: getEnv("JWT_SIGNING_METHOD", "HS256"),
		JWTPublicKey:     getEnv("JWT_PUBLIC_KEY", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTIssuer:        getEnv("JWT_ISSUER", "mathsolver-backend"),
		JWTAudience:      getEnv("JWT_AUDIENCE", "mathsolver-api"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		EnableCORS:     getEnvBool("ENABLE_CORS", true),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.StorageBackend != "dynamodb" && c.StorageBackend != "memory" {
		return fmt.Errorf("unsupported storage backend: %s", c.StorageBackend)
	}
	if c.Environment == "production" {
		if c.StorageBackend != "dynamodb" {
			return fmt.Errorf("STORAGE_BACKEND must be dynamodb in production")
		}
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required in production")
		}
		if c.DynamoDBTable == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required")
		}
		if c.JWTSigningMethod == "RS256" && c.JWTPublicKey == "" {
			return fmt.Errorf("JWT_PUBLIC_KEY is required for RS256")
		}
		if c.JWTSigningMethod == "HS256" && c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required for HS256")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated environment variable with a default value
func getEnvList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
