// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath    string
	APIPort   string
	UploadDir string

	JWTSecret string
	JWTTTL    time.Duration

	UseLLM     bool
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	ChunkSize     int
	RetrievalTopK int

	LogLevel  string
	LogFormat string // "text" or "json"
}

// Load reads configuration from environment variables and returns a
// Config struct. A .env file in the current directory is loaded first;
// variables already set in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:     getEnv("DB_PATH", "./data/emotiva-math.db"),
		APIPort:    getEnv("API_PORT", "8080"),
		UploadDir:  getEnv("UPLOAD_DIR", "./data/uploads"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		UseLLM:     getEnv("USE_LLM", "false") == "true",
		LLMBaseURL: getEnv("LLM_BASE_URL", "http://localhost:8081"),
		LLMModel:   getEnv("LLM_MODEL", "Llama-3.1-8B-Instruct"),
		LLMAPIKey:  getEnv("LLM_API_KEY", "dummy-key"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("JWT_TTL_HOURS must be a positive integer")
	}
	cfg.JWTTTL = time.Duration(ttlHours) * time.Hour

	cfg.ChunkSize, err = strconv.Atoi(getEnv("CHUNK_SIZE", "500"))
	if err != nil || cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("CHUNK_SIZE must be a positive integer")
	}

	cfg.RetrievalTopK, err = strconv.Atoi(getEnv("RETRIEVAL_TOP_K", "3"))
	if err != nil || cfg.RetrievalTopK <= 0 {
		return nil, fmt.Errorf("RETRIEVAL_TOP_K must be a positive integer")
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json")
	}

	// Create the data directory for the DB file if needed.
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
