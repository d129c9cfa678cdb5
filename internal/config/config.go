package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	App AppConfig
	Ai  AIConfig
}

type AppConfig struct {
	Port        string
	Environment string
	LogFilePath string
}

type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	// Mock forces fallback-only operation: no model is ever called.
	Mock bool
	// ScreenChangeThreshold is the Jaccard similarity below which two
	// OCR snapshots count as different screens.
	ScreenChangeThreshold float64
}

// LoadConfig loads configuration from .env file and environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// If .env file doesn't exist, that's fine, we'll use environment variables
		log.Println("Note: .env file not found, using system environment")
	}

	config := &Config{
		App: AppConfig{
			Port:        getEnvOrDefault("PORT", "8000"),
			Environment: getEnvOrDefault("GO_ENV", "development"),
			LogFilePath: getEnvOrDefault("LOG_FILE_PATH", "kimate.log"),
		},
		Ai: AIConfig{
			APIKey:                getEnvOrDefault("OPENAI_API_KEY", ""),
			Model:                 getEnvOrDefault("OPENAI_MODEL", "gpt-5.1"),
			BaseURL:               getEnvOrDefault("OPENAI_BASE_URL", ""),
			Mock:                  getEnvAsBool("AI_SERVER_MOCK", false),
			ScreenChangeThreshold: getEnvAsFloat("SCREEN_CHANGE_THRESHOLD", 0.6),
		},
	}

	if config.Ai.ScreenChangeThreshold < 0 || config.Ai.ScreenChangeThreshold > 1 {
		return nil, fmt.Errorf("SCREEN_CHANGE_THRESHOLD must be within [0,1], got %v", config.Ai.ScreenChangeThreshold)
	}

	return config, nil
}

// getEnvOrDefault retrieves an environment variable or returns a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value == "1" || value == "true"
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using default %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
