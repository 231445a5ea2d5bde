// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	Environment   string
	AIProvider    string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string
	ChatModelName string
	SeedDemoData  bool
}

// Load reads configuration from environment variables or a .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		Environment:   env,
		AIProvider:    strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		ChatModelName: getEnv("CHAT_MODEL_NAME", "gemini-2.0-flash"),
		SeedDemoData:  getEnvAsBool("SEED_DEMO_DATA", true),
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		switch cfg.AIProvider {
		case "openai":
			if cfg.OpenAIAPIKey == "" {
				missing = append(missing, "OPENAI_API_KEY")
			}
		case "gemini":
			if cfg.GeminiAPIKey == "" {
				missing = append(missing, "GEMINI_API_KEY")
			}
		default:
			log.Fatalf("Unknown AI_PROVIDER %q (expected openai or gemini)", cfg.AIProvider)
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an env var as a boolean, with a fallback.
func getEnvAsBool(key string, defaultValue bool) bool {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as boolean. Using default value.", key)
		return defaultValue
	}
	return boolValue
}
