// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

// Provider names accepted by NewProvider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	// Provider selection
	Provider string

	// OpenAI-compatible configuration
	OpenAIKey     string
	OpenAIBaseURL string

	// Gemini configuration
	GeminiKey string

	// Model parameters
	Model       string
	Temperature float32

	// Call behavior
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.0-flash",
		Temperature: 0.7,
		Timeout:     60 * time.Second,
		MaxRetries:  3,
		RetryDelay:  2 * time.Second,
	}
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return NewConfigError("OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderGemini:
		if c.GeminiKey == "" {
			return NewConfigError("GEMINI_API_KEY is required for the gemini provider")
		}
	default:
		return NewConfigError(fmt.Sprintf("unknown AI provider %q", c.Provider))
	}
	if c.Model == "" {
		return NewConfigError("CHAT_MODEL_NAME is required")
	}
	if c.Timeout <= 0 {
		return NewConfigError("timeout must be positive")
	}
	if c.MaxRetries < 0 {
		return NewConfigError("max retries cannot be negative")
	}
	return nil
}
