// File: internal/services/ai/provider.go
package ai

import "context"

// NewProvider builds the configured completion provider.
func NewProvider(ctx context.Context, config *Config) (CompletionProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(config), nil
	case ProviderGemini:
		return NewGeminiProvider(ctx, config)
	default:
		return nil, NewConfigError("unknown AI provider " + config.Provider)
	}
}
