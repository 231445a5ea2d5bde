// File: internal/services/ai/gemini_provider.go
package ai

import (
	"context"

	genai "google.golang.org/genai"
)

// GeminiProvider is a thin wrapper around the official genai client.
// Retries and timeouts are applied by the RetryService, not here.
type GeminiProvider struct {
	config *Config
	cli    *genai.Client
}

func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, NewProviderError("init", "failed to create gemini client", err)
	}
	return &GeminiProvider{config: config, cli: cli}, nil
}

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.cli.Models.GenerateContent(ctx, p.config.Model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{Temperature: genai.Ptr(p.config.Temperature)},
	)
	if err != nil {
		return "", NewProviderError("completion", "failed to generate content", err)
	}
	return geminiText(resp, "completion")
}

func (p *GeminiProvider) Chat(ctx context.Context, system string, history []Turn, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr(p.config.Temperature)}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := p.cli.Models.GenerateContent(ctx, p.config.Model, contents, cfg)
	if err != nil {
		return "", NewProviderError("chat", "failed to generate content", err)
	}
	return geminiText(resp, "chat")
}

func (p *GeminiProvider) HealthCheck(ctx context.Context) error {
	return nil
}

func geminiText(resp *genai.GenerateContentResponse, operation string) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: operation,
			Message:   "empty model response",
		}
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
