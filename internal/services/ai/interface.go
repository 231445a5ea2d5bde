// File: internal/services/ai/interface.go
package ai

import "context"

// Turn roles as the hosted model APIs name them.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior exchange in an assistant conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionProvider handles generative model calls. Both hosted
// providers (OpenAI-compatible and Gemini) implement it.
type CompletionProvider interface {
	// Complete sends a single prompt and returns the model's reply.
	Complete(ctx context.Context, prompt string) (string, error)
	// Chat sends a system instruction, the full conversation history
	// and the latest user message. Calls are stateless; the caller
	// resends the history each turn.
	Chat(ctx context.Context, system string, history []Turn, message string) (string, error)
	HealthCheck(ctx context.Context) error
}

// Logger is the minimal logging surface the provider layer needs.
// It matches the services.Logger interface.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}
