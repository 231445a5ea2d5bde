// File: internal/services/assistant_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"campuscompass/internal/services/ai"
)

const assistantPersona = `You are a friendly and helpful assistant for the Campus Compass app, a lost and found platform for a university campus.
Your goal is to assist users with their questions about the app, lost and found items, and give helpful advice.
Keep your responses concise and to the point.
The current date is %s.
You cannot perform actions like reporting items for the user. You should guide them to use the "Report Item" button.
When asked about specific items, you can mention that you don't have real-time access to the item database but can give general advice.`

// AssistantReply is one assistant answer, both as the raw model text
// and rendered to HTML for the web client.
type AssistantReply struct {
	Reply     string `json:"reply"`
	ReplyHTML string `json:"replyHtml"`
}

// AssistantService answers free-text questions under a fixed persona.
// Calls are stateless: the caller resends the whole history each turn.
type AssistantService struct {
	provider ai.CompletionProvider
	retry    *ai.RetryService
	markdown goldmark.Markdown
	logger   Logger
}

func NewAssistantService(provider ai.CompletionProvider, retry *ai.RetryService, logger Logger) (*AssistantService, error) {
	if provider == nil {
		return nil, fmt.Errorf("completion provider is required")
	}
	if retry == nil {
		return nil, fmt.Errorf("retry service is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &AssistantService{
		provider: provider,
		retry:    retry,
		markdown: goldmark.New(),
		logger:   logger,
	}, nil
}

// Reply sends the conversation to the model and returns its answer.
func (s *AssistantService) Reply(ctx context.Context, history []ai.Turn, message string) (*AssistantReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message cannot be empty")
	}

	system := fmt.Sprintf(assistantPersona, time.Now().Format("1/2/2006"))

	var text string
	err := s.retry.RetryWithTimeout(ctx, func(ctx context.Context) error {
		var callErr error
		text, callErr = s.provider.Chat(ctx, system, history, message)
		return callErr
	})
	if err != nil {
		s.logger.Error("assistant call failed", "error", err)
		return nil, err
	}

	var html bytes.Buffer
	if convErr := s.markdown.Convert([]byte(text), &html); convErr != nil {
		// Rendering is best effort; the plain reply is still usable.
		s.logger.Warn("markdown rendering failed", "error", convErr)
		html.Reset()
	}

	return &AssistantReply{Reply: text, ReplyHTML: html.String()}, nil
}
