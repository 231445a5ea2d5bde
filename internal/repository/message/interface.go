package message

import (
	"context"

	"campuscompass/internal/domain"
)

// MessageRepository handles chat message data operations.
type MessageRepository interface {
	// FindByChatID returns every message in the channel, oldest first.
	// A channel with no messages yet is valid and yields an empty slice.
	FindByChatID(ctx context.Context, chatID string) ([]domain.ChatMessage, error)
	// Create appends a message with a fresh id and timestamp and
	// returns the stored record. The chatID is trusted; the store does
	// not check that it belongs to an existing item.
	Create(ctx context.Context, chatID, text string, sender domain.Sender) (*domain.ChatMessage, error)
}
