// File: internal/repository/message/memory_message_repository.go
package message

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"campuscompass/internal/domain"
)

var ErrEmptyMessage = errors.New("message text cannot be empty")

// memoryMessageRepository keys messages by chat channel. Append-only:
// a stored message is never mutated or removed.
type memoryMessageRepository struct {
	mu       sync.RWMutex
	channels map[string][]domain.ChatMessage
}

func NewMemoryMessageRepository() MessageRepository {
	return &memoryMessageRepository{
		channels: make(map[string][]domain.ChatMessage),
	}
}

func (r *memoryMessageRepository) FindByChatID(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.channels[chatID]
	out := make([]domain.ChatMessage, len(msgs))
	copy(out, msgs)
	// Messages are appended with monotonic timestamps, so insertion
	// order already is timestamp order.
	return out, nil
}

func (r *memoryMessageRepository) Create(ctx context.Context, chatID, text string, sender domain.Sender) (*domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
	r.channels[chatID] = append(r.channels[chatID], msg)
	return &msg, nil
}
