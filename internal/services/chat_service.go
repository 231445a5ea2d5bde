// File: internal/services/chat_service.go
package services

import (
	"context"
	"fmt"

	"campuscompass/internal/domain"
	"campuscompass/internal/repository/item"
	"campuscompass/internal/repository/message"
)

// ChatData bundles an item with its full message history, as both the
// first render and refresh-after-send need them together.
type ChatData struct {
	Item     domain.Item          `json:"item"`
	Messages []domain.ChatMessage `json:"messages"`
}

// ChatService implements the per-item chat actions.
type ChatService struct {
	itemRepo    item.ItemRepository
	messageRepo message.MessageRepository
	logger      Logger
}

func NewChatService(itemRepo item.ItemRepository, messageRepo message.MessageRepository, logger Logger) (*ChatService, error) {
	if itemRepo == nil {
		return nil, fmt.Errorf("item repository is required")
	}
	if messageRepo == nil {
		return nil, fmt.Errorf("message repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &ChatService{itemRepo: itemRepo, messageRepo: messageRepo, logger: logger}, nil
}

// GetChatData fetches the item and its channel history. A missing item
// surfaces as item.ErrItemNotFound.
func (s *ChatService) GetChatData(ctx context.Context, itemID string) (*ChatData, error) {
	it, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.messageRepo.FindByChatID(ctx, it.ChatID)
	if err != nil {
		return nil, fmt.Errorf("fetching messages for chat %s: %w", it.ChatID, err)
	}
	return &ChatData{Item: *it, Messages: msgs}, nil
}

// SendMessage validates and appends a chat message. Validation failures
// come back as *domain.ValidationError with no message stored.
func (s *ChatService) SendMessage(ctx context.Context, input domain.SendMessageInput) (*domain.ChatMessage, error) {
	if ve := input.Validate(); ve != nil {
		return nil, ve
	}

	msg, err := s.messageRepo.Create(ctx, input.ChatID, input.Message, domain.Sender(input.Sender))
	if err != nil {
		s.logger.Error("failed to store chat message", "chat_id", input.ChatID, "error", err)
		return nil, fmt.Errorf("storing message: %w", err)
	}

	s.logger.Info("chat message sent", "chat_id", msg.ChatID, "sender", msg.Sender)
	return msg, nil
}
