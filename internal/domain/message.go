// File: internal/domain/message.go
package domain

import (
	"strings"
	"time"
)

// Sender is the role label attached to a chat message. It is derived
// from which side of the item the writer is on, not from any
// authenticated identity.
type Sender string

const (
	SenderOwner  Sender = "Owner"
	SenderFinder Sender = "Finder"
)

// IsValid reports whether s is a known sender role.
func (s Sender) IsValid() bool {
	return s == SenderOwner || s == SenderFinder
}

// ChatMessage is a single message within an item's chat channel.
// Messages are append-only: never mutated, never deleted.
type ChatMessage struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chatId"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// SendMessageInput carries the form fields of an outgoing chat message.
type SendMessageInput struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// Validate checks the send-message form.
func (in SendMessageInput) Validate() *ValidationError {
	ve := NewValidationError("Failed to send message.")

	if strings.TrimSpace(in.ChatID) == "" {
		ve.Add("chatId", "Chat ID is required.")
	}
	if strings.TrimSpace(in.Message) == "" {
		ve.Add("message", "Message cannot be empty.")
	}
	if !Sender(in.Sender).IsValid() {
		ve.Add("sender", "Sender must be either Owner or Finder.")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
