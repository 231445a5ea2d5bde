package message

import (
	"context"
	"errors"
	"testing"

	"campuscompass/internal/domain"
)

func TestFindByChatIDEmptyChannel(t *testing.T) {
	repo := NewMemoryMessageRepository()

	msgs, err := repo.FindByChatID(context.Background(), "fresh-channel")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected empty history for fresh channel, got %d messages", len(msgs))
	}
}

func TestCreateRejectsEmptyText(t *testing.T) {
	repo := NewMemoryMessageRepository()

	if _, err := repo.Create(context.Background(), "chat-1", "   ", domain.SenderOwner); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestMessagesKeepChannelOrder(t *testing.T) {
	repo := NewMemoryMessageRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, "chat-1", "Is this your backpack?", domain.SenderOwner)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := repo.Create(ctx, "chat-1", "Yes! Where did you find it?", domain.SenderFinder)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if _, err := repo.Create(ctx, "chat-2", "Unrelated channel", domain.SenderOwner); err != nil {
		t.Fatalf("create other channel: %v", err)
	}

	msgs, err := repo.FindByChatID(ctx, "chat-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages in chat-1, got %d", len(msgs))
	}
	if msgs[0].ID != first.ID || msgs[1].ID != second.ID {
		t.Fatalf("messages out of order: %+v", msgs)
	}
	if msgs[0].ID == msgs[1].ID {
		t.Fatalf("messages share an id")
	}
	if msgs[0].Sender != domain.SenderOwner || msgs[1].Sender != domain.SenderFinder {
		t.Fatalf("sender roles lost: %+v", msgs)
	}
	if msgs[1].Timestamp.Before(msgs[0].Timestamp) {
		t.Fatalf("timestamps not non-decreasing")
	}
}
