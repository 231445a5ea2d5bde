package item

import (
	"context"

	"campuscompass/internal/domain"
)

// ItemRepository handles item data operations.
type ItemRepository interface {
	// FindAll returns every item, newest report first.
	FindAll(ctx context.Context) ([]domain.Item, error)
	// FindByID returns the item with the given id or ErrItemNotFound.
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// FindFound returns the items with status Found, used as matching
	// candidates.
	FindFound(ctx context.Context) ([]domain.Item, error)
	// Create assigns id, chatId, reportedAt and the placeholder image,
	// inserts the item and returns the stored record.
	Create(ctx context.Context, input domain.ReportItemInput) (*domain.Item, error)
	// UpdateStatus mutates the status of an existing item in place.
	UpdateStatus(ctx context.Context, id string, status domain.ItemStatus) (*domain.Item, error)
	// Delete removes the item with the given id.
	Delete(ctx context.Context, id string) error
}
