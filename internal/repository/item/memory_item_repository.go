// File: internal/repository/item/memory_item_repository.go
package item

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"campuscompass/internal/domain"
)

var ErrItemNotFound = errors.New("item not found")
var ErrInvalidTransition = errors.New("found items cannot be marked lost again")

// PlaceholderImageURL is assigned to every report; image upload is not
// part of the reporting form.
const PlaceholderImageURL = "https://placehold.co/600x400.png"

// memoryItemRepository keeps the whole board in process memory. The
// state is process-lifetime only; losing it on restart is accepted.
// The mutex serializes mutations because requests are handled on
// concurrent goroutines.
type memoryItemRepository struct {
	mu    sync.RWMutex
	items []domain.Item
}

func NewMemoryItemRepository() ItemRepository {
	return &memoryItemRepository{}
}

func (r *memoryItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Item, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReportedAt.After(out[j].ReportedAt)
	})
	return out, nil
}

func (r *memoryItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *memoryItemRepository) FindFound(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Item, 0)
	for _, it := range r.items {
		if it.Status == domain.StatusFound {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memoryItemRepository) Create(ctx context.Context, input domain.ReportItemInput) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newItem := domain.Item{
		ID:          uuid.NewString(),
		ChatID:      uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Category:    domain.ItemCategory(input.Category),
		Status:      domain.ItemStatus(input.Status),
		Location:    input.Location,
		Contact:     input.Contact,
		ImageURL:    PlaceholderImageURL,
		ReportedAt:  time.Now(),
	}

	// Newest report goes to the head, matching list order.
	r.items = append([]domain.Item{newItem}, r.items...)
	return &newItem, nil
}

func (r *memoryItemRepository) UpdateStatus(ctx context.Context, id string, status domain.ItemStatus) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		// Status only ever moves Lost -> Found; a found item is
		// resolved by claiming (deletion), never by relisting it.
		if r.items[i].Status == domain.StatusFound && status == domain.StatusLost {
			return nil, ErrInvalidTransition
		}
		r.items[i].Status = status
		it := r.items[i]
		return &it, nil
	}
	return nil, ErrItemNotFound
}

func (r *memoryItemRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}
