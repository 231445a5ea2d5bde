// File: internal/services/item_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"campuscompass/internal/domain"
	"campuscompass/internal/repository/item"
)

// ItemService implements the report, mark-as-found and claim actions
// on top of the item repository.
type ItemService struct {
	itemRepo item.ItemRepository
	logger   Logger
}

func NewItemService(itemRepo item.ItemRepository, logger Logger) (*ItemService, error) {
	if itemRepo == nil {
		return nil, fmt.Errorf("item repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &ItemService{itemRepo: itemRepo, logger: logger}, nil
}

// ListItems returns every report, newest first. Optional filters narrow
// the list the same way the board UI does: by status tab, name search
// and category.
func (s *ItemService) ListItems(ctx context.Context, filter ItemFilter) ([]domain.Item, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return filter.apply(items), nil
}

// GetItem returns a single report by id.
func (s *ItemService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.itemRepo.FindByID(ctx, id)
}

// Report validates the submitted form and creates the item. On
// validation failure the returned error is a *domain.ValidationError
// carrying per-field messages, and nothing is stored.
func (s *ItemService) Report(ctx context.Context, input domain.ReportItemInput) (*domain.Item, error) {
	if ve := input.Validate(); ve != nil {
		s.logger.Debug("report rejected by validation", "fields", len(ve.Fields))
		return nil, ve
	}

	created, err := s.itemRepo.Create(ctx, input)
	if err != nil {
		s.logger.Error("failed to store reported item", "error", err)
		return nil, fmt.Errorf("storing item: %w", err)
	}

	s.logger.Info("item reported", "id", created.ID, "status", created.Status)
	return created, nil
}

// MarkAsFound flips a lost item's status to Found.
func (s *ItemService) MarkAsFound(ctx context.Context, id string) (*domain.Item, error) {
	updated, err := s.itemRepo.UpdateStatus(ctx, id, domain.StatusFound)
	if err != nil {
		s.logger.Warn("mark as found failed", "id", id, "error", err)
		return nil, err
	}
	s.logger.Info("item marked as found", "id", id)
	return updated, nil
}

// Claim resolves a posting by removing it from the board.
func (s *ItemService) Claim(ctx context.Context, id string) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		s.logger.Warn("claim failed", "id", id, "error", err)
		return err
	}
	s.logger.Info("item claimed", "id", id)
	return nil
}

// ItemFilter narrows a listing. Zero values mean "no filter".
type ItemFilter struct {
	Status   string
	Query    string
	Category string
}

func (f ItemFilter) apply(items []domain.Item) []domain.Item {
	if f.Status == "" && f.Query == "" && f.Category == "" {
		return items
	}
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if f.Status != "" && !strings.EqualFold(string(it.Status), f.Status) {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(f.Query)) {
			continue
		}
		if f.Category != "" && string(it.Category) != f.Category {
			continue
		}
		out = append(out, it)
	}
	return out
}
