// File: internal/services/match_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campuscompass/internal/domain"
	"campuscompass/internal/repository/item"
	"campuscompass/internal/services/ai"
)

var ErrNotLostItem = errors.New("matching is only available for lost items")

// candidatePrefix is the delimiter convention shared with the hosted
// model: every candidate line reads "ID:<itemId> - <description>" and
// the model is asked to echo matching lines back verbatim. Identifier
// recovery therefore depends on the model preserving this format;
// unparseable lines are dropped rather than failing the call.
const candidatePrefix = "ID:"

const candidateSeparator = " - "

// MatchService delegates lost/found matching to the hosted model. No
// matching logic runs locally; this service only formats the request
// and recovers item ids from the reply.
type MatchService struct {
	itemRepo item.ItemRepository
	provider ai.CompletionProvider
	retry    *ai.RetryService
	logger   Logger
}

func NewMatchService(itemRepo item.ItemRepository, provider ai.CompletionProvider, retry *ai.RetryService, logger Logger) (*MatchService, error) {
	if itemRepo == nil {
		return nil, fmt.Errorf("item repository is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("completion provider is required")
	}
	if retry == nil {
		return nil, fmt.Errorf("retry service is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &MatchService{itemRepo: itemRepo, provider: provider, retry: retry, logger: logger}, nil
}

// FindMatches asks the model which found items plausibly match the
// given lost item and returns those items. An empty result is normal:
// either nothing has been found yet or nothing matched.
func (s *MatchService) FindMatches(ctx context.Context, itemID string) ([]domain.Item, error) {
	lost, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if lost.Status != domain.StatusLost {
		return nil, ErrNotLostItem
	}

	found, err := s.itemRepo.FindFound(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing found items: %w", err)
	}
	if len(found) == 0 {
		return []domain.Item{}, nil
	}

	candidates := make([]string, len(found))
	for i, it := range found {
		candidates[i] = candidatePrefix + it.ID + candidateSeparator + it.Description
	}

	prompt := buildMatchPrompt(lost.Description, candidates)

	var reply string
	err = s.retry.RetryWithTimeout(ctx, func(ctx context.Context) error {
		var callErr error
		reply, callErr = s.provider.Complete(ctx, prompt)
		return callErr
	})
	if err != nil {
		s.logger.Error("matching call failed", "item_id", itemID, "error", err)
		return nil, err
	}

	matchedIDs := parseMatchedIDs(reply)
	s.logger.Info("matching complete", "item_id", itemID, "candidates", len(found), "matches", len(matchedIDs))

	byID := make(map[string]domain.Item, len(found))
	for _, it := range found {
		byID[it.ID] = it
	}
	matches := make([]domain.Item, 0, len(matchedIDs))
	for _, id := range matchedIDs {
		if it, ok := byID[id]; ok {
			matches = append(matches, it)
			delete(byID, id)
		}
	}
	return matches, nil
}

func buildMatchPrompt(lostDescription string, candidates []string) string {
	var b strings.Builder
	b.WriteString("You are an AI assistant designed to match lost items with found items based on their descriptions.\n\n")
	b.WriteString("Given the description of a lost item and a list of descriptions of found items, identify the found items that are potential matches for the lost item.\n\n")
	b.WriteString("Lost Item Description: ")
	b.WriteString(lostDescription)
	b.WriteString("\nFound Item Descriptions:\n")
	for _, c := range candidates {
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString("\nConsider factors such as item type, color, size, and any unique characteristics mentioned in the descriptions.\n")
	b.WriteString("Return only found item descriptions that are potential matches, one per line, exactly as given including the ID prefix.\n")
	b.WriteString("Do not return found items that are clearly not a match.\n")
	b.WriteString("If nothing matches, return nothing.\n")
	b.WriteString("Do not explain your reasoning.\n")
	return b.String()
}

// parseMatchedIDs recovers item ids from the model reply, one
// candidate line at a time. Bullets and surrounding whitespace are
// tolerated; anything else that does not follow the convention is
// skipped.
func parseMatchedIDs(reply string) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-* ")
		if !strings.HasPrefix(line, candidatePrefix) {
			continue
		}
		rest := strings.TrimPrefix(line, candidatePrefix)
		id, _, ok := strings.Cut(rest, candidateSeparator)
		if !ok {
			// A bare "ID:<id>" with no description still resolves.
			id = rest
		}
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
