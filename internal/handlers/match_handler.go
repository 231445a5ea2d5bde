// File: internal/handlers/match_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"campuscompass/internal/repository/item"
	"campuscompass/internal/services"
)

type MatchHandler struct {
	MatchService *services.MatchService
}

func NewMatchHandler(ms *services.MatchService) *MatchHandler {
	return &MatchHandler{MatchService: ms}
}

// FindMatches runs AI matching for a freshly reported lost item and
// returns the found items the model considers plausible counterparts.
func (h *MatchHandler) FindMatches(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	matches, err := h.MatchService.FindMatches(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, item.ErrItemNotFound):
			writeError(w, "Item not found", http.StatusNotFound)
		case errors.Is(err, services.ErrNotLostItem):
			writeError(w, "Matching is only available for lost items", http.StatusBadRequest)
		default:
			// Provider failure has no side effect; the caller just
			// gets no matches this time.
			writeJSON(w, http.StatusBadGateway, map[string]string{
				"message": "Matching is temporarily unavailable. Please try again later.",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
