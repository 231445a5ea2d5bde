// File: internal/handlers/item_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"campuscompass/internal/domain"
	"campuscompass/internal/repository/item"
	"campuscompass/internal/services"
)

type ItemHandler struct {
	ItemService *services.ItemService
}

func NewItemHandler(is *services.ItemService) *ItemHandler {
	return &ItemHandler{ItemService: is}
}

// ListItems handles the board listing. Optional query params narrow it:
// ?status=lost|found, ?q=<name search>, ?category=<category>.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	filter := services.ItemFilter{
		Status:   r.URL.Query().Get("status"),
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	items, err := h.ItemService.ListItems(r.Context(), filter)
	if err != nil {
		writeError(w, "Could not retrieve items", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// GetItem returns a single report.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	it, err := h.ItemService.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, item.ErrItemNotFound) {
			writeError(w, "Item not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// ReportItem handles the report form submission.
func (h *ItemHandler) ReportItem(w http.ResponseWriter, r *http.Request) {
	var input domain.ReportItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.ItemService.Report(r.Context(), input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusUnprocessableEntity, ve)
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Database Error: Failed to report item.",
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Item reported successfully!",
		"item":    created,
	})
}

// MarkAsFound flips a lost item to Found. The response always carries a
// success flag and a user-facing message; failures never panic.
func (h *ItemHandler) MarkAsFound(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	updated, err := h.ItemService.MarkAsFound(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to update item."
		switch {
		case errors.Is(err, item.ErrItemNotFound):
			status = http.StatusNotFound
			message = "Item not found."
		case errors.Is(err, item.ErrInvalidTransition):
			status = http.StatusConflict
			message = "Found items cannot be marked as lost again."
		}
		writeJSON(w, status, map[string]interface{}{"success": false, "message": message})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Item marked as found.",
		"item":    updated,
	})
}

// ClaimItem resolves a posting by removing it from the board.
func (h *ItemHandler) ClaimItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ItemService.Claim(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		message := "Failed to claim item."
		if errors.Is(err, item.ErrItemNotFound) {
			status = http.StatusNotFound
			message = "Item not found."
		}
		writeJSON(w, status, map[string]interface{}{"success": false, "message": message})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Item claimed and removed from the board.",
	})
}
