// File: internal/handlers/chat_handler.go
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

type ChatHandler struct {
	ChatService *services.ChatService
}

func NewChatHandler(cs *services.ChatService) *ChatHandler {
	return &ChatHandler{ChatService: cs}
}

// GetChatData returns an item together with its full message history.
// Used for the first render of the chat page and for refresh-after-send.
func (h *ChatHandler) GetChatData(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	data, err := h.ChatService.GetChatData(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, item.ErrItemNotFound) {
			writeError(w, "Item not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// SendMessage appends a message to an item's chat channel.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input domain.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.ChatService.SendMessage(r.Context(), input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusUnprocessableEntity, ve)
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Failed to send message.",
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"sent":    msg,
	})
}
