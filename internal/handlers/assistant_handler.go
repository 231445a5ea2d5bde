// File: internal/handlers/assistant_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"campuscompass/internal/services"
	"campuscompass/internal/services/ai"
)

type AssistantHandler struct {
	AssistantService *services.AssistantService
}

func NewAssistantHandler(as *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{AssistantService: as}
}

type assistantRequest struct {
	History []ai.Turn `json:"history"`
	Message string    `json:"message"`
}

// Ask forwards a question plus the full conversation history to the
// assistant. Provider failure comes back as the generic apology, never
// as a crash.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, "Message cannot be empty", http.StatusBadRequest)
		return
	}
	for _, turn := range req.History {
		if turn.Role != ai.RoleUser && turn.Role != ai.RoleModel {
			writeError(w, "History roles must be user or model", http.StatusBadRequest)
			return
		}
	}

	reply, err := h.AssistantService.Reply(r.Context(), req.History, req.Message)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"reply": "Sorry, I encountered an error. Please try again.",
		})
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
