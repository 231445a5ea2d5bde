// File: internal/handlers/log_handler.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FrontendLogPayload is the shape of log events the board UI reports.
type FrontendLogPayload struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Context any    `json:"context,omitempty"`
}

// LogFrontendEvent records a client-side event server-side so browser
// failures show up next to server logs.
func LogFrontendEvent(w http.ResponseWriter, r *http.Request) {
	var payload FrontendLogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	slog.Info("CLIENT_LOG",
		slog.String("level", payload.Level),
		slog.String("message", payload.Message),
		slog.Any("context", payload.Context),
	)

	w.WriteHeader(http.StatusNoContent)
}
