// internal/handlers/health_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"go_keiko_flashcards/internal/config"
)

// Pinger は疎通確認ができる接続 (*sql.DB など)
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, logger: logger}
}

// Health は死活監視用。version / status ヘッダーを付けて返す
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("version", config.AppVersion)

	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			h.logger.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			w.Header().Set("status", "unavailable")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.Header().Set("status", "alive")
	w.WriteHeader(http.StatusOK)
}
