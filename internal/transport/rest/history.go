package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
	"github.com/heartmarshall/photo-curation-backend/internal/service/history"
)

type historyService interface {
	GetHistory(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryEntry, error)
}

// HistoryHandler serves the /api/search-history endpoint.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

type historyEntryResponse struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResponse struct {
	SearchHistory []historyEntryResponse `json:"searchHistory"`
}

// GetHistory handles GET /api/search-history?userId=. A missing or malformed
// userId cannot name a user and is answered like an unknown one.
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusNotFound, history.MsgUserNotFound)
		return
	}

	entries, err := h.svc.GetHistory(r.Context(), userID)
	if err != nil {
		handleError(r.Context(), h.log, w, err, "Failed to get search history")
		return
	}

	resp := historyResponse{SearchHistory: make([]historyEntryResponse, len(entries))}
	for i, e := range entries {
		resp.SearchHistory[i] = historyEntryResponse{Query: e.Query, Timestamp: e.Timestamp}
	}
	writeJSON(w, http.StatusOK, resp)
}
