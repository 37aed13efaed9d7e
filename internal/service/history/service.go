package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

// Client-facing messages for history lookups.
const (
	MsgUserNotFound = "No user found with the given userId"
	MsgNoHistory    = "search history not found for the given userId"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type historyRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryEntry, error)
}

// Service reads per-user search history.
type Service struct {
	log     *slog.Logger
	users   userRepo
	history historyRepo
}

// NewService creates a new search history service.
func NewService(logger *slog.Logger, users userRepo, history historyRepo) *Service {
	return &Service{
		log:     logger.With("service", "history"),
		users:   users,
		history: history,
	}
}

// GetHistory returns the user's searches in the order they were made.
// An unknown user and a user without searches both yield a NotFoundError.
func (s *Service) GetHistory(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryEntry, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(MsgUserNotFound)
		}
		return nil, fmt.Errorf("history.GetHistory: %w", err)
	}

	entries, err := s.history.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history.GetHistory: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.NewNotFoundError(MsgNoHistory)
	}

	s.log.DebugContext(ctx, "history loaded",
		slog.String("user_id", userID.String()),
		slog.Int("entries", len(entries)))

	return entries, nil
}
