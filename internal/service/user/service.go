package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Service implements user registration.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
