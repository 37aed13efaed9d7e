package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

// CreateUser registers a new user. A taken email yields domain.ErrConflict,
// both when detected up front and when the unique constraint fires.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("user.CreateUser: email %q: %w", input.Email, domain.ErrConflict)
	}

	u, err := s.users.Create(ctx, &domain.User{Username: input.Username, Email: input.Email})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user.CreateUser: email %q: %w", input.Email, domain.ErrConflict)
		}
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.String("user_id", u.ID.String()))

	return u, nil
}
