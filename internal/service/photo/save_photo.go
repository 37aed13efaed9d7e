package photo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

// SavePhoto stores a provider photo together with its initial tags. The photo
// and its tags are written in one transaction. An owner that does not exist
// is a validation error.
func (s *Service) SavePhoto(ctx context.Context, input SavePhotoInput) (*domain.Photo, error) {
	if err := input.Validate(s.trustedPrefix); err != nil {
		return nil, err
	}

	var saved *domain.Photo
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.photos.Create(txCtx, &domain.Photo{
			ImageURL:       input.ImageURL,
			Description:    input.Description,
			AltDescription: input.AltDescription,
			DateSaved:      s.now(),
			UserID:         input.UserID,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("userId", domain.MsgInvalidUserID)
			}
			return fmt.Errorf("create photo: %w", err)
		}

		tags, err := s.tags.CreateBatch(txCtx, p.ID, 0, input.Tags)
		if err != nil {
			return fmt.Errorf("create tags: %w", err)
		}
		p.Tags = tags

		saved = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("photo.SavePhoto: %w", err)
	}

	s.log.InfoContext(ctx, "photo saved",
		slog.String("photo_id", saved.ID.String()),
		slog.Int("tags", len(saved.Tags)))

	return saved, nil
}
