package photo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

// MsgNoPhotosForTag is returned when no stored tag carries the searched name.
const MsgNoPhotosForTag = "No record for the given tag found"

// SearchByTag returns every photo carrying a tag named exactly input.Tag,
// ordered by save date. Each photo carries its complete tag list. When a user
// is given the search is appended to their history; a failure to record it is
// logged and does not fail the search.
func (s *Service) SearchByTag(ctx context.Context, input SearchByTagInput) ([]domain.Photo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ids, err := s.tags.PhotoIDsByName(ctx, input.Tag)
	if err != nil {
		return nil, fmt.Errorf("photo.SearchByTag: %w", err)
	}
	if len(ids) == 0 {
		return nil, domain.NewNotFoundError(MsgNoPhotosForTag)
	}

	photos, err := s.photos.ListByIDs(ctx, ids, input.Order())
	if err != nil {
		return nil, fmt.Errorf("photo.SearchByTag: %w", err)
	}

	tags, err := s.tags.ListByPhotoIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("photo.SearchByTag: %w", err)
	}

	byPhoto := make(map[uuid.UUID][]domain.Tag, len(photos))
	for _, t := range tags {
		byPhoto[t.PhotoID] = append(byPhoto[t.PhotoID], t)
	}
	for i := range photos {
		photos[i].Tags = byPhoto[photos[i].ID]
		if photos[i].Tags == nil {
			photos[i].Tags = []domain.Tag{}
		}
	}

	if input.UserID != nil {
		if _, err := s.history.Create(ctx, *input.UserID, input.Tag); err != nil {
			s.log.ErrorContext(ctx, "record search history",
				slog.String("user_id", input.UserID.String()),
				slog.String("query", input.Tag),
				slog.String("error", err.Error()))
		}
	}

	return photos, nil
}
