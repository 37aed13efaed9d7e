package photo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

// MsgPhotoNotFound is returned when tags are added to an unknown photo.
const MsgPhotoNotFound = "No photo found with the given photoId"

// AddTags appends tags to an existing photo. The photo row is locked for the
// duration of the transaction so concurrent calls cannot exceed the cap.
// The cumulative cap is checked before the shape of the new tags.
func (s *Service) AddTags(ctx context.Context, input AddTagsInput) ([]domain.Tag, error) {
	var added []domain.Tag
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.photos.LockForUpdate(txCtx, input.PhotoID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewNotFoundError(MsgPhotoNotFound)
			}
			return fmt.Errorf("lock photo: %w", err)
		}

		existing, err := s.tags.CountByPhotoID(txCtx, input.PhotoID)
		if err != nil {
			return fmt.Errorf("count tags: %w", err)
		}

		if existing+len(input.Tags) > domain.MaxTagsPerPhoto {
			return domain.NewValidationError("tags", domain.MsgTagLimitExceeded)
		}

		if err := input.Validate(); err != nil {
			return err
		}

		added, err = s.tags.CreateBatch(txCtx, input.PhotoID, existing, input.Tags)
		if err != nil {
			return fmt.Errorf("create tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("photo.AddTags: %w", err)
	}

	s.log.InfoContext(ctx, "tags added",
		slog.String("photo_id", input.PhotoID.String()),
		slog.Int("count", len(added)))

	return added, nil
}
