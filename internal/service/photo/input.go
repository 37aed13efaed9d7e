package photo

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

// SavePhotoInput holds the parameters for saving a provider photo.
type SavePhotoInput struct {
	ImageURL       string
	Description    *string
	AltDescription *string
	Tags           []string
	UserID         *uuid.UUID
}

// Validate rejects an untrusted image URL first; tag errors are only
// reported for a valid URL. A missing tag list is rejected; an empty one is not.
func (i SavePhotoInput) Validate(trustedPrefix string) error {
	if !domain.ValidateImageURL(i.ImageURL, trustedPrefix) {
		return domain.NewValidationError("imageUrl", domain.MsgInvalidImageURL)
	}
	if i.Tags == nil {
		return domain.NewValidationErrors([]domain.FieldError{{Field: "tags", Message: domain.MsgEmptyTag}})
	}
	if errs := domain.ValidateImageTags(i.Tags); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddTagsInput holds the parameters for tagging an existing photo.
type AddTagsInput struct {
	PhotoID uuid.UUID
	Tags    []string
}

// Validate checks the shape of the submitted tags. The per-photo cap depends
// on stored state and is checked by AddTags.
func (i AddTagsInput) Validate() error {
	if errs := domain.ValidateImageTags(i.Tags); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SearchByTagInput holds the parameters for a tag search.
type SearchByTagInput struct {
	Tag    string
	Sort   string // "", "ASC" or "DESC"
	UserID *uuid.UUID
}

// Validate checks the sort direction before the tag.
func (i SearchByTagInput) Validate() error {
	if i.Sort != "" && !domain.ValidateSortQuery(i.Sort) {
		return domain.NewValidationError("sort", domain.MsgInvalidSort)
	}
	if !domain.ValidateSingleTag(i.Tag) {
		return domain.NewValidationError("tags", domain.MsgInvalidTagQuery)
	}
	return nil
}

// Order returns the requested sort direction, ascending when none was given.
func (i SearchByTagInput) Order() domain.SortOrder {
	if i.Sort == "" {
		return domain.SortAsc
	}
	return domain.SortOrder(i.Sort)
}
