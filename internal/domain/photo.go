package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxTagsPerPhoto is the upper bound on the number of tags attached to a single photo.
	MaxTagsPerPhoto = 5
	// MaxTagLength is the maximum tag name length in characters.
	MaxTagLength = 20
)

// Photo is an image saved from the external provider.
type Photo struct {
	ID             uuid.UUID
	ImageURL       string
	Description    *string
	AltDescription *string
	DateSaved      time.Time
	UserID         *uuid.UUID

	Tags []Tag
}

// TagNames returns the names of the attached tags, in position order.
func (p *Photo) TagNames() []string {
	names := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		names[i] = t.Name
	}
	return names
}

// Tag is a short label attached to a photo. Position is the tag's 0-based slot
// within its photo and is always below MaxTagsPerPhoto.
type Tag struct {
	ID        uuid.UUID
	PhotoID   uuid.UUID
	Name      string
	Position  int
	CreatedAt time.Time
}

// SortOrder is the direction in which photos are ordered by DateSaved.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	switch o {
	case SortAsc, SortDesc:
		return true
	}
	return false
}

// ProviderPhoto is a search hit returned by the external image provider.
type ProviderPhoto struct {
	ImageURL       string
	Description    *string
	AltDescription *string
}
