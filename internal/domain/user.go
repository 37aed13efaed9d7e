package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an application user. Photos and search history reference it.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// SearchHistoryEntry records a single tag search issued by a user.
type SearchHistoryEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Query     string
	Timestamp time.Time
}
