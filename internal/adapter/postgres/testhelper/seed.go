package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		Username: "user-" + suffix,
		Email:    "user-" + suffix + "@example.com",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, email) VALUES ($1, $2) RETURNING id, created_at`,
		u.Username, u.Email,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedPhoto inserts a photo saved at savedAt with the given tags at positions 0..n-1.
func SeedPhoto(t *testing.T, pool *pgxpool.Pool, savedAt time.Time, tags ...string) domain.Photo {
	t.Helper()
	ctx := context.Background()

	p := domain.Photo{
		ImageURL:  "https://images.unsplash.com/photo-" + uniqueSuffix(),
		DateSaved: savedAt.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO photos (image_url, date_saved) VALUES ($1, $2) RETURNING id`,
		p.ImageURL, p.DateSaved,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPhoto insert photo: %v", err)
	}

	for i, name := range tags {
		tag := domain.Tag{PhotoID: p.ID, Name: name, Position: i}
		err := pool.QueryRow(ctx,
			`INSERT INTO tags (photo_id, name, position) VALUES ($1, $2, $3) RETURNING id, created_at`,
			p.ID, name, i,
		).Scan(&tag.ID, &tag.CreatedAt)
		if err != nil {
			t.Fatalf("testhelper: SeedPhoto insert tag %q: %v", name, err)
		}
		p.Tags = append(p.Tags, tag)
	}

	return p
}

// UniqueTag returns a tag name no other test uses, at most 20 characters long.
func UniqueTag(prefix string) string {
	name := prefix + "-" + uniqueSuffix()
	if len(name) > domain.MaxTagLength {
		name = name[len(name)-domain.MaxTagLength:]
	}
	return name
}
