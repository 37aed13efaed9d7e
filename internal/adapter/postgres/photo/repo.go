// Package photo implements the Photo repository using PostgreSQL.
package photo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/photo-curation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

const table = "photos"

var columns = []string{"id", "image_url", "description", "alt_description", "date_saved", "user_id"}

type row struct {
	ID             uuid.UUID  `db:"id"`
	ImageURL       string     `db:"image_url"`
	Description    *string    `db:"description"`
	AltDescription *string    `db:"alt_description"`
	DateSaved      time.Time  `db:"date_saved"`
	UserID         *uuid.UUID `db:"user_id"`
}

func (r row) toDomain() domain.Photo {
	return domain.Photo{
		ID:             r.ID,
		ImageURL:       r.ImageURL,
		Description:    r.Description,
		AltDescription: r.AltDescription,
		DateSaved:      r.DateSaved,
		UserID:         r.UserID,
	}
}

// Repo provides photo persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new photo repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a photo and returns the persisted row. Tags are not written.
func (r *Repo) Create(ctx context.Context, p *domain.Photo) (*domain.Photo, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("image_url", "description", "alt_description", "date_saved", "user_id").
		Values(p.ImageURL, p.Description, p.AltDescription, p.DateSaved, p.UserID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert photo: %w", err)
	}

	var created row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "photo", p.ImageURL)
	}

	result := created.toDomain()
	return &result, nil
}

// ListByIDs returns the photos whose id is in ids, ordered by date_saved in
// the given direction. Ties keep the storage order. An invalid order falls
// back to ascending.
func (r *Repo) ListByIDs(ctx context.Context, ids []uuid.UUID, order domain.SortOrder) ([]domain.Photo, error) {
	if len(ids) == 0 {
		return []domain.Photo{}, nil
	}
	if !order.IsValid() {
		order = domain.SortAsc
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("date_saved " + order.String()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list photos: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list photos by ids: %w", err)
	}

	photos := make([]domain.Photo, len(rows))
	for i, rw := range rows {
		photos[i] = rw.toDomain()
	}
	return photos, nil
}

// LockForUpdate takes a row lock on the photo for the rest of the current
// transaction, serializing concurrent tag writers. Must run inside RunInTx.
// Returns domain.ErrNotFound if the photo does not exist.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Select("id").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock photo: %w", err)
	}

	var locked uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&locked); err != nil {
		return postgres.MapError(err, "photo", id)
	}
	return nil
}
