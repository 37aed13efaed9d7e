// Package tag implements the Tag repository using PostgreSQL.
// Tags are stored one row per (photo, position); the schema keeps positions
// in 0..4 and unique per photo.
package tag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/photo-curation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

const table = "tags"

var columns = []string{"id", "photo_id", "name", "position", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	PhotoID   uuid.UUID `db:"photo_id"`
	Name      string    `db:"name"`
	Position  int16     `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Tag {
	return domain.Tag{
		ID:        r.ID,
		PhotoID:   r.PhotoID,
		Name:      r.Name,
		Position:  int(r.Position),
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new tag repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// CountByPhotoID returns the number of tags currently attached to the photo.
func (r *Repo) CountByPhotoID(ctx context.Context, photoID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder.
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"photo_id": photoID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count tags: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tags for photo %s: %w", photoID, err)
	}
	return count, nil
}

// CreateBatch inserts one tag per name for the photo in a single statement.
// Names are stored verbatim at positions firstPosition, firstPosition+1, ...
// A position outside 0..4 or already taken surfaces as domain.ErrValidation
// or domain.ErrAlreadyExists.
func (r *Repo) CreateBatch(ctx context.Context, photoID uuid.UUID, firstPosition int, names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return []domain.Tag{}, nil
	}

	insert := postgres.Builder.
		Insert(table).
		Columns("photo_id", "name", "position")
	for i, name := range names {
		insert = insert.Values(photoID, name, firstPosition+i)
	}

	query, args, err := insert.
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert tags: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "tags for photo", photoID)
	}

	return toDomainTags(rows), nil
}

// PhotoIDsByName returns the distinct ids of photos carrying a tag with exactly
// this name. Matching is case-sensitive. Returns an empty slice when none match.
func (r *Repo) PhotoIDsByName(ctx context.Context, name string) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder.
		Select("DISTINCT photo_id").
		From(table).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build photo ids by tag: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("photo ids by tag %q: %w", name, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("photo ids by tag %q: %w", name, err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// ListByPhotoIDs returns every tag of the given photos, grouped by photo and
// ordered by position. The caller groups by Tag.PhotoID.
func (r *Repo) ListByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]domain.Tag, error) {
	if len(photoIDs) == 0 {
		return []domain.Tag{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"photo_id": photoIDs}).
		OrderBy("photo_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tags: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tags by photo ids: %w", err)
	}

	return toDomainTags(rows), nil
}

func toDomainTags(rows []row) []domain.Tag {
	tags := make([]domain.Tag, len(rows))
	for i, rw := range rows {
		tags[i] = rw.toDomain()
	}
	return tags
}
