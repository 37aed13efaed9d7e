// Package history implements the search history repository using PostgreSQL.
// Entries are append-only.
package history

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

const table = "search_history"

var columns = []string{"id", "user_id", "query", "searched_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Query     string    `db:"query"`
	Timestamp time.Time `db:"searched_at"`
}

func (r row) toDomain() domain.SearchHistoryEntry {
	return domain.SearchHistoryEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Query:     r.Query,
		Timestamp: r.Timestamp,
	}
}

// Repo provides search history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new search history repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create appends a search entry for the user. The timestamp is assigned by
// the database. An unknown user yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, query string) (*domain.SearchHistoryEntry, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "query").
		Values(userID, query).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert search history: %w", err)
	}

	var created row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "search history for user", userID)
	}

	e := created.toDomain()
	return &e, nil
}

// ListByUser returns the user's entries oldest first. Entries sharing a
// timestamp keep their insertion order through the identity column.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryEntry, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("searched_at", "seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list search history: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list search history for user %s: %w", userID, err)
	}

	entries := make([]domain.SearchHistoryEntry, len(rows))
	for i, rw := range rows {
		entries[i] = rw.toDomain()
	}
	return entries, nil
}
