package photo

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

type photoRepo interface {
	Create(ctx context.Context, p *domain.Photo) (*domain.Photo, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID, order domain.SortOrder) ([]domain.Photo, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) error
}

type tagRepo interface {
	CountByPhotoID(ctx context.Context, photoID uuid.UUID) (int, error)
	CreateBatch(ctx context.Context, photoID uuid.UUID, firstPosition int, names []string) ([]domain.Tag, error)
	PhotoIDsByName(ctx context.Context, name string) ([]uuid.UUID, error)
	ListByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]domain.Tag, error)
}

type historyRepo interface {
	Create(ctx context.Context, userID uuid.UUID, query string) (*domain.SearchHistoryEntry, error)
}

type imageProvider interface {
	SearchPhotos(ctx context.Context, query string) ([]domain.ProviderPhoto, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements photo saving, tagging and tag search.
type Service struct {
	log           *slog.Logger
	photos        photoRepo
	tags          tagRepo
	history       historyRepo
	provider      imageProvider
	tx            txManager
	trustedPrefix string
	now           func() time.Time
}

// NewService creates a new photo service. trustedPrefix is the image URL
// prefix every saved photo must start with.
func NewService(
	logger *slog.Logger,
	photos photoRepo,
	tags tagRepo,
	history historyRepo,
	provider imageProvider,
	tx txManager,
	trustedPrefix string,
) *Service {
	return &Service{
		log:           logger.With("service", "photo"),
		photos:        photos,
		tags:          tags,
		history:       history,
		provider:      provider,
		tx:            tx,
		trustedPrefix: trustedPrefix,
		now:           func() time.Time { return time.Now().UTC() },
	}
}
