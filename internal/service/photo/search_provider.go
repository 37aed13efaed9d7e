package photo

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

// SearchProvider forwards a free-text query to the external image provider.
func (s *Service) SearchProvider(ctx context.Context, query string) ([]domain.ProviderPhoto, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidationError("query", domain.MsgQueryRequired)
	}

	photos, err := s.provider.SearchPhotos(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("photo.SearchProvider: %w", err)
	}
	return photos, nil
}
