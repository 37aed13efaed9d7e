// Package unsplash searches photos through the Unsplash API.
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/photo-curation-backend/internal/config"
	"github.com/heartmarshall/photo-curation-backend/internal/domain"
)

// MsgNoImages is returned when the provider has no hits for a query.
const MsgNoImages = "No images found for the given query"

const retryDelay = 500 * time.Millisecond

// Provider performs photo searches against the Unsplash API.
type Provider struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the unsplash config section.
func NewProvider(cfg config.UnsplashConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		accessKey:  cfg.AccessKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "unsplash"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, accessKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "unsplash"),
	}
}

// SearchPhotos returns the first page of photos matching query.
// Returns domain.ErrProviderNotConfigured without calling out when no access
// key is set, and a NotFoundError when the provider reports no hits.
func (p *Provider) SearchPhotos(ctx context.Context, query string) ([]domain.ProviderPhoto, error) {
	if p.accessKey == "" {
		return nil, domain.ErrProviderNotConfigured
	}

	reqURL := p.baseURL + "/search/photos?" + url.Values{"query": {query}}.Encode()

	p.log.DebugContext(ctx, "unsplash request", slog.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unsplash: create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := p.doWithRetry(ctx, req, query)
	if err != nil {
		p.log.ErrorContext(ctx, "unsplash request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("unsplash: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unsplash: read body: %w", err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("unsplash: decode json: %w", err)
	}

	p.log.DebugContext(ctx, "unsplash response",
		slog.String("query", query),
		slog.Int("total", sr.Total),
		slog.Int("results", len(sr.Results)),
	)

	if sr.Total == 0 {
		return nil, domain.NewNotFoundError(MsgNoImages)
	}

	photos := make([]domain.ProviderPhoto, len(sr.Results))
	for i, r := range sr.Results {
		photos[i] = domain.ProviderPhoto{
			ImageURL:       r.URLs.Raw,
			Description:    r.Description,
			AltDescription: r.AltDescription,
		}
	}
	return photos, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, query string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "unsplash retry", slog.String("query", query), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return p.httpClient.Do(req)
}
