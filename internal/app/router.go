package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/photo-curation-backend/internal/config"
	"github.com/heartmarshall/photo-curation-backend/internal/transport/middleware"
	"github.com/heartmarshall/photo-curation-backend/internal/transport/rest"
)

// handlers groups everything the router mounts.
type handlers struct {
	photo   *rest.PhotoHandler
	user    *rest.UserHandler
	history *rest.HistoryHandler
	health  *rest.HealthHandler
}

func newRouter(h handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/photos/search", h.photo.SearchProvider)
	mux.HandleFunc("POST /api/photos", h.photo.SavePhoto)
	mux.HandleFunc("POST /api/photos/{photoId}/tags", h.photo.AddTags)
	mux.HandleFunc("GET /api/photos/tag/search", h.photo.SearchByTag)
	mux.HandleFunc("GET /api/search-history", h.history.GetHistory)
	mux.HandleFunc("POST /api/users", h.user.CreateUser)

	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)(mux)
}
