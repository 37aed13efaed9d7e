package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/photo-curation-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/photo-curation-backend/internal/adapter/postgres/history"
	photorepo "github.com/heartmarshall/photo-curation-backend/internal/adapter/postgres/photo"
	tagrepo "github.com/heartmarshall/photo-curation-backend/internal/adapter/postgres/tag"
	userrepo "github.com/heartmarshall/photo-curation-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/photo-curation-backend/internal/adapter/provider/unsplash"
	"github.com/heartmarshall/photo-curation-backend/internal/config"
	"github.com/heartmarshall/photo-curation-backend/internal/service/history"
	"github.com/heartmarshall/photo-curation-backend/internal/service/photo"
	"github.com/heartmarshall/photo-curation-backend/internal/service/user"
	"github.com/heartmarshall/photo-curation-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled. Shutdown waits for in-flight requests up to the
// configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	photos := photorepo.New(pool)
	tags := tagrepo.New(pool)
	users := userrepo.New(pool)
	searches := historyrepo.New(pool)

	provider := unsplash.NewProvider(cfg.Unsplash, logger)
	if cfg.Unsplash.AccessKey == "" {
		logger.Warn("unsplash access key is empty, provider search is disabled")
	}

	photoSvc := photo.NewService(logger, photos, tags, searches, provider, txm, cfg.Photos.TrustedImagePrefix)
	userSvc := user.NewService(logger, users)
	historySvc := history.NewService(logger, users, searches)

	router := newRouter(handlers{
		photo:   rest.NewPhotoHandler(photoSvc, logger),
		user:    rest.NewUserHandler(userSvc, logger),
		history: rest.NewHistoryHandler(historySvc, logger),
		health:  rest.NewHealthHandler(pool, Version, cfg.Unsplash.AccessKey != ""),
	}, cfg, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
