package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/videoparty/clips-ms-go/internal/cache"
	"github.com/videoparty/clips-ms-go/internal/config"
	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/handler/api"
	"github.com/videoparty/clips-ms-go/internal/logger"
	"github.com/videoparty/clips-ms-go/internal/port"
	"github.com/videoparty/clips-ms-go/internal/renderer"
	"github.com/videoparty/clips-ms-go/internal/repository/mariadb"
	"github.com/videoparty/clips-ms-go/internal/storage"
	"github.com/videoparty/clips-ms-go/internal/task"
	"github.com/videoparty/clips-ms-go/internal/thumbnail"
	clipSvc "github.com/videoparty/clips-ms-go/internal/usecase/clip"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx)

	strg := initStorage(ctx, cfg)
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.Bucket, err)
		os.Exit(1)
	}

	clipRepo := mariadb.NewClipRepository(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	thumbnailer, err := thumbnail.NewExtractor(strg, cfg.FFmpegPath, cfg.FFmpegTimeout)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize thumbnail extractor: %v", err)
		os.Exit(1)
	}

	uploaderSvc := clipSvc.NewUploader(clipRepo, strg, thumbnailer, dispatcher, ca, db.NewUUID, clipSvc.NewUploadFilename, cfg.PublicBaseURL)
	r.Post("/api/upload", api.UploadHandler(uploaderSvc, cfg.MaxUploadSize))

	rendererSvc := renderer.NewHTTPRenderer(ca)

	listClipsSvc := clipSvc.NewClipLister(clipRepo)
	r.Get("/api/clips", api.ListClipsHandler(rendererSvc, listClipsSvc))

	getClipSvc := clipSvc.NewClipGetter(clipRepo)
	r.With(api.WithClipID()).
		Get("/api/clips/{id}", api.GetClipHandler(rendererSvc, getClipSvc))

	deleteClipSvc := clipSvc.NewClipDeleter(clipRepo, ca, strg)
	r.With(api.WithClipID()).
		Delete("/api/clips/{id}", api.DeleteClipHandler(deleteClipSvc))

	r.Get("/api/video/{filename}", api.GetVideoHandler(strg))
	r.Head("/api/video/{filename}", api.GetVideoHandler(strg))
	r.Get("/api/thumbnail/{filename}", api.GetThumbnailHandler(strg))

	repairSvc := clipSvc.NewURLRepairer(clipRepo, ca, cfg.PublicBaseURL)
	r.Post("/api/fix-urls", api.FixURLsHandler(repairSvc))

	r.Get("/api/health", api.HealthHandler(database.DB, strg))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.Bucket,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
