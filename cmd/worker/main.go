package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/videoparty/clips-ms-go/internal/cache"
	"github.com/videoparty/clips-ms-go/internal/config"
	"github.com/videoparty/clips-ms-go/internal/db"
	workerHandler "github.com/videoparty/clips-ms-go/internal/handler/worker"
	"github.com/videoparty/clips-ms-go/internal/port"
	"github.com/videoparty/clips-ms-go/internal/repository/mariadb"
	"github.com/videoparty/clips-ms-go/internal/storage"
	"github.com/videoparty/clips-ms-go/internal/task"
	"github.com/videoparty/clips-ms-go/internal/thumbnail"
	clipSvc "github.com/videoparty/clips-ms-go/internal/usecase/clip"

	"github.com/videoparty/clips-ms-go/internal/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	strg := initStorage(cfg)
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.Bucket, err)
		os.Exit(1)
	}

	repo := mariadb.NewClipRepository(database.DB)
	ca := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	thumbnailer, err := thumbnail.NewExtractor(strg, cfg.FFmpegPath, cfg.FFmpegTimeout)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize thumbnail extractor: %v", err)
		os.Exit(1)
	}
	regenerateSvc := clipSvc.NewThumbnailRegenerator(repo, strg, thumbnailer, ca, cfg.PublicBaseURL)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeRegenerateThumbnail, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseRegenerateThumbnailPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.RegenerateThumbnailHandler(ctx, p, regenerateSvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.Bucket,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Worker gracefully stopped")
}
