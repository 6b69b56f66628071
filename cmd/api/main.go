package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/adapters/blob/fs"
	minioblob "github.com/Vittal-Dev1/Tentacao/internal/adapters/blob/minio"
	"github.com/Vittal-Dev1/Tentacao/internal/adapters/catalog/blobjson"
	"github.com/Vittal-Dev1/Tentacao/internal/adapters/catalog/jsonfile"
	"github.com/Vittal-Dev1/Tentacao/internal/adapters/catalog/postgres"
	"github.com/Vittal-Dev1/Tentacao/internal/adapters/eventbroker"
	natsbroker "github.com/Vittal-Dev1/Tentacao/internal/adapters/eventbroker/nats"
	"github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi"
	authhandler "github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi/v1/auth"
	cronhandler "github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi/v1/cron"
	mediahandler "github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi/v1/media"
	"github.com/Vittal-Dev1/Tentacao/internal/config"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"
	"github.com/Vittal-Dev1/Tentacao/internal/core/service/cleanup"
	"github.com/Vittal-Dev1/Tentacao/internal/core/service/media"
	"github.com/Vittal-Dev1/Tentacao/internal/core/service/session"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	miniogo "github.com/minio/minio-go/v7"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// minio backs the blob store and/or the blobjson catalog
	var minioClient *miniogo.Client
	if cfg.Blob.Driver == config.BlobDriverMinio || cfg.Catalog.Driver == config.CatalogDriverBlobJSON {
		minioClient, err = minioblob.NewClient(ctx, cfg.Minio)
		if err != nil {
			logger.Error("failed to init minio", "error", err)
			os.Exit(1)
		}
	}

	blobs, uploadsDir, err := initBlobStore(cfg, minioClient, logger)
	if err != nil {
		logger.Error("failed to init blob store", "error", err)
		os.Exit(1)
	}

	catalog, db, err := initCatalog(cfg, minioClient)
	if err != nil {
		logger.Error("failed to init catalog", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer func(db *sql.DB) {
			if err := db.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}(db)
	}
	logger.Info("catalog ready", "driver", cfg.Catalog.Driver)

	var events port.EventPublisher = eventbroker.NewNoopPublisher()
	if cfg.NATS.Enabled {
		publisher, err := natsbroker.NewPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to init nats", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		events = publisher
	}

	sessions := session.NewSessionService(cfg.Auth)
	mediaService := media.NewMediaService(catalog, blobs, events, logger)
	cleanupService := cleanup.NewCleanupService(catalog, blobs, events, logger)

	//http
	authHandler := authhandler.NewAuthHandlerV1(sessions, cfg.Auth, cfg.Env.Env == "prod", logger)
	mediaHandler := mediahandler.NewMediaHandlerV1(mediaService, logger)
	cronHandler := cronhandler.NewCronHandlerV1(cleanupService, cfg.Auth.CronSecret, logger)

	router := chi.NewRouter(logger, sessions, cfg.Auth.CookieName, authHandler, mediaHandler, cronHandler, cfg.Env.Env, cfg.Blob.PublicBaseURL, uploadsDir)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	if cfg.Cleanup.Every > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			initCleanupTask(ctx, cleanupService, cfg.Cleanup.Every, logger)
		}()
	}

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

// initBlobStore returns the configured blob store and, for the fs driver,
// the directory the router must serve statically
func initBlobStore(cfg *config.Config, minioClient *miniogo.Client, logger *slog.Logger) (port.BlobStore, string, error) {
	switch cfg.Blob.Driver {
	case config.BlobDriverFS:
		store, err := fs.NewStore(cfg.Blob.Dir, cfg.Blob.PublicBaseURL, logger)
		if err != nil {
			return nil, "", err
		}
		return store, cfg.Blob.Dir, nil
	case config.BlobDriverMinio:
		return minioblob.NewAdapter(minioClient, cfg.Minio, logger), "", nil
	}
	return nil, "", fmt.Errorf("unknown blob driver: %q", cfg.Blob.Driver)
}

// initCatalog returns the configured catalog; the *sql.DB is non-nil only
// for the postgres driver so the caller can close it
func initCatalog(cfg *config.Config, minioClient *miniogo.Client) (port.MediaCatalog, *sql.DB, error) {
	switch cfg.Catalog.Driver {
	case config.CatalogDriverJSONFile:
		catalog, err := jsonfile.New(cfg.Catalog.Path)
		return catalog, nil, err
	case config.CatalogDriverPostgres:
		db, err := initDB(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewSQLMediaCatalog(db), db, nil
	case config.CatalogDriverBlobJSON:
		return blobjson.New(minioClient, cfg.Minio.BucketName, cfg.Catalog.ObjectKey), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown catalog driver: %q", cfg.Catalog.Driver)
}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			deleted, err := service.PurgeCombos(ctx)
			if err != nil {
				logger.Error("failed to purge combos", "error", err)
			} else {
				logger.Info("cleanup task completed", "deleted", deleted)
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
