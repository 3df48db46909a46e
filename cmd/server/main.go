// Command server runs the employee registration service: the submission
// endpoint, the draft endpoints, health, and metrics.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"onboard/internal/audit"
	"onboard/internal/draft"
	"onboard/internal/employee/blob"
	employeehandler "onboard/internal/employee/handler"
	"onboard/internal/employee/service"
	"onboard/internal/employee/store"
	httpapi "onboard/internal/http"
	"onboard/internal/platform/config"
	"onboard/internal/platform/httpserver"
	"onboard/internal/platform/logger"
	"onboard/internal/platform/metrics"
	"onboard/internal/platform/postgres"
	"onboard/internal/platform/redis"
)

const documentsBucket = "employee-documents"

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}

	checks := map[string]httpapi.HealthChecker{
		"postgres": pingChecker{db},
	}

	var draftStore draft.Store = draft.NewInMemoryStore()
	if redisClient != nil {
		defer redisClient.Close()
		draftStore = draft.NewRedisStore(redisClient)
		checks["redis"] = redisClient
		log.Info("draft store backed by redis")
	} else {
		log.Warn("REDIS_URL not set, drafts will not survive restarts")
	}

	var blobStore blob.Store = blob.NewInMemoryStore()
	if cfg.S3.Bucket != "" {
		s3Store, err := blob.NewS3(ctx, cfg.S3)
		if err != nil {
			return err
		}
		blobStore = s3Store
		log.Info("document store backed by s3", "bucket", cfg.S3.Bucket)
	} else {
		log.Warn("S3_BUCKET not set, documents will not survive restarts")
	}

	bucket := cfg.S3.Bucket
	if bucket == "" {
		bucket = documentsBucket
	}

	m := metrics.New()
	recorder := audit.NewRecorder(audit.NewPostgres(db), log, 256)
	defer recorder.Close()

	employeeStore := store.NewPostgres(db)
	svc := service.New(employeeStore, blobStore, bucket, log, m, recorder)

	router := httpapi.NewRouter(httpapi.Deps{
		Employees: employeehandler.New(svc, draftStore, log),
		Drafts:    draft.NewHandler(draftStore, log, m),
		Logger:    log,
		Checks:    checks,
	})

	srv := httpserver.New(cfg.Server.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// pingChecker adapts *sql.DB to the health check interface.
type pingChecker struct {
	db interface {
		PingContext(ctx context.Context) error
	}
}

func (p pingChecker) Health(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
