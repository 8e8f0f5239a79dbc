package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mem "med-catalog/internal/adapters/storage/memory"
	pg "med-catalog/internal/adapters/storage/postgres"
	rdb "med-catalog/internal/adapters/storage/redis"
	"med-catalog/internal/config"
	"med-catalog/internal/domain/medications"
	"med-catalog/internal/platform/logger"
	"med-catalog/internal/router"
)

// @title med-catalog API
// @version 1.0
// @description CRUD de fichas de medicamentos sobre Redis.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})

	repo, closeRepo, err := openRepository(cfg, lg)
	if err != nil {
		lg.Error("storage error", map[string]any{"driver": cfg.StorageDriver, "error": err})
		os.Exit(1)
	}
	defer closeRepo()

	srv := &http.Server{
		Addr: cfg.ListenAddr(),
		Handler: router.NewRouter(router.Options{
			Repo:          repo,
			AllowedOrigin: cfg.FrontendURL,
			Logger:        lg,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.StorageDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server error", map[string]any{"error": err})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	lg.Info("shutting down", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown error", map[string]any{"error": err})
	}
}

// openRepository elige el store según STORAGE_DRIVER. Con redis no falla si
// el servidor no responde: se loguea y cada request fallará con 500 hasta que vuelva.
func openRepository(cfg *config.Config, lg logger.Logger) (medications.Repository, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(context.Background(), db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg.NewMedicationsRepo(db), func() { _ = db.Close() }, nil

	case config.DriverMemory:
		lg.Warn("using in-memory storage; data is lost on restart", nil)
		return mem.NewMedicationsRepo(), func() {}, nil

	default:
		client := rdb.NewClient(rdb.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, lg)
		rdb.CheckConnection(context.Background(), client, lg)
		return rdb.NewMedicationsRepo(client), func() { _ = client.Close() }, nil
	}
}
