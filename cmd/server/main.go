package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/board"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/config"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/database"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/handlers"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/logging"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/middleware"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/routes"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/seed"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/services"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/storage"
)

func main() {
	// Structured logging (JSON to stdout)
	stdout := logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	kv, db, err := openStorage(cfg)
	if err != nil {
		slog.Error("storage setup failed", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}

	// ERROR+ records also go to system_logs when storage is SQL
	var dbLogHandler *logging.DBHandler
	cleanupDone := make(chan struct{})
	if db != nil {
		dbLogHandler = logging.NewDBHandler(db, 5*time.Second)
		slog.SetDefault(slog.New(logging.NewMultiHandler(stdout, dbLogHandler)))
		logging.StartCleanup(db, cfg.LogRetention, cleanupDone)
	}

	ctx := context.Background()
	store, err := board.New(ctx, kv, board.WithTimeout(cfg.StorageTimeout))
	if err != nil {
		slog.Error("job board load failed", "error", err)
		os.Exit(1)
	}

	if cfg.SeedSampleJobs {
		jobs, err := seed.Load(cfg.SeedFile, time.Now())
		if err != nil {
			slog.Error("sample jobs could not be read", "path", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		n, err := store.SeedJobs(ctx, jobs)
		if err != nil {
			slog.Error("sample jobs could not be stored", "error", err)
			os.Exit(1)
		}
		if n > 0 {
			slog.Info("sample jobs seeded", "count", n)
		}
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := routes.NewApp()

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, routes.Handlers{
		Auth:        handlers.NewAuthHandler(store, services.NewTokenService(cfg)),
		Jobs:        handlers.NewJobHandler(store),
		Preferences: handlers.NewPreferenceHandler(store),
		Health:      handlers.NewHealthHandler(kv, cfg.StorageDriver),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "storage", cfg.StorageDriver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := kv.Close(); err != nil {
		slog.Error("storage close error", "error", err)
	}

	slog.Info("server stopped")
}

// openStorage returns the key-value backend for cfg, plus the GORM handle
// when the backend is SQL.
func openStorage(cfg *config.Config) (storage.KV, *gorm.DB, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		slog.Warn("using in-memory storage, state is lost on restart")
		return storage.NewMemory(), nil, nil

	case config.DriverRedis:
		kv := storage.NewRedis(storage.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   "labourhub:",
		})
		ctx, cancel := context.WithTimeout(context.Background(), cfg.StorageTimeout)
		defer cancel()
		if err := kv.Ping(ctx); err != nil {
			kv.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return kv, nil, nil

	case config.DriverSQLite, config.DriverPostgres:
		if cfg.StorageDriver == config.DriverPostgres && cfg.DBPassword == "" {
			return nil, nil, fmt.Errorf("DB_PASSWORD environment variable is required")
		}
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, nil, err
		}
		return storage.NewSQL(db), db, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
