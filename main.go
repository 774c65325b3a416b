package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/example/task-hub/config"
	"github.com/example/task-hub/modules/api"
	"github.com/example/task-hub/modules/notification"
	"github.com/example/task-hub/modules/task"
	"github.com/example/task-hub/storage"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

func main() {
	log.Println("=== Task Hub ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := storage.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	level := mono.LogLevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = mono.LogLevelDebug
	case "warn", "warning":
		level = mono.LogLevelWarn
	case "error":
		level = mono.LogLevelError
	}

	format := mono.LogFormatText
	if cfg.IsProduction() {
		format = mono.LogFormatJSON
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(level),
		mono.WithLogFormat(format),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	logger := app.Logger()

	// Order: event consumers first, then the core domain, then driving adapters
	app.Register(notification.NewModule(logger)) // Event consumer (subscribes to TaskCompleted)
	app.Register(task.NewModule(db, logger))     // Core domain (owns services, emits events)
	app.Register(api.NewModule(cfg, logger))     // Driving adapter (depends on task)

	if err := app.Start(context.Background()); err != nil {
		_ = storage.Close(db)
		log.Fatalf("Failed to start application: %v", err)
	}

	logger.Info("Task Hub started",
		"env", cfg.Env,
		"http_addr", cfg.HTTPAddr,
		"database", storage.Driver(db))

	// The database is closed only after every module has stopped.
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				if err := app.Stop(ctx); err != nil {
					_ = storage.Close(db)
					return err
				}
				return storage.Close(db)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}
