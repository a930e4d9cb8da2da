// Command migrate applies the embedded database migrations and exits. It is
// meant for deploy pipelines that keep database.auto_migrate disabled on the
// server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/insurance-crm/internal/adapter/postgres"
	"github.com/heartmarshall/insurance-crm/internal/app"
	"github.com/heartmarshall/insurance-crm/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}

	logger.Info("migrations applied",
		slog.Int("count", applied),
		slog.String("version", app.BuildVersion()),
	)
}
