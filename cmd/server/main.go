// Package main implements the entry point for the user API server,
// which exposes user records over a JSON HTTP interface backed by
// PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command (up, down, status) and exit instead of serving",
	)
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run wires the application together so main stays a thin shell around an
// error-returning body. When migrateCmd is non-empty the process runs the
// requested migration command and exits without starting the HTTP server.
func run(migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	appLogger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	appLogger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	if migrateCmd != "" {
		return handleMigrations(cfg, appLogger, migrateCmd)
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return err
	}

	// Bring the schema up to date before serving traffic.
	if err := runMigrations(db, appLogger, "up"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("error closing database connection",
				slog.String("error", closeErr.Error()))
		}
		return err
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("error closing database connection",
				slog.String("error", closeErr.Error()))
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(context.Background())
}
