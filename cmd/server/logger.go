package main

import (
	"fmt"
	"log/slog"

	"github.com/platformlab/user-api/internal/config"
	"github.com/platformlab/user-api/internal/platform/logger"
)

// setupAppLogger configures the application logger based on config settings
// and installs it as the process-wide default.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return l, nil
}
