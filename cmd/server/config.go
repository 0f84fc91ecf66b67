package main

import (
	"fmt"

	"github.com/platformlab/user-api/internal/config"
)

// loadAppConfig loads the application configuration from environment
// variables or an optional config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}
