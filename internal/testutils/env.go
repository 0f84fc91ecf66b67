package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// IsIntegrationTestEnvironment returns true if the environment is configured
// for running integration tests with a database connection.
// Integration tests should check this and skip if not in an integration test environment.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// GetTestDatabaseURL returns the database URL for integration tests.
// It fails the test if DATABASE_URL is not set.
// This version is designed for use within individual test functions.
func GetTestDatabaseURL(t *testing.T) string {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL environment variable is required for this test")
	}
	return dbURL
}

// MustGetTestDatabaseURL returns the database URL for integration tests.
// This version is designed for use in TestMain functions where a testing.T is not available.
// It panics if DATABASE_URL is not set.
func MustGetTestDatabaseURL() string {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		panic("DATABASE_URL environment variable is required for integration tests")
	}
	return dbURL
}

// SetupEnv sets up environment variables for testing and returns a cleanup
// function that restores the original values. Deferred by callers.
func SetupEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()

	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				if err := os.Unsetenv(name); err != nil {
					t.Logf("Warning: Failed to unset env var %s: %v", name, err)
				}
			} else {
				if err := os.Setenv(name, value); err != nil {
					t.Logf("Warning: Failed to restore env var %s: %v", name, err)
				}
			}
		}
	}
}
