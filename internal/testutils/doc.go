// Package testutils provides standardized helper functions for testing
// across the codebase. These helpers ensure consistent test patterns,
// particularly for database operations (using transaction-based isolation
// with WithTx), test data creation, and environment setup.
//
// Helper functions follow these naming conventions:
// - Create*: Create entities in memory
// - MustInsert*: Insert entities into the database
// - Get*: Retrieve entities from the database
// - Count*: Count entities matching criteria
// - SetupEnv: Configure environment variables for testing
// - Assert*: Verify conditions and handle errors in tests
package testutils
