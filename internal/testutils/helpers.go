package testutils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/platformlab/user-api/internal/domain"
	"github.com/platformlab/user-api/internal/platform/postgres"
	"github.com/platformlab/user-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestUser creates a new user with a distinctive full name for testing.
// It does not save the user to the database.
func CreateTestUser(t *testing.T) *domain.User {
	t.Helper()
	fullName := fmt.Sprintf("Test User %s", uuid.New().String()[:8])
	return domain.NewUser(uuid.Nil, fullName)
}

// MustInsertUser inserts a user into the database for testing.
// It requires a transaction obtained from WithTx to ensure test isolation.
// The function will fail the test if the insert operation fails.
func MustInsertUser(ctx context.Context, t *testing.T, db store.DBTX, fullName string) uuid.UUID {
	t.Helper()

	id := uuid.New()

	// Execute the SQL directly to avoid circular dependencies with the store implementation
	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, full_name)
		VALUES ($1, $2)
	`, id, fullName)
	require.NoError(t, err, "Failed to insert test user")

	return id
}

// GetUserByID retrieves a user from the database by ID.
// Returns nil if the user does not exist.
func GetUserByID(ctx context.Context, t *testing.T, db store.DBTX, id uuid.UUID) *domain.User {
	t.Helper()

	var user domain.User
	err := db.QueryRowContext(ctx, `
		SELECT id, full_name
		FROM users
		WHERE id = $1
	`, id).Scan(
		&user.ID,
		&user.FullName,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		require.NoError(t, err, "Failed to query user by ID")
	}

	return &user
}

// CountUsers counts the number of users in the database matching the given criteria.
func CountUsers(ctx context.Context, t *testing.T, db store.DBTX, whereClause string, args ...interface{}) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM users"
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	var count int
	err := db.QueryRowContext(ctx, query, args...).Scan(&count)
	require.NoError(t, err, "Failed to count users")

	return count
}

// CreateTestUserStore creates a new PostgresUserStore for testing.
// It uses the given transaction to ensure test isolation.
func CreateTestUserStore(tx store.DBTX) store.UserStore {
	return postgres.NewPostgresUserStore(tx, nil)
}

// AssertCloseNoError ensures that the Close() method on the provided closer
// executes without error. It uses assert.NoError to allow subsequent defers
// to run even if this one fails (as opposed to using require.NoError which
// would abort the test immediately).
func AssertCloseNoError(t *testing.T, closer io.Closer) {
	t.Helper()
	if closer == nil {
		return
	}
	err := closer.Close()
	assert.NoError(t, err, "Deferred Close() failed for %T", closer)
}

// AssertRollbackNoError ensures that the Rollback() method on the provided tx
// executes without error, unless the error is sql.ErrTxDone which indicates
// the transaction was already committed or rolled back.
func AssertRollbackNoError(t *testing.T, tx *sql.Tx) {
	t.Helper()
	if tx == nil {
		return
	}
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		assert.NoError(t, err, "Failed to rollback transaction")
	}
}
