package mocks

import (
	"context"
	"database/sql"

	"github.com/platformlab/user-api/internal/store"
)

// MockDBTX is a mock implementation of store.DBTX for testing code that
// talks to the database without a live connection. Methods without a
// configured function field return zero values.
type MockDBTX struct {
	ExecContextFn     func(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContextFn  func(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContextFn    func(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContextFn func(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Ensure MockDBTX implements store.DBTX interface
var _ store.DBTX = (*MockDBTX)(nil)

// ExecContext implements store.DBTX
func (m *MockDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if m.ExecContextFn != nil {
		return m.ExecContextFn(ctx, query, args...)
	}
	return nil, nil
}

// PrepareContext implements store.DBTX
func (m *MockDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	if m.PrepareContextFn != nil {
		return m.PrepareContextFn(ctx, query)
	}
	return nil, nil
}

// QueryContext implements store.DBTX
func (m *MockDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	if m.QueryContextFn != nil {
		return m.QueryContextFn(ctx, query, args...)
	}
	return nil, nil
}

// QueryRowContext implements store.DBTX
func (m *MockDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	if m.QueryRowContextFn != nil {
		return m.QueryRowContextFn(ctx, query, args...)
	}
	return nil
}

// MockResult is a configurable sql.Result for exercising code that inspects
// rows-affected counts.
type MockResult struct {
	LastInsertIDValue int64
	RowsAffectedValue int64
	LastInsertIDErr   error
	RowsAffectedErr   error
}

// Ensure MockResult implements sql.Result interface
var _ sql.Result = (*MockResult)(nil)

// LastInsertId implements sql.Result
func (r *MockResult) LastInsertId() (int64, error) {
	return r.LastInsertIDValue, r.LastInsertIDErr
}

// RowsAffected implements sql.Result
func (r *MockResult) RowsAffected() (int64, error) {
	return r.RowsAffectedValue, r.RowsAffectedErr
}
