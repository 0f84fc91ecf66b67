package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/platformlab/user-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
//
// Absence and rejection are normal outcomes encoded in return values, never
// errors: a missing user is a nil pointer, a rejected create or a no-op
// delete is a false boolean. Any error a UserStore returns is a genuine
// store-level failure, and callers are expected to treat it as opaque.
type UserStore interface {
	// List returns every user in the store. An empty store yields an empty
	// (or nil) slice, never an error.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// A user that does not exist is reported as (nil, nil).
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Create saves a new user to the store. It reports true when a new
	// record was persisted and false when the store rejected it (for
	// example because the ID already exists) without that being a failure.
	Create(ctx context.Context, user *domain.User) (bool, error)

	// Delete removes a user from the store by their ID. It reports true
	// when a record existed and was removed, false when there was nothing
	// to delete.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
