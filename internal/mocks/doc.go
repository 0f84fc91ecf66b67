// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the application,
// facilitating consistent and DRY testing across the codebase. Instead of defining
// inline mocks in individual test files, these standardized mock implementations
// can be reused.
//
// Two styles are provided for the user store: MockUserStore uses function
// fields with a map-backed default implementation, while TestifyMockUserStore
// builds on testify/mock for expectation-based tests that assert exact call
// counts.
//
// Usage:
//
//	import "github.com/platformlab/user-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    userStore := &mocks.MockUserStore{
//	        GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
//	            return nil, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
