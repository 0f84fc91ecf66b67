package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/platformlab/user-api/internal/domain"
	"github.com/platformlab/user-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]*domain.User, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFn  func(ctx context.Context, user *domain.User) (bool, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) (bool, error)

	// Data for default implementation
	Users map[uuid.UUID]*domain.User

	// Errors returned by the default implementation when set
	ListError    error
	GetByIDError error
	CreateError  error
	DeleteError  error
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[uuid.UUID]*domain.User),
	}
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		users = append(users, user)
	}
	// Deterministic order, matching the real store
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID.String() < users[j].ID.String()
	})
	return users, nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}

	user, exists := m.Users[id]
	if !exists {
		return nil, nil
	}
	return user, nil
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) (bool, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return false, m.CreateError
	}

	if _, exists := m.Users[user.ID]; exists {
		return false, nil
	}

	m.Users[user.ID] = user
	return true, nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if m.DeleteError != nil {
		return false, m.DeleteError
	}

	if _, exists := m.Users[id]; !exists {
		return false, nil
	}

	delete(m.Users, id)
	return true, nil
}
