package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/platformlab/user-api/internal/domain"
	"github.com/platformlab/user-api/internal/platform/logger"
	"github.com/platformlab/user-api/internal/store"
)

// UserService exposes the user management operations to delivery mechanisms.
//
// Every operation follows the same contract: an informational record
// announces the operation, the repository call alone is timed, and a second
// informational record reports completion with the measured duration in
// milliseconds. When the repository fails, exactly one error record is
// written carrying the repository's error, and the identical error value is
// returned to the caller without wrapping or substitution.
//
// Absence and rejection are not failures: a missing user is (nil, nil), a
// rejected create or a no-op delete is (false, nil), and both take the
// success logging path.
type UserService interface {
	// ListUsers returns all users known to the store.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// GetUser returns the user with the given ID, or (nil, nil) when no
	// such user exists.
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// CreateUser persists the given user. It reports true when a new record
	// was stored and false when the store rejected the write (for example a
	// duplicate ID) without that being a failure.
	CreateUser(ctx context.Context, user *domain.User) (bool, error)

	// DeleteUser removes the user with the given ID. It reports true when a
	// record was removed and false when there was nothing to delete.
	DeleteUser(ctx context.Context, id uuid.UUID) (bool, error)
}

// Verify interface compliance at compile time
var _ UserService = (*userServiceImpl)(nil)

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService implementation.
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	// Validate inputs
	if userStore == nil {
		panic("userStore cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// ListUsers implements UserService.ListUsers.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("retrieving all users")

	start := time.Now()
	users, err := s.userStore.List(ctx)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("something went wrong while retrieving all users",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("retrieved all users",
		slog.Int("count", len(users)),
		slog.Int64("duration_ms", elapsed.Milliseconds()))
	return users, nil
}

// GetUser implements UserService.GetUser.
func (s *userServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("retrieving user", slog.String("user_id", id.String()))

	start := time.Now()
	user, err := s.userStore.GetByID(ctx, id)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("something went wrong while retrieving user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	log.Info("retrieved user",
		slog.String("user_id", id.String()),
		slog.Bool("found", user != nil),
		slog.Int64("duration_ms", elapsed.Milliseconds()))
	return user, nil
}

// CreateUser implements UserService.CreateUser.
func (s *userServiceImpl) CreateUser(ctx context.Context, user *domain.User) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("creating user",
		slog.String("user_id", user.ID.String()),
		slog.String("full_name", user.FullName))

	start := time.Now()
	created, err := s.userStore.Create(ctx, user)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("something went wrong while creating a user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return false, err
	}

	log.Info("created user",
		slog.String("user_id", user.ID.String()),
		slog.Bool("created", created),
		slog.Int64("duration_ms", elapsed.Milliseconds()))
	return created, nil
}

// DeleteUser implements UserService.DeleteUser.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("deleting user", slog.String("user_id", id.String()))

	start := time.Now()
	deleted, err := s.userStore.Delete(ctx, id)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("something went wrong while deleting user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return false, err
	}

	log.Info("deleted user",
		slog.String("user_id", id.String()),
		slog.Bool("deleted", deleted),
		slog.Int64("duration_ms", elapsed.Milliseconds()))
	return deleted, nil
}
