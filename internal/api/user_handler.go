package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/platformlab/user-api/internal/api/shared"
	"github.com/platformlab/user-api/internal/domain"
	"github.com/platformlab/user-api/internal/platform/logger"
	"github.com/platformlab/user-api/internal/service"
)

// UserHandler handles user-related HTTP requests. It translates service
// outcomes to HTTP statuses: absent users become 404, rejected creates 409,
// and service errors a sanitized 500. The service has already logged its own
// failures, so the handler never re-logs them.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /api/users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// GetUser handles GET /api/users/{id} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug("rejected malformed user id", slog.String("raw_id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}
	if user == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// CreateUser handles POST /api/users requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("rejected malformed request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// An omitted ID is generated server-side; a present one must parse.
	id := uuid.Nil
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			log.Debug("rejected malformed user id", slog.String("raw_id", req.ID))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
			return
		}
		id = parsed
	}

	user := domain.NewUser(id, req.FullName)

	created, err := h.userService.CreateUser(r.Context(), user)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	if !created {
		shared.RespondWithError(w, r, http.StatusConflict, "User already exists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// DeleteUser handles DELETE /api/users/{id} requests
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug("rejected malformed user id", slog.String("raw_id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	deleted, err := h.userService.DeleteUser(r.Context(), id)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
