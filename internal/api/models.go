package api

import (
	"github.com/platformlab/user-api/internal/domain"
)

// Common request/response structures

// CreateUserRequest defines the payload for the user creation endpoint.
// The ID is optional; when omitted or empty a new one is generated
// server-side. A client-supplied ID that already exists is reported as a
// conflict rather than an error.
type CreateUserRequest struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"full_name"`
}

// UserResponse defines the representation of a user returned by the API.
type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// userToResponse converts a domain.User to a UserResponse
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		FullName: user.FullName,
	}
}

// usersToResponse converts a slice of domain users to response form.
// The result is never nil, so an empty list serializes as [] rather than null.
func usersToResponse(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userToResponse(user))
	}
	return responses
}
