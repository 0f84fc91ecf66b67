package domain

import (
	"github.com/google/uuid"
)

// User represents a registered user of the service.
// It is a plain data record: the ID is assigned once at construction time
// and never mutated afterwards. There is no update lifecycle for users.
type User struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

// NewUser creates a User with the given ID and full name.
// When id is uuid.Nil the entity generates its own identifier, which is the
// normal path for users built from API creation requests that omit an ID.
func NewUser(id uuid.UUID, fullName string) *User {
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &User{
		ID:       id,
		FullName: fullName,
	}
}
