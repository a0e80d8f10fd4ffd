package shared

import (
	"badminton-club/internal/domain/user"

	"github.com/google/uuid"
)

// Caller is the authenticated identity resolved from a bearer token.
type Caller struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == user.RoleAdmin
}

func (c Caller) IsAuthenticated() bool {
	return c.UserID != uuid.Nil
}
