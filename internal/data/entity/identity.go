package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the caller resolved from a verified token against a live user record.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role.IsAdmin()
}
