package utils

import (
	"github.com/google/uuid"
)

// ParseID accepts only canonical uuids; an error means the path segment was malformed.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
