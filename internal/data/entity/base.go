package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and audit columns shared by mutable records.
type Base struct {
	ID          uuid.UUID `db:"id"`
	CreatedDate time.Time `db:"created_date"`
	UpdatedDate time.Time `db:"updated_date"`
}

// BaseSimple is for append-only records that are never updated.
type BaseSimple struct {
	ID          uuid.UUID `db:"id"`
	CreatedDate time.Time `db:"created_date"`
}

// NewBase stamps a fresh id with both timestamps set to now.
func NewBase(now time.Time) Base {
	now = now.UTC()
	return Base{
		ID:          uuid.New(),
		CreatedDate: now,
		UpdatedDate: now,
	}
}

// NewBaseSimple stamps a fresh id and creation time.
func NewBaseSimple(now time.Time) BaseSimple {
	return BaseSimple{
		ID:          uuid.New(),
		CreatedDate: now.UTC(),
	}
}
