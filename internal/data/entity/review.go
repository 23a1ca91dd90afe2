package entity

import (
	"github.com/google/uuid"
)

// Review belongs to exactly one product. ProductID is not enforced by the store.
type Review struct {
	BaseSimple
	ProductID uuid.UUID `db:"product_id"`
	UserName  string    `db:"user_name"`
	Rating    int       `db:"rating"` // 1-5
	Comment   string    `db:"comment"`
}
