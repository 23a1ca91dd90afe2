// Package postgres implements the store contracts on a relational database
// through a pgx pool.
package postgres

import (
	"manaibay/internal/data/repository"
	"manaibay/pkg/database"

	"go.uber.org/zap"
)

func NewRepository(db database.PgxIface, log *zap.Logger) *repository.Repository {
	return &repository.Repository{
		User:    NewUserRepository(db, log),
		Client:  NewClientRepository(db, log),
		Product: NewProductRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Store:   db,
	}
}
