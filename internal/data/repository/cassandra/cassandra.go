// Package cassandra implements the store contracts on a wide-column keyspace.
// Rows are keyed by id only; lookups on other columns are filtered scans.
package cassandra

import (
	"manaibay/internal/data/repository"
	"manaibay/pkg/database"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func NewRepository(db database.CassandraIface, log *zap.Logger) *repository.Repository {
	return &repository.Repository{
		User:    NewUserRepository(db, log),
		Client:  NewClientRepository(db, log),
		Product: NewProductRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Store:   db,
	}
}

func toCQL(id uuid.UUID) gocql.UUID {
	return gocql.UUID(id)
}

func fromCQL(id gocql.UUID) uuid.UUID {
	return uuid.UUID(id)
}
