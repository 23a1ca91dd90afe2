package cassandra

import (
	"context"
	"errors"
	"fmt"

	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"
	"manaibay/pkg/database"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type clientRepository struct {
	db  database.CassandraIface
	log *zap.Logger
}

func NewClientRepository(db database.CassandraIface, log *zap.Logger) repository.ClientRepository {
	return &clientRepository{
		db:  db,
		log: log.With(zap.String("repository", "client")),
	}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `INSERT INTO clients (id, name, email) VALUES (?, ?, ?)`

	if err := r.db.Exec(ctx, query, toCQL(client.ID), client.Name, client.Email); err != nil {
		r.log.Error("Failed to create client",
			zap.Error(err),
			zap.String("client_id", client.ID.String()),
		)
		return fmt.Errorf("create client %s: %w", client.ID.String(), err)
	}

	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	query := `SELECT id, name, email FROM clients WHERE id = ?`

	var (
		client entity.Client
		cid    gocql.UUID
	)
	err := r.db.QueryRow(ctx, query, toCQL(id)).Scan(&cid, &client.Name, &client.Email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find client by ID",
			zap.Error(err),
			zap.String("client_id", id.String()),
		)
		return nil, fmt.Errorf("find client by ID %s: %w", id.String(), err)
	}

	client.ID = fromCQL(cid)
	return &client, nil
}

func (r *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	rows := r.db.Query(ctx, `SELECT id, name, email FROM clients`)

	clients := []*entity.Client{}
	var (
		client entity.Client
		cid    gocql.UUID
	)
	for rows.Scan(&cid, &client.Name, &client.Email) {
		c := client
		c.ID = fromCQL(cid)
		clients = append(clients, &c)
	}

	if err := rows.Close(); err != nil {
		r.log.Error("Failed to get all clients", zap.Error(err))
		return nil, fmt.Errorf("find all clients: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	query := `UPDATE clients SET name = ?, email = ? WHERE id = ?`

	if err := r.db.Exec(ctx, query, client.Name, client.Email, toCQL(client.ID)); err != nil {
		r.log.Error("Failed to update client",
			zap.Error(err),
			zap.String("client_id", client.ID.String()),
		)
		return fmt.Errorf("update client %s: %w", client.ID.String(), err)
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = ?`, toCQL(id)); err != nil {
		r.log.Error("Failed to delete client",
			zap.Error(err),
			zap.String("client_id", id.String()),
		)
		return fmt.Errorf("delete client %s: %w", id.String(), err)
	}

	r.log.Info("Client deleted", zap.String("client_id", id.String()))
	return nil
}
