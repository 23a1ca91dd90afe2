package postgres

import (
	"context"
	"errors"
	"fmt"

	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"
	"manaibay/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type clientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClientRepository(db database.PgxIface, log *zap.Logger) repository.ClientRepository {
	return &clientRepository{
		db:  db,
		log: log.With(zap.String("repository", "client")),
	}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `INSERT INTO clients (id, name, email) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, client.ID, client.Name, client.Email); err != nil {
		r.log.Error("Failed to create client",
			zap.Error(err),
			zap.String("client_id", client.ID.String()),
		)
		return fmt.Errorf("create client %s: %w", client.ID.String(), err)
	}

	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	query := `SELECT id, name, email FROM clients WHERE id = $1`

	var client entity.Client
	err := r.db.QueryRow(ctx, query, id).Scan(&client.ID, &client.Name, &client.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find client by ID",
			zap.Error(err),
			zap.String("client_id", id.String()),
		)
		return nil, fmt.Errorf("find client by ID %s: %w", id.String(), err)
	}

	return &client, nil
}

func (r *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email FROM clients ORDER BY name`)
	if err != nil {
		r.log.Error("Failed to get all clients", zap.Error(err))
		return nil, fmt.Errorf("find all clients: %w", err)
	}
	defer rows.Close()

	clients := []*entity.Client{}
	for rows.Next() {
		var client entity.Client
		if err := rows.Scan(&client.ID, &client.Name, &client.Email); err != nil {
			r.log.Error("Failed to scan client row", zap.Error(err))
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, &client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients rows: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	query := `UPDATE clients SET name = $2, email = $3 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, client.ID, client.Name, client.Email); err != nil {
		r.log.Error("Failed to update client",
			zap.Error(err),
			zap.String("client_id", client.ID.String()),
		)
		return fmt.Errorf("update client %s: %w", client.ID.String(), err)
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		r.log.Error("Failed to delete client",
			zap.Error(err),
			zap.String("client_id", id.String()),
		)
		return fmt.Errorf("delete client %s: %w", id.String(), err)
	}

	r.log.Info("Client deleted", zap.String("client_id", id.String()))
	return nil
}
