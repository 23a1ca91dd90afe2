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

const userColumns = `id, first_name, last_name, email, hashed_password, phone, location, role, created_date, updated_date`

type userRepository struct {
	db  database.CassandraIface
	log *zap.Logger
}

func NewUserRepository(db database.CassandraIface, log *zap.Logger) repository.UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// userScan holds the columns that need converting after a scan.
type userScan struct {
	user entity.User
	id   gocql.UUID
	role string
}

func (s *userScan) dest() []any {
	u := &s.user
	return []any{&s.id, &u.FirstName, &u.LastName, &u.Email, &u.HashedPassword,
		&u.Phone, &u.Location, &s.role, &u.CreatedDate, &u.UpdatedDate}
}

func (s *userScan) result() *entity.User {
	u := s.user
	u.ID = fromCQL(s.id)
	u.Role = entity.Role(s.role)
	return &u
}

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	err := ur.db.Exec(ctx, query,
		toCQL(user.ID),
		user.FirstName,
		user.LastName,
		user.Email,
		user.HashedPassword,
		user.Phone,
		user.Location,
		string(user.Role),
		user.CreatedDate,
		user.UpdatedDate,
	)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	var s userScan
	err := ur.db.QueryRow(ctx, query, toCQL(id)).Scan(s.dest()...)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return s.result(), nil
}

// FindByEmail scans the whole table. Email is not a key, so two racing
// registrations can both insert; the first match wins here.
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? LIMIT 1 ALLOW FILTERING`

	var s userScan
	err := ur.db.QueryRow(ctx, query, email).Scan(s.dest()...)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return s.result(), nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`

	rows := ur.db.Query(ctx, query)

	users := []*entity.User{}
	var s userScan
	for rows.Scan(s.dest()...) {
		users = append(users, s.result())
		s = userScan{}
	}

	if err := rows.Close(); err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}

	return users, nil
}

// Update writes every column. CQL UPDATE is an upsert, so the caller must
// have checked that the row exists.
func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET first_name = ?, last_name = ?, email = ?, hashed_password = ?,
		    phone = ?, location = ?, role = ?, created_date = ?, updated_date = ?
		WHERE id = ?
	`

	err := ur.db.Exec(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.HashedPassword,
		user.Phone,
		user.Location,
		string(user.Role),
		user.CreatedDate,
		user.UpdatedDate,
		toCQL(user.ID),
	)
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ur.db.Exec(ctx, `DELETE FROM users WHERE id = ?`, toCQL(id)); err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	ur.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}
