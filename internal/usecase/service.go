package usecase

import (
	"context"
	"fmt"

	"manaibay/internal/data/repository"
	"manaibay/pkg/apperror"
	"manaibay/pkg/token"
	"manaibay/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Client  ClientService
	Product ProductService
}

// NewService wires every service onto one repository bundle. revocations may be
// nil when no revocation store is configured.
func NewService(
	repo *repository.Repository,
	tokens *token.Manager,
	hasher *token.Hasher,
	revocations token.RevocationStore,
	log *zap.Logger,
) *Service {
	users := NewUserService(repo.User, hasher, log)
	return &Service{
		Auth:    NewAuthService(repo.User, users, tokens, hasher, revocations, log),
		User:    users,
		Client:  NewClientService(repo.Client, log),
		Product: NewProductService(repo.Product, repo.Review, log),
	}
}

// actor names the caller in audit log lines.
func actor(ctx context.Context) zap.Field {
	if identity, ok := utils.GetIdentity(ctx); ok {
		return zap.String("actor", identity.Email)
	}
	return zap.String("actor", "anonymous")
}

func invalidInput(errs map[string]string) error {
	return apperror.Validation(
		fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(errs)),
		errs,
	)
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := utils.ParseID(raw)
	if err != nil {
		return uuid.Nil, invalidInput(map[string]string{field: "Must be a valid UUID"})
	}
	return id, nil
}
