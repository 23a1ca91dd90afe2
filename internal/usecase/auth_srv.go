package usecase

import (
	"context"

	"manaibay/internal/data/repository"
	"manaibay/internal/dto/request"
	"manaibay/internal/dto/response"
	"manaibay/pkg/apperror"
	"manaibay/pkg/token"
	"manaibay/pkg/utils"

	"go.uber.org/zap"
)

const invalidCredentials = "Invalid credentials"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*response.UserResponse, error)
}

type authService struct {
	userRepo    repository.UserRepository
	users       UserService
	tokens      *token.Manager
	hasher      *token.Hasher
	revocations token.RevocationStore
	log         *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	users UserService,
	tokens *token.Manager,
	hasher *token.Hasher,
	revocations token.RevocationStore,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		users:       users,
		tokens:      tokens,
		hasher:      hasher,
		revocations: revocations,
		log:         log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	return s.users.Create(ctx, req)
}

// Login answers an unknown email and a wrong password the same way.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, invalidInput(errs)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Store("failed to find user", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	if !s.hasher.Check(req.Password, user.HashedPassword) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	signed, claims, err := s.tokens.Issue(user.Email, user.Role.String())
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperror.Store("failed to issue token", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &response.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		Role:        user.Role,
		ExpiresAt:   claims.ExpiresAtTime(),
	}, nil
}

// Logout revokes the caller's token until it would have expired.
func (s *authService) Logout(ctx context.Context) error {
	identity, ok := utils.GetIdentity(ctx)
	if !ok {
		return apperror.Unauthorized("Could not validate credentials")
	}
	if s.revocations == nil {
		s.log.Warn("Logout without a revocation store; token stays valid until expiry",
			zap.String("email", identity.Email))
		return nil
	}

	if err := s.revocations.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		s.log.Error("Failed to revoke token", zap.Error(err), zap.String("email", identity.Email))
		return apperror.Store("failed to logout", err)
	}

	s.log.Info("User logged out", zap.String("email", identity.Email))
	return nil
}

func (s *authService) Me(ctx context.Context) (*response.UserResponse, error) {
	identity, ok := utils.GetIdentity(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Could not validate credentials")
	}

	user, err := s.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, apperror.Store("failed to get profile", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("Could not validate credentials")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
