package usecase

import (
	"context"
	"strings"
	"time"

	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"
	"manaibay/internal/dto/request"
	"manaibay/internal/dto/response"
	"manaibay/pkg/apperror"
	"manaibay/pkg/token"
	"manaibay/pkg/utils"

	"go.uber.org/zap"
)

const roleMessage = "Must be one of: admin, user"

type UserService interface {
	Create(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	GetByID(ctx context.Context, userID string) (*response.UserResponse, error)
	List(ctx context.Context) ([]response.UserResponse, error)
	Update(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	hasher   *token.Hasher
	log      *zap.Logger
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository, hasher *token.Hasher, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		log:      log.With(zap.String("service", "user")),
		now:      time.Now,
	}
}

// Create registers a user. The email check is a separate read before the
// insert, so two concurrent registrations with one email can both succeed.
func (us *userService) Create(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, invalidInput(errs)
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, invalidInput(map[string]string{"role": roleMessage})
	}

	existing, err := us.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Store("failed to check email", err)
	}
	if existing != nil {
		us.log.Warn("Email already registered", zap.String("email", req.Email))
		return nil, apperror.Conflict("Email already registered")
	}

	hashed, err := us.hasher.Hash(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperror.Store("failed to process password", err)
	}

	user := &entity.User{
		Base:           entity.NewBase(us.now()),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		HashedPassword: hashed,
		Phone:          req.Phone,
		Location:       req.Location,
		Role:           role,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Store("failed to create account", err)
	}

	us.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", user.Role.String()),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetByID(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := parseID(userID, "id")
	if err != nil {
		return nil, err
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store("failed to get user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) List(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Store("failed to get users", err)
	}

	out := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, response.UserToResponse(user))
	}

	us.log.Debug("Users retrieved", zap.Int("count", len(out)), actor(ctx))
	return out, nil
}

func (us *userService) Update(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	id, err := parseID(userID, "id")
	if err != nil {
		return nil, err
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	patch := entity.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
	}
	if req.Role != nil {
		if strings.TrimSpace(*req.Role) == "" {
			return nil, invalidInput(map[string]string{"role": roleMessage})
		}
		role, err := entity.ParseRole(*req.Role)
		if err != nil {
			return nil, invalidInput(map[string]string{"role": roleMessage})
		}
		patch.Role = &role
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store("failed to get user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if req.Email != nil && *req.Email != user.Email {
		holder, err := us.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, apperror.Store("failed to check email", err)
		}
		if holder != nil && holder.ID != user.ID {
			return nil, apperror.Conflict("Email already registered")
		}
	}

	if req.Password != nil {
		hashed, err := us.hasher.Hash(*req.Password)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err))
			return nil, apperror.Store("failed to process password", err)
		}
		patch.HashedPassword = &hashed
	}

	user.Apply(patch, us.now())

	if err := us.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Store("failed to update user", err)
	}

	us.log.Info("User updated",
		zap.String("user_id", user.ID.String()),
		zap.Bool("password_changed", req.Password != nil),
		actor(ctx),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) Delete(ctx context.Context, userID string) error {
	id, err := parseID(userID, "id")
	if err != nil {
		return err
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return apperror.Store("failed to get user", err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	if err := us.userRepo.Delete(ctx, id); err != nil {
		return apperror.Store("failed to delete user", err)
	}

	us.log.Info("User deleted",
		zap.String("user_id", id.String()),
		zap.String("email", user.Email),
		actor(ctx),
	)
	return nil
}
