package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"manaibay/internal/data/entity"
	"manaibay/internal/dto/request"
	"manaibay/internal/testutil"
	"manaibay/pkg/apperror"
	"manaibay/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServices(store *testutil.Store) *Service {
	return NewService(store.Repository(), testutil.NewTokenManager(), testutil.NewHasher(), nil, zap.NewNop())
}

func TestAuthService_RegisterLoginRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  request.RegisterRequest
		want entity.Role
	}{
		{name: "default role", req: request.RegisterRequest{Email: "a@x.com", Password: "p"}, want: entity.RoleUser},
		{name: "admin", req: request.RegisterRequest{Email: "boss@x.com", Password: "s3cret", Role: "admin"}, want: entity.RoleAdmin},
		{name: "mixed case role", req: request.RegisterRequest{Email: "u@x.com", Password: "pw", Role: "User"}, want: entity.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newTestServices(testutil.NewStore())

			user, err := svc.Auth.Register(ctx, &tt.req)
			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, tt.want, user.Role)

			login, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: tt.req.Email, Password: tt.req.Password})
			require.NoError(t, err)
			assert.Equal(t, "bearer", login.TokenType)
			assert.Equal(t, tt.want, login.Role)

			claims, err := testutil.NewTokenManager().Verify(login.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, tt.req.Email, claims.Subject)
			assert.Equal(t, tt.want.String(), claims.Role)
			assert.WithinDuration(t, time.Now().Add(30*time.Minute), login.ExpiresAt, time.Minute)
		})
	}
}

func TestAuthService_RegisterErrors(t *testing.T) {
	tests := []struct {
		name     string
		seed     bool
		failOn   string
		req      request.RegisterRequest
		wantKind apperror.Kind
	}{
		{
			name:     "email taken",
			seed:     true,
			req:      request.RegisterRequest{Email: "a@x.com", Password: "other"},
			wantKind: apperror.KindConflict,
		},
		{
			name:     "missing password",
			req:      request.RegisterRequest{Email: "a@x.com"},
			wantKind: apperror.KindValidation,
		},
		{
			name:     "bad email",
			req:      request.RegisterRequest{Email: "not-an-email", Password: "p"},
			wantKind: apperror.KindValidation,
		},
		{
			name:     "unknown role",
			req:      request.RegisterRequest{Email: "a@x.com", Password: "p", Role: "root"},
			wantKind: apperror.KindValidation,
		},
		{
			name:     "store down",
			failOn:   "user.find_by_email",
			req:      request.RegisterRequest{Email: "a@x.com", Password: "p"},
			wantKind: apperror.KindStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := testutil.NewStore()
			svc := newTestServices(store)

			if tt.seed {
				_, err := svc.Auth.Register(ctx, &request.RegisterRequest{Email: "a@x.com", Password: "p"})
				require.NoError(t, err)
			}
			if tt.failOn != "" {
				store.FailOn(tt.failOn, errors.New("unavailable"))
			}

			_, err := svc.Auth.Register(ctx, &tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	stored := testutil.NewUser(t, "a@x.com", "right", entity.RoleUser)

	users := new(testutil.MockUserRepository)
	users.On("FindByEmail", mock.Anything, "a@x.com").Return(stored, nil)
	users.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)

	svc := NewAuthService(users, nil, testutil.NewTokenManager(), testutil.NewHasher(), nil, zap.NewNop())

	for i := 0; i < 3; i++ {
		resp, err := svc.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "wrong"})
		assert.Nil(t, resp)
		assert.True(t, errors.Is(err, apperror.Unauthorized("Invalid credentials")))
	}

	resp, err := svc.Login(ctx, &request.LoginRequest{Email: "ghost@x.com", Password: "right"})
	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	users.AssertNumberOfCalls(t, "FindByEmail", 4)
}

func TestAuthService_Logout(t *testing.T) {
	expires := time.Now().Add(20 * time.Minute)
	identity := &entity.Identity{UserID: uuid.New(), Email: "a@x.com", TokenID: "jti-1", ExpiresAt: expires}
	ctx := utils.SetIdentity(context.Background(), identity)

	t.Run("revokes token id until expiry", func(t *testing.T) {
		revocations := new(testutil.MockRevocationStore)
		revocations.On("Revoke", mock.Anything, "jti-1", expires).Return(nil)
		svc := NewAuthService(nil, nil, testutil.NewTokenManager(), testutil.NewHasher(), revocations, zap.NewNop())

		require.NoError(t, svc.Logout(ctx))
		revocations.AssertExpectations(t)
	})

	t.Run("revocation store failure", func(t *testing.T) {
		revocations := new(testutil.MockRevocationStore)
		revocations.On("Revoke", mock.Anything, "jti-1", expires).Return(errors.New("redis down"))
		svc := NewAuthService(nil, nil, testutil.NewTokenManager(), testutil.NewHasher(), revocations, zap.NewNop())

		err := svc.Logout(ctx)
		assert.Equal(t, apperror.KindStore, apperror.KindOf(err))
	})

	t.Run("no caller", func(t *testing.T) {
		svc := NewAuthService(nil, nil, testutil.NewTokenManager(), testutil.NewHasher(), nil, zap.NewNop())

		err := svc.Logout(context.Background())
		assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	})
}

func TestAuthService_Me(t *testing.T) {
	store := testutil.NewStore()
	svc := newTestServices(store)
	user := testutil.NewUser(t, "me@x.com", "pw", entity.RoleUser)
	require.NoError(t, store.Repository().User.Create(context.Background(), user))

	ctx := utils.SetIdentity(context.Background(), &entity.Identity{UserID: user.ID, Email: user.Email})
	me, err := svc.Auth.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), me.ID)

	// user removed after the token was issued
	require.NoError(t, store.Repository().User.Delete(context.Background(), user.ID))
	_, err = svc.Auth.Me(ctx)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}
