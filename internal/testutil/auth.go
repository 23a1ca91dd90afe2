package testutil

import (
	"testing"
	"time"

	"manaibay/internal/data/entity"
	"manaibay/pkg/token"

	"github.com/golang-jwt/jwt/v5"
)

const TestSecret = "test-secret-do-not-use"

// NewTokenManager returns a manager with the test secret and default TTL.
func NewTokenManager() *token.Manager {
	return token.NewManager(TestSecret, token.DefaultTTL)
}

// NewHasher uses the cheapest bcrypt cost so tests stay fast.
func NewHasher() *token.Hasher {
	return token.NewHasher(4)
}

// NewUser builds a stored user with a hashed password.
func NewUser(t *testing.T, email, password string, role entity.Role) *entity.User {
	t.Helper()
	hashed, err := NewHasher().Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &entity.User{
		Base:           entity.NewBase(time.Now()),
		FirstName:      "Test",
		LastName:       "User",
		Email:          email,
		HashedPassword: hashed,
		Role:           role,
	}
}

// BearerFor returns an Authorization header value for user signed by m.
func BearerFor(t *testing.T, m *token.Manager, user *entity.User) string {
	t.Helper()
	signed, _, err := m.Issue(user.Email, user.Role.String())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + signed
}

// GenerateJWTHS256 signs arbitrary claims, for tokens the manager would refuse to issue.
func GenerateJWTHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}
