package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager(testSecret, 0)
	assert.Equal(t, DefaultTTL, m.TTL())

	signed, issued, err := m.Issue("a@x.com", "user")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), claims.ExpiresAtTime(), 5*time.Second)
}

func TestManager_VerifyRejectsExpired(t *testing.T) {
	m := NewManager(testSecret, time.Minute)

	signed, _, err := m.IssueWithTTL("a@x.com", "user", -time.Minute)
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyRejectsAfterClockPassesExpiry(t *testing.T) {
	m := NewManager(testSecret, time.Minute)
	signed, _, err := m.Issue("a@x.com", "admin")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyFailures(t *testing.T) {
	m := NewManager(testSecret, time.Minute)

	otherSecret, _, err := NewManager("other", time.Minute).Issue("a@x.com", "user")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "a@x.com"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	valid, _, err := m.Issue("a@x.com", "user")
	require.NoError(t, err)
	tampered := valid[:len(valid)-2] + "xx"

	tests := map[string]string{
		"empty":         "",
		"garbage":       "not-a-token",
		"two parts":     "abc.def",
		"wrong secret":  otherSecret,
		"no subject":    noSubject,
		"no expiry":     noExpiry,
		"wrong alg":     wrongAlg,
		"bad signature": tampered,
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := m.Verify(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
