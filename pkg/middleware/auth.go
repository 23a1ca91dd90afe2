package middleware

import (
	"net/http"
	"strings"

	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"
	"manaibay/pkg/token"
	"manaibay/pkg/utils"

	"go.uber.org/zap"
)

const credentialsMessage = "Could not validate credentials"

// Authenticate verifies the bearer token and resolves its subject to a live
// user. The stored user's role is authoritative, not the role in the token.
// revocations may be nil.
func Authenticate(
	tokens *token.Manager,
	users repository.UserRepository,
	revocations token.RevocationStore,
	logger *zap.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				utils.ResponseUnauthorized(w, credentialsMessage)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				logger.Debug("Token rejected", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, credentialsMessage)
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(r.Context(), claims.ID)
				if err != nil {
					logger.Error("Failed to check token revocation", zap.Error(err))
					utils.ResponseInternalError(w, "Internal server error")
					return
				}
				if revoked {
					logger.Warn("Revoked token used", zap.String("subject", claims.Subject))
					utils.ResponseUnauthorized(w, credentialsMessage)
					return
				}
			}

			user, err := users.FindByEmail(r.Context(), claims.Subject)
			if err != nil {
				logger.Error("Failed to resolve token subject",
					zap.Error(err), zap.String("subject", claims.Subject))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Token subject no longer exists", zap.String("subject", claims.Subject))
				utils.ResponseUnauthorized(w, credentialsMessage)
				return
			}

			name := user.FullName()
			identity := &entity.Identity{
				UserID:    user.ID,
				Email:     user.Email,
				Name:      name,
				Role:      user.Role,
				TokenID:   claims.ID,
				ExpiresAt: claims.ExpiresAtTime(),
			}

			next.ServeHTTP(w, r.WithContext(utils.SetIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole only lets callers with exactly role through. It must run after Authenticate.
func RequireRole(role entity.Role, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentity(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, credentialsMessage)
				return
			}

			if identity.Role != role {
				logger.Warn("Role check failed",
					zap.String("email", identity.Email),
					zap.String("role", identity.Role.String()),
					zap.String("required", role.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, forbiddenMessage(role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func forbiddenMessage(role entity.Role) string {
	if role.IsAdmin() {
		return "Admin access required"
	}
	return "Insufficient role"
}

func bearerToken(header string) (string, bool) {
	scheme, value, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
