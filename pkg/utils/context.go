package utils

import (
	"context"

	"manaibay/internal/data/entity"
)

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity stores the authenticated caller for downstream handlers and services.
func SetIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity returns the caller set by the auth middleware.
func GetIdentity(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*entity.Identity)
	return identity, ok && identity != nil
}
