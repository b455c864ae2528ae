package auth

import (
	"context"

	"github.com/Prathamesh-chougale-17/status-study/internal/models"
)

type ctxKey string

const identityKey ctxKey = "auth.identity"

// WithIdentity stores the authenticated identity in the request context.
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom fetches the authenticated identity from the context.
func IdentityFrom(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*models.Identity)
	return identity, ok && identity != nil
}
