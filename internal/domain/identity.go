package domain

import (
	"context"
	"strings"
)

// Identity is the authenticated caller a request acts on behalf of.
// Services receive it as a *Identity: nil means the request is anonymous.
type Identity struct {
	UserID string
}

// Valid reports whether the identity carries a usable user id.
// A nil receiver is not valid.
func (id *Identity) Valid() bool {
	return id != nil && strings.TrimSpace(id.UserID) != ""
}

type identityKey struct{}

// WithIdentity returns a new context carrying the given identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the identity stored by WithIdentity.
// Returns nil for anonymous requests.
func IdentityFromContext(ctx context.Context) *Identity {
	if id, ok := ctx.Value(identityKey{}).(*Identity); ok && id.Valid() {
		return id
	}
	return nil
}
