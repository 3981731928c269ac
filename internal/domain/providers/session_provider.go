package providers

import (
	"context"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

// Storage keys shared by every session store implementation
const (
	SessionKeyToken    = "token"
	SessionKeyUserInfo = "userInfo"
)

// CredentialProvider supplies the bearer token for authorized calls. It is
// consulted on every request so a refreshed token is picked up immediately.
type CredentialProvider interface {
	// Token returns the current bearer token, or "" when signed out
	Token(ctx context.Context) (string, error)
}

// SessionStore is the persistent client-side session. Only the login and
// logout flows write to it.
type SessionStore interface {
	CredentialProvider

	// SetToken stores the bearer token
	SetToken(ctx context.Context, token string) error

	// UserInfo returns the cached identity, or nil when none is stored
	UserInfo(ctx context.Context) (*entities.UserInfo, error)

	// SetUserInfo stores the cached identity
	SetUserInfo(ctx context.Context, info *entities.UserInfo) error

	// Clear removes both the token and the cached identity
	Clear(ctx context.Context) error
}
