package session

import (
	"context"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zatekoja/hivclinic/internal/domain/providers"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

// Claims are the bearer token fields the client cares about. The token is
// decoded without verification; the backend is the verifier.
type Claims struct {
	UserID  interface{} `json:"userId,omitempty"`
	StaffID interface{} `json:"staffId,omitempty"`
	Role    string      `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the payload of a bearer token
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// CurrentUserID returns the signed-in user's id: the cached user info
// first, then the userId/sub claim of the token.
func CurrentUserID(ctx context.Context, store providers.SessionStore) (int64, error) {
	return currentID(ctx, store, false)
}

// CurrentStaffID is like CurrentUserID but prefers the staff id when the
// session carries one.
func CurrentStaffID(ctx context.Context, store providers.SessionStore) (int64, error) {
	return currentID(ctx, store, true)
}

func currentID(ctx context.Context, store providers.SessionStore, staff bool) (int64, error) {
	if store == nil {
		return 0, apperrors.NewUnauthorizedError("Vui lòng đăng nhập")
	}

	info, err := store.UserInfo(ctx)
	if err != nil {
		return 0, apperrors.NewInternalError("read session", err)
	}
	if info != nil {
		if staff && info.StaffID != 0 {
			return info.StaffID, nil
		}
		if info.UserID != 0 {
			return info.UserID, nil
		}
	}

	token, err := store.Token(ctx)
	if err != nil {
		return 0, apperrors.NewInternalError("read session", err)
	}
	if token == "" {
		return 0, apperrors.NewUnauthorizedError("Vui lòng đăng nhập")
	}

	claims, err := ParseClaims(token)
	if err != nil {
		return 0, apperrors.NewUnauthorizedError("Phiên đăng nhập không hợp lệ")
	}
	candidates := []interface{}{claims.UserID, claims.Subject}
	if staff {
		candidates = append([]interface{}{claims.StaffID}, candidates...)
	}
	for _, c := range candidates {
		if id, ok := asID(c); ok {
			return id, nil
		}
	}
	return 0, apperrors.NewUnauthorizedError("Phiên đăng nhập không chứa mã người dùng")
}

func asID(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if t > 0 {
			return int64(t), true
		}
	case string:
		if id, err := strconv.ParseInt(t, 10, 64); err == nil && id > 0 {
			return id, true
		}
	}
	return 0, false
}
