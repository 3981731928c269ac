package restapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
	"github.com/zatekoja/hivclinic/pkg/validate"
)

// AuthAdapter implements the AuthRepository interface and keeps the
// session store in step with the backend.
type AuthAdapter struct {
	client  *clinicapi.Client
	session providers.SessionStore
	now     func() time.Time
}

// NewAuthAdapter creates a new auth adapter
func NewAuthAdapter(client *clinicapi.Client, store providers.SessionStore) repositories.AuthRepository {
	return &AuthAdapter{client: client, session: store, now: time.Now}
}

// Login exchanges credentials for a token and stores the session
func (a *AuthAdapter) Login(ctx context.Context, req entities.LoginRequest) (*entities.LoginResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, apperrors.NewValidationError("Vui lòng nhập tên đăng nhập")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError(validate.MsgPasswordRequired)
	}

	var out entities.LoginResponse
	err := a.client.Do(ctx, clinicapi.Request{
		Operation: "Login",
		Method:    http.MethodPost,
		Path:      "/api/login",
		Body:      req,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, apperrors.NewExternalError("Đăng nhập thất bại: không nhận được token", nil)
	}

	if err := a.session.SetToken(ctx, out.Token); err != nil {
		return nil, apperrors.NewInternalError("failed to store session token", err)
	}
	if err := a.session.SetUserInfo(ctx, entities.UserInfoFromLogin(&out, a.now())); err != nil {
		return nil, apperrors.NewInternalError("failed to store user info", err)
	}

	observability.LoggerFromContext(ctx).Info().
		Int64("user_id", out.UserID).
		Str("role", string(out.Role)).
		Msg("signed in")
	return &out, nil
}

// Register creates an account. It does not touch the current session.
func (a *AuthAdapter) Register(ctx context.Context, req entities.RegisterRequest) (*entities.RegisterResponse, error) {
	var out entities.RegisterResponse
	err := a.client.Do(ctx, clinicapi.Request{
		Operation: "Register",
		Method:    http.MethodPost,
		Path:      "/api/register",
		Body:      req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile returns the signed-in user as the backend sees it
func (a *AuthAdapter) Profile(ctx context.Context) (*entities.UserInfo, error) {
	var out entities.UserInfo
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Get profile",
		Method:     http.MethodGet,
		Path:       "/api/profile",
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout clears the stored session. No backend call is made.
func (a *AuthAdapter) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return apperrors.NewInternalError("failed to clear session", err)
	}
	return nil
}
