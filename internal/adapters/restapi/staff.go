package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
	"github.com/zatekoja/hivclinic/pkg/validate"
)

// StaffAdapter implements the StaffRepository interface
type StaffAdapter struct {
	client   *clinicapi.Client
	auth     repositories.AuthRepository
	fallback *FallbackPolicy
}

// NewStaffAdapter creates a new staff adapter. auth registers the login
// account that backs each new staff record.
func NewStaffAdapter(client *clinicapi.Client, auth repositories.AuthRepository, fallback *FallbackPolicy) repositories.StaffRepository {
	return &StaffAdapter{client: client, auth: auth, fallback: fallback}
}

// List retrieves every staff member
func (a *StaffAdapter) List(ctx context.Context) ([]entities.Staff, error) {
	return withFallback(ctx, a.fallback, "Get staff", func() ([]entities.Staff, error) {
		return a.list(ctx, "Get staff", "/staff", nil)
	}, sampleStaff)
}

// GetByID retrieves a staff member by ID
func (a *StaffAdapter) GetByID(ctx context.Context, id int64) (*entities.Staff, error) {
	var out entities.Staff
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Get staff member",
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/staff/%d", id),
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a STAFF account and then creates the staff record.
// If registration fails the staff record is never created.
func (a *StaffAdapter) Create(ctx context.Context, req entities.StaffRequest) (*entities.Staff, error) {
	if err := validateStaff(req, true); err != nil {
		return nil, err
	}

	_, err := a.auth.Register(ctx, entities.RegisterRequest{
		FullName: req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     entities.RoleStaff,
		Gender:   req.Gender,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, apperrors.NewExternalError("Không thể đăng ký tài khoản: "+apperrors.DisplayMessage(err), err)
	}

	var out entities.Staff
	err = a.client.Do(ctx, clinicapi.Request{
		Operation:  "Create staff",
		Method:     http.MethodPost,
		Path:       "/staff",
		Body:       req,
		Authorized: true,
	}, &out)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("email", req.Email).
			Msg("account registered but staff record was not created")
		return nil, err
	}
	return &out, nil
}

// Update replaces a staff member's editable fields. An empty password is
// left unchanged.
func (a *StaffAdapter) Update(ctx context.Context, id int64, req entities.StaffRequest) (*entities.Staff, error) {
	if err := validateStaff(req, false); err != nil {
		return nil, err
	}

	var out entities.Staff
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Update staff",
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/staff/%d", id),
		Body:       req,
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a staff member
func (a *StaffAdapter) Delete(ctx context.Context, id int64) error {
	return a.client.Do(ctx, clinicapi.Request{
		Operation:  "Delete staff",
		Method:     http.MethodDelete,
		Path:       fmt.Sprintf("/staff/%d", id),
		Authorized: true,
	}, nil)
}

// SearchByName finds staff whose name contains name
func (a *StaffAdapter) SearchByName(ctx context.Context, name string) ([]entities.Staff, error) {
	return a.list(ctx, "Search staff", "/staff/search", url.Values{"name": {name}})
}

// ListByGender retrieves staff of one gender
func (a *StaffAdapter) ListByGender(ctx context.Context, gender entities.Gender) ([]entities.Staff, error) {
	return a.list(ctx, "Get staff by gender", "/staff/gender/"+url.PathEscape(string(gender)), nil)
}

// ListByActive retrieves active (not soft-deleted) or inactive staff
func (a *StaffAdapter) ListByActive(ctx context.Context, active bool) ([]entities.Staff, error) {
	if active {
		return a.list(ctx, "Get active staff", "/staff/active", nil)
	}
	return a.list(ctx, "Get inactive staff", "/staff/inactive", nil)
}

func (a *StaffAdapter) list(ctx context.Context, op, path string, query url.Values) ([]entities.Staff, error) {
	var out []entities.Staff
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  op,
		Method:     http.MethodGet,
		Path:       path,
		Query:      query,
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Staff{}
	}
	return out, nil
}

// validateStaff checks a staff request. The password is required on
// create and only length-checked on update when present.
func validateStaff(req entities.StaffRequest, creating bool) error {
	errs := []error{
		validate.Name(req.Name),
		validate.Email(req.Email),
		validate.Phone(req.Phone),
	}
	if creating || req.Password != "" {
		errs = append(errs, validate.Password(req.Password))
	}
	if req.Gender != "" && !req.Gender.IsValid() {
		errs = append(errs, apperrors.NewValidationError("Giới tính không hợp lệ"))
	}
	return validate.First(errs...)
}
