package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/zatekoja/hivclinic/internal/adapters/session"
	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

const (
	msgTitleRequired   = "Vui lòng nhập tiêu đề"
	msgContentRequired = "Vui lòng nhập nội dung"
)

// BlogAdapter implements the BlogRepository interface
type BlogAdapter struct {
	client   *clinicapi.Client
	session  providers.SessionStore
	fallback *FallbackPolicy
}

// NewBlogAdapter creates a new blog adapter. The session supplies the
// author id when a request leaves it empty.
func NewBlogAdapter(client *clinicapi.Client, store providers.SessionStore, fallback *FallbackPolicy) repositories.BlogRepository {
	return &BlogAdapter{client: client, session: store, fallback: fallback}
}

// List retrieves every blog post
func (a *BlogAdapter) List(ctx context.Context) ([]entities.Blog, error) {
	return withFallback(ctx, a.fallback, "Get blogs", func() ([]entities.Blog, error) {
		return a.list(ctx, "Get blogs", "/blog/getBlogs", nil)
	}, sampleBlogs)
}

// GetByID retrieves a blog post by ID
func (a *BlogAdapter) GetByID(ctx context.Context, id int64) (*entities.Blog, error) {
	var out entities.Blog
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Get blog",
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/blog/%d", id),
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create publishes a new blog post
func (a *BlogAdapter) Create(ctx context.Context, req entities.BlogRequest) (*entities.Blog, error) {
	if err := validateArticle(req.Title, req.Content); err != nil {
		return nil, err
	}
	staffID, err := resolveStaffID(ctx, a.session, req.StaffID)
	if err != nil {
		return nil, err
	}
	req.StaffID = staffID

	var out entities.Blog
	err = a.client.Do(ctx, clinicapi.Request{
		Operation:  "Create blog",
		Method:     http.MethodPost,
		Path:       "/blog",
		Body:       req,
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a blog post's editable fields
func (a *BlogAdapter) Update(ctx context.Context, id int64, req entities.BlogRequest) (*entities.Blog, error) {
	if err := validateArticle(req.Title, req.Content); err != nil {
		return nil, err
	}
	staffID, err := resolveStaffID(ctx, a.session, req.StaffID)
	if err != nil {
		return nil, err
	}
	req.StaffID = staffID

	var out entities.Blog
	err = a.client.Do(ctx, clinicapi.Request{
		Operation:  "Update blog",
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/blog/%d", id),
		Body:       req,
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a blog post
func (a *BlogAdapter) Delete(ctx context.Context, id int64) error {
	return a.client.Do(ctx, clinicapi.Request{
		Operation:  "Delete blog",
		Method:     http.MethodDelete,
		Path:       fmt.Sprintf("/blog/%d", id),
		Authorized: true,
	}, nil)
}

// SearchByTitle finds posts whose title contains keyword
func (a *BlogAdapter) SearchByTitle(ctx context.Context, keyword string) ([]entities.Blog, error) {
	return a.list(ctx, "Search blogs", "/blog/search/title", url.Values{"keyword": {keyword}})
}

// ListByStaff retrieves posts written by a staff member
func (a *BlogAdapter) ListByStaff(ctx context.Context, staffID int64) ([]entities.Blog, error) {
	staffID, err := resolveStaffID(ctx, a.session, staffID)
	if err != nil {
		return nil, err
	}
	return a.list(ctx, "Get staff blogs", fmt.Sprintf("/blog/staff/%d", staffID), nil)
}

func (a *BlogAdapter) list(ctx context.Context, op, path string, query url.Values) ([]entities.Blog, error) {
	var out []entities.Blog
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
		out = []entities.Blog{}
	}
	return out, nil
}

func validateArticle(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError(msgTitleRequired)
	}
	if strings.TrimSpace(content) == "" {
		return apperrors.NewValidationError(msgContentRequired)
	}
	return nil
}

// resolveStaffID returns id, or the signed-in staff member's id when id is zero
func resolveStaffID(ctx context.Context, store providers.SessionStore, id int64) (int64, error) {
	if id > 0 {
		return id, nil
	}
	return session.CurrentStaffID(ctx, store)
}
