package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
)

// EducationContentAdapter implements the EducationContentRepository interface
type EducationContentAdapter struct {
	client   *clinicapi.Client
	session  providers.SessionStore
	fallback *FallbackPolicy
}

// NewEducationContentAdapter creates a new education content adapter
func NewEducationContentAdapter(client *clinicapi.Client, store providers.SessionStore, fallback *FallbackPolicy) repositories.EducationContentRepository {
	return &EducationContentAdapter{client: client, session: store, fallback: fallback}
}

// List retrieves every education article
func (a *EducationContentAdapter) List(ctx context.Context) ([]entities.EducationContent, error) {
	return withFallback(ctx, a.fallback, "Get education content", func() ([]entities.EducationContent, error) {
		return a.list(ctx, "Get education content", "/education-content", nil)
	}, sampleEducationContents)
}

// GetByID retrieves an article by ID
func (a *EducationContentAdapter) GetByID(ctx context.Context, id int64) (*entities.EducationContent, error) {
	var out entities.EducationContent
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Get education content item",
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/education-content/%d", id),
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create publishes an article
func (a *EducationContentAdapter) Create(ctx context.Context, req entities.EducationContentRequest) (*entities.EducationContent, error) {
	return a.write(ctx, "Create education content", http.MethodPost, "/education-content", req)
}

// Update replaces an article's editable fields
func (a *EducationContentAdapter) Update(ctx context.Context, id int64, req entities.EducationContentRequest) (*entities.EducationContent, error) {
	return a.write(ctx, "Update education content", http.MethodPut, fmt.Sprintf("/education-content/%d", id), req)
}

// Delete removes an article
func (a *EducationContentAdapter) Delete(ctx context.Context, id int64) error {
	return a.client.Do(ctx, clinicapi.Request{
		Operation:  "Delete education content",
		Method:     http.MethodDelete,
		Path:       fmt.Sprintf("/education-content/%d", id),
		Authorized: true,
	}, nil)
}

// SearchByTitle finds articles matching keyword
func (a *EducationContentAdapter) SearchByTitle(ctx context.Context, keyword string) ([]entities.EducationContent, error) {
	return a.list(ctx, "Search education content", "/education-content/search", url.Values{"keyword": {keyword}})
}

// ListByStaff retrieves articles written by a staff member
func (a *EducationContentAdapter) ListByStaff(ctx context.Context, staffID int64) ([]entities.EducationContent, error) {
	staffID, err := resolveStaffID(ctx, a.session, staffID)
	if err != nil {
		return nil, err
	}
	return a.list(ctx, "Get staff education content", fmt.Sprintf("/education-content/staff/%d", staffID), nil)
}

func (a *EducationContentAdapter) write(ctx context.Context, op, method, path string, req entities.EducationContentRequest) (*entities.EducationContent, error) {
	if err := validateArticle(req.Title, req.Content); err != nil {
		return nil, err
	}
	staffID, err := resolveStaffID(ctx, a.session, req.StaffID)
	if err != nil {
		return nil, err
	}
	req.StaffID = staffID

	var out entities.EducationContent
	err = a.client.Do(ctx, clinicapi.Request{
		Operation:  op,
		Method:     method,
		Path:       path,
		Body:       req,
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *EducationContentAdapter) list(ctx context.Context, op, path string, query url.Values) ([]entities.EducationContent, error) {
	var out []entities.EducationContent
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
		out = []entities.EducationContent{}
	}
	return out, nil
}
