package restapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
)

// DefaultActivityLimit is used when RecentActivities is called with limit <= 0
const DefaultActivityLimit = 10

// DashboardAdapter implements the DashboardRepository interface. All three
// reads go through the fallback policy independently.
type DashboardAdapter struct {
	client   *clinicapi.Client
	fallback *FallbackPolicy
}

// NewDashboardAdapter creates a new dashboard adapter
func NewDashboardAdapter(client *clinicapi.Client, fallback *FallbackPolicy) repositories.DashboardRepository {
	return &DashboardAdapter{client: client, fallback: fallback}
}

// Stats retrieves the admin counters
func (a *DashboardAdapter) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	return withFallback(ctx, a.fallback, "Get dashboard stats", func() (*entities.DashboardStats, error) {
		var out entities.DashboardStats
		if err := a.get(ctx, "Get dashboard stats", "/admin/dashboard/stats", nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}, sampleDashboardStats)
}

// RecentActivities retrieves the latest activity feed entries
func (a *DashboardAdapter) RecentActivities(ctx context.Context, limit int) ([]entities.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	return withFallback(ctx, a.fallback, "Get recent activities", func() ([]entities.Activity, error) {
		var out []entities.Activity
		query := url.Values{"limit": {strconv.Itoa(limit)}}
		if err := a.get(ctx, "Get recent activities", "/admin/dashboard/recent-activities", query, &out); err != nil {
			return nil, err
		}
		if out == nil {
			out = []entities.Activity{}
		}
		return out, nil
	}, func() []entities.Activity {
		sample := sampleActivities()
		if len(sample) > limit {
			sample = sample[:limit]
		}
		return sample
	})
}

// SystemOverview retrieves backend health
func (a *DashboardAdapter) SystemOverview(ctx context.Context) (*entities.SystemOverview, error) {
	return withFallback(ctx, a.fallback, "Get system overview", func() (*entities.SystemOverview, error) {
		var out entities.SystemOverview
		if err := a.get(ctx, "Get system overview", "/admin/dashboard/system-overview", nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}, sampleSystemOverview)
}

func (a *DashboardAdapter) get(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	return a.client.Do(ctx, clinicapi.Request{
		Operation:  op,
		Method:     http.MethodGet,
		Path:       path,
		Query:      query,
		Authorized: true,
	}, out)
}
