package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
)

const dashboardTitle = "Tổng quan"

// DashboardSnapshot is everything the admin overview shows. A section that
// failed to load is nil.
type DashboardSnapshot struct {
	Stats      *entities.DashboardStats
	Activities []entities.Activity
	Overview   *entities.SystemOverview
	LoadedAt   time.Time
}

// DashboardService loads the admin overview
type DashboardService struct {
	repo     repositories.DashboardRepository
	notifier providers.Notifier
	now      func() time.Time
}

// NewDashboardService creates the service
func NewDashboardService(repo repositories.DashboardRepository, notifier providers.Notifier) *DashboardService {
	return &DashboardService{
		repo:     repo,
		notifier: notifierOrNop(notifier),
		now:      time.Now,
	}
}

// Load fetches the three dashboard sections concurrently. Each section
// succeeds or fails on its own; the snapshot holds whatever loaded and the
// error joins the failures.
func (s *DashboardService) Load(ctx context.Context, activityLimit int) (*DashboardSnapshot, error) {
	snap := &DashboardSnapshot{}

	var wg sync.WaitGroup
	var statsErr, activityErr, overviewErr error
	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Stats, statsErr = s.repo.Stats(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Activities, activityErr = s.repo.RecentActivities(ctx, activityLimit)
	}()
	go func() {
		defer wg.Done()
		snap.Overview, overviewErr = s.repo.SystemOverview(ctx)
	}()
	wg.Wait()

	snap.LoadedAt = s.now()
	err := errors.Join(statsErr, activityErr, overviewErr)
	if err != nil {
		notifyError(ctx, s.notifier, dashboardTitle, "Không thể tải dữ liệu tổng quan", err)
	}
	return snap, err
}
