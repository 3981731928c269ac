package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
)

const (
	DefaultSearchDebounce = 500 * time.Millisecond
	DefaultPageSize       = 10

	staffTitle = "Quản lý nhân viên"
)

// StaffPagination is the local paging state of the staff list
type StaffPagination struct {
	Current  int
	PageSize int
	Total    int
}

// StaffFilters select which backend query a load runs. At most one is
// applied, in order: Search, Gender, Active.
type StaffFilters struct {
	Search string
	Gender entities.Gender
	Active *bool
}

// StaffState is a snapshot of the staff management screen
type StaffState struct {
	List       []entities.Staff
	Loading    bool
	Pagination StaffPagination
	Filters    StaffFilters
	Stats      entities.StaffStats
}

// StaffManagementService owns the staff list, its filters and paging, and
// runs staff mutations with user notifications.
type StaffManagementService struct {
	repo     repositories.StaffRepository
	notifier providers.Notifier
	debounce time.Duration

	mu       sync.Mutex
	state    StaffState
	loads    loadGuard
	mutating int
	timer    *time.Timer
	baseCtx  context.Context
	stop     context.CancelFunc
	closed   bool
}

// NewStaffManagementService creates the service. Zero debounce or page
// size select the defaults.
func NewStaffManagementService(repo repositories.StaffRepository, notifier providers.Notifier, debounce time.Duration, pageSize int) *StaffManagementService {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	baseCtx, stop := context.WithCancel(context.Background())
	return &StaffManagementService{
		repo:     repo,
		notifier: notifierOrNop(notifier),
		debounce: debounce,
		state: StaffState{
			List:       []entities.Staff{},
			Pagination: StaffPagination{Current: 1, PageSize: pageSize},
		},
		baseCtx: baseCtx,
		stop:    stop,
	}
}

// State returns a copy of the current state
func (s *StaffManagementService) State() StaffState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *StaffManagementService) snapshot() StaffState {
	st := s.state
	st.List = append([]entities.Staff(nil), s.state.List...)
	if s.state.Filters.Active != nil {
		active := *s.state.Filters.Active
		st.Filters.Active = &active
	}
	return st
}

// Load fetches the staff list for the current filters. A load started
// while another is in flight cancels it; the older one returns
// ErrLoadSuperseded and leaves the state alone.
func (s *StaffManagementService) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrServiceClosed
	}
	loadCtx, gen := s.loads.begin(ctx)
	s.state.Loading = true
	filters := s.state.Filters
	s.mu.Unlock()

	list, err := s.fetch(loadCtx, filters)

	s.mu.Lock()
	if !s.loads.finish(gen) {
		s.mu.Unlock()
		return ErrLoadSuperseded
	}
	s.state.Loading = s.mutating > 0
	if err != nil {
		s.mu.Unlock()
		notifyError(ctx, s.notifier, staffTitle, "Không thể tải danh sách nhân viên", err)
		return err
	}
	s.state.List = list
	s.state.Stats = entities.ComputeStaffStats(list)
	s.state.Pagination.Total = len(list)
	s.clampPage()
	s.mu.Unlock()
	return nil
}

func (s *StaffManagementService) fetch(ctx context.Context, f StaffFilters) ([]entities.Staff, error) {
	switch {
	case strings.TrimSpace(f.Search) != "":
		return s.repo.SearchByName(ctx, strings.TrimSpace(f.Search))
	case f.Gender != "":
		return s.repo.ListByGender(ctx, f.Gender)
	case f.Active != nil:
		return s.repo.ListByActive(ctx, *f.Active)
	default:
		return s.repo.List(ctx)
	}
}

// SetSearch records the search text and schedules a load once typing
// pauses. Each call restarts the delay, so a burst of calls issues one
// query with the last text.
func (s *StaffManagementService) SetSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.state.Filters.Search = text
	s.state.Pagination.Current = 1
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		_ = s.Load(s.baseCtx)
	})
}

// SetGender filters by gender and reloads. An empty gender clears it.
func (s *StaffManagementService) SetGender(ctx context.Context, gender entities.Gender) error {
	s.mu.Lock()
	s.state.Filters.Gender = gender
	s.state.Pagination.Current = 1
	s.mu.Unlock()
	return s.Load(ctx)
}

// SetActive filters by the active flag and reloads. nil clears it.
func (s *StaffManagementService) SetActive(ctx context.Context, active *bool) error {
	s.mu.Lock()
	if active != nil {
		v := *active
		active = &v
	}
	s.state.Filters.Active = active
	s.state.Pagination.Current = 1
	s.mu.Unlock()
	return s.Load(ctx)
}

// ApplyFilters replaces every filter at once and loads without waiting
// for the search debounce
func (s *StaffManagementService) ApplyFilters(ctx context.Context, filters StaffFilters) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if filters.Active != nil {
		v := *filters.Active
		filters.Active = &v
	}
	s.state.Filters = filters
	s.state.Pagination.Current = 1
	s.mu.Unlock()
	return s.Load(ctx)
}

// ClearFilters drops every filter, cancels a pending search and reloads
func (s *StaffManagementService) ClearFilters(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.state.Filters = StaffFilters{}
	s.state.Pagination.Current = 1
	s.mu.Unlock()
	return s.Load(ctx)
}

// SetPage changes the local page. size <= 0 keeps the current size.
func (s *StaffManagementService) SetPage(current, size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size > 0 {
		s.state.Pagination.PageSize = size
	}
	if current < 1 {
		current = 1
	}
	s.state.Pagination.Current = current
	s.clampPage()
}

// Page returns the staff on the current page
func (s *StaffManagementService) Page() []entities.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.state.Pagination
	start := (p.Current - 1) * p.PageSize
	if start >= len(s.state.List) {
		return []entities.Staff{}
	}
	end := start + p.PageSize
	if end > len(s.state.List) {
		end = len(s.state.List)
	}
	return append([]entities.Staff(nil), s.state.List[start:end]...)
}

func (s *StaffManagementService) clampPage() {
	p := &s.state.Pagination
	pages := (p.Total + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		pages = 1
	}
	if p.Current > pages {
		p.Current = pages
	}
	if p.Current < 1 {
		p.Current = 1
	}
}

// Create adds a staff member (account first, then record). It reloads and
// returns true on success; on failure the list is left as it was.
func (s *StaffManagementService) Create(ctx context.Context, req entities.StaffRequest) bool {
	return s.mutate(ctx, "Thêm nhân viên thành công", "Không thể thêm nhân viên", func() error {
		_, err := s.repo.Create(ctx, req)
		return err
	})
}

// Update edits a staff member
func (s *StaffManagementService) Update(ctx context.Context, id int64, req entities.StaffRequest) bool {
	return s.mutate(ctx, "Cập nhật nhân viên thành công", "Không thể cập nhật nhân viên", func() error {
		_, err := s.repo.Update(ctx, id, req)
		return err
	})
}

// Delete removes a staff member
func (s *StaffManagementService) Delete(ctx context.Context, id int64) bool {
	return s.mutate(ctx, "Xóa nhân viên thành công", "Không thể xóa nhân viên", func() error {
		return s.repo.Delete(ctx, id)
	})
}

// mutate runs call with Loading held. Loading only drops once no load or
// other mutation is still running.
func (s *StaffManagementService) mutate(ctx context.Context, success, failure string, call func() error) bool {
	s.mu.Lock()
	s.mutating++
	s.state.Loading = true
	s.mu.Unlock()

	err := call()

	s.mu.Lock()
	s.mutating--
	s.state.Loading = s.mutating > 0 || s.loads.inFlight()
	s.mu.Unlock()

	if err != nil {
		notifyError(ctx, s.notifier, staffTitle, failure, err)
		return false
	}

	notifySuccess(ctx, s.notifier, staffTitle, success)
	_ = s.Load(ctx)
	return true
}

// Close stops the pending search and cancels any load in flight
func (s *StaffManagementService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.loads.stop()
	s.stop()
	s.state.Loading = false
}
