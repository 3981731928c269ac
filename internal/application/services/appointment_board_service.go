package services

import (
	"context"
	"sync"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

const appointmentTitle = "Lịch hẹn"

// AppointmentFilter narrows the board. Zero values mean "any".
type AppointmentFilter struct {
	DoctorID int64
	Status   entities.AppointmentStatus
}

// AppointmentBoard is a snapshot of the appointment board
type AppointmentBoard struct {
	Appointments []entities.Appointment
	Summary      entities.AppointmentSummary
	Filter       AppointmentFilter
	Loading      bool
}

// AppointmentBoardService backs the staff and doctor appointment screens
type AppointmentBoardService struct {
	repo     repositories.AppointmentRepository
	notifier providers.Notifier

	mu    sync.Mutex
	board AppointmentBoard
	loads loadGuard
}

// NewAppointmentBoardService creates the service
func NewAppointmentBoardService(repo repositories.AppointmentRepository, notifier providers.Notifier) *AppointmentBoardService {
	return &AppointmentBoardService{
		repo:     repo,
		notifier: notifierOrNop(notifier),
		board: AppointmentBoard{
			Appointments: []entities.Appointment{},
			Summary:      entities.SummarizeAppointments(nil),
		},
	}
}

// Board returns a copy of the current board
func (s *AppointmentBoardService) Board() AppointmentBoard {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.board
	b.Appointments = append([]entities.Appointment(nil), s.board.Appointments...)
	b.Summary.ByStatus = make(map[entities.AppointmentStatus]int, len(s.board.Summary.ByStatus))
	for k, v := range s.board.Summary.ByStatus {
		b.Summary.ByStatus[k] = v
	}
	return b
}

// SetFilter replaces the filter and reloads
func (s *AppointmentBoardService) SetFilter(ctx context.Context, filter AppointmentFilter) error {
	s.mu.Lock()
	s.board.Filter = filter
	s.mu.Unlock()
	return s.Load(ctx)
}

// Load fetches appointments for the current filter
func (s *AppointmentBoardService) Load(ctx context.Context) error {
	s.mu.Lock()
	loadCtx, gen := s.loads.begin(ctx)
	s.board.Loading = true
	filter := s.board.Filter
	s.mu.Unlock()

	list, err := s.fetch(loadCtx, filter)

	s.mu.Lock()
	if !s.loads.finish(gen) {
		s.mu.Unlock()
		return ErrLoadSuperseded
	}
	s.board.Loading = false
	if err != nil {
		s.mu.Unlock()
		notifyError(ctx, s.notifier, appointmentTitle, "Không thể tải danh sách lịch hẹn", err)
		return err
	}
	s.board.Appointments = list
	s.board.Summary = entities.SummarizeAppointments(list)
	s.mu.Unlock()
	return nil
}

func (s *AppointmentBoardService) fetch(ctx context.Context, f AppointmentFilter) ([]entities.Appointment, error) {
	switch {
	case f.DoctorID > 0 && f.Status != "":
		return s.repo.ListByDoctorAndStatus(ctx, f.DoctorID, f.Status)
	case f.DoctorID > 0:
		return s.repo.ListByDoctor(ctx, f.DoctorID)
	case f.Status != "":
		return s.repo.ListByStatus(ctx, f.Status)
	default:
		return s.repo.List(ctx)
	}
}

// Book creates an appointment and reloads on success
func (s *AppointmentBoardService) Book(ctx context.Context, req entities.BookAppointmentRequest) bool {
	if _, err := s.repo.Book(ctx, req); err != nil {
		notifyError(ctx, s.notifier, appointmentTitle, "Đặt lịch hẹn thất bại", err)
		return false
	}
	notifySuccess(ctx, s.notifier, appointmentTitle, "Đặt lịch hẹn thành công")
	_ = s.Load(ctx)
	return true
}

// UpdateStatus moves an appointment to status. Appointments that are
// already cancelled, completed or missed cannot change.
func (s *AppointmentBoardService) UpdateStatus(ctx context.Context, id int64, status entities.AppointmentStatus) bool {
	if err := s.checkTransition(ctx, id); err != nil {
		notifyError(ctx, s.notifier, appointmentTitle, "Không thể cập nhật trạng thái", err)
		return false
	}
	if _, err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		notifyError(ctx, s.notifier, appointmentTitle, "Không thể cập nhật trạng thái", err)
		return false
	}
	notifySuccess(ctx, s.notifier, appointmentTitle, "Cập nhật trạng thái thành công")
	_ = s.Load(ctx)
	return true
}

// Cancel cancels an appointment
func (s *AppointmentBoardService) Cancel(ctx context.Context, id int64) bool {
	if err := s.checkTransition(ctx, id); err != nil {
		notifyError(ctx, s.notifier, appointmentTitle, "Không thể hủy lịch hẹn", err)
		return false
	}
	if _, err := s.repo.Cancel(ctx, id); err != nil {
		notifyError(ctx, s.notifier, appointmentTitle, "Không thể hủy lịch hẹn", err)
		return false
	}
	notifySuccess(ctx, s.notifier, appointmentTitle, "Đã hủy lịch hẹn")
	_ = s.Load(ctx)
	return true
}

// checkTransition reads the appointment's current status from the backend
// and rejects terminal statuses. The loaded board may hold sample rows.
func (s *AppointmentBoardService) checkTransition(ctx context.Context, id int64) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.Status.IsTerminal() {
		return apperrors.NewValidationError("Lịch hẹn đã kết thúc, không thể thay đổi trạng thái")
	}
	return nil
}
