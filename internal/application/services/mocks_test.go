package services_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
)

// Mocks

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) staff(args mock.Arguments) ([]entities.Staff, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Staff), args.Error(1)
}

func (m *MockStaffRepository) List(ctx context.Context) ([]entities.Staff, error) {
	return m.staff(m.Called(ctx))
}

func (m *MockStaffRepository) GetByID(ctx context.Context, id int64) (*entities.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Staff), args.Error(1)
}

func (m *MockStaffRepository) Create(ctx context.Context, req entities.StaffRequest) (*entities.Staff, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Staff), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, id int64, req entities.StaffRequest) (*entities.Staff, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Staff), args.Error(1)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStaffRepository) SearchByName(ctx context.Context, name string) ([]entities.Staff, error) {
	return m.staff(m.Called(ctx, name))
}

func (m *MockStaffRepository) ListByGender(ctx context.Context, gender entities.Gender) ([]entities.Staff, error) {
	return m.staff(m.Called(ctx, gender))
}

func (m *MockStaffRepository) ListByActive(ctx context.Context, active bool) ([]entities.Staff, error) {
	return m.staff(m.Called(ctx, active))
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) appointments(args mock.Arguments) ([]entities.Appointment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) appointment(args mock.Arguments) (*entities.Appointment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Book(ctx context.Context, req entities.BookAppointmentRequest) (*entities.Appointment, error) {
	return m.appointment(m.Called(ctx, req))
}

func (m *MockAppointmentRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	return m.appointments(m.Called(ctx))
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id int64) (*entities.Appointment, error) {
	return m.appointment(m.Called(ctx, id))
}

func (m *MockAppointmentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]entities.Appointment, error) {
	return m.appointments(m.Called(ctx, customerID))
}

func (m *MockAppointmentRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]entities.Appointment, error) {
	return m.appointments(m.Called(ctx, doctorID))
}

func (m *MockAppointmentRepository) ListByStatus(ctx context.Context, status entities.AppointmentStatus) ([]entities.Appointment, error) {
	return m.appointments(m.Called(ctx, status))
}

func (m *MockAppointmentRepository) ListByDoctorAndStatus(ctx context.Context, doctorID int64, status entities.AppointmentStatus) ([]entities.Appointment, error) {
	return m.appointments(m.Called(ctx, doctorID, status))
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id int64, status entities.AppointmentStatus) (*entities.Appointment, error) {
	return m.appointment(m.Called(ctx, id, status))
}

func (m *MockAppointmentRepository) Cancel(ctx context.Context, id int64) (*entities.Appointment, error) {
	return m.appointment(m.Called(ctx, id))
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DashboardStats), args.Error(1)
}

func (m *MockDashboardRepository) RecentActivities(ctx context.Context, limit int) ([]entities.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Activity), args.Error(1)
}

func (m *MockDashboardRepository) SystemOverview(ctx context.Context) (*entities.SystemOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SystemOverview), args.Error(1)
}

type MockTreatmentPlanRepository struct {
	mock.Mock
}

func (m *MockTreatmentPlanRepository) plan(args mock.Arguments) (*entities.TreatmentPlan, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TreatmentPlan), args.Error(1)
}

func (m *MockTreatmentPlanRepository) plans(args mock.Arguments) ([]entities.TreatmentPlan, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TreatmentPlan), args.Error(1)
}

func (m *MockTreatmentPlanRepository) GetByID(ctx context.Context, id int64) (*entities.TreatmentPlan, error) {
	return m.plan(m.Called(ctx, id))
}

func (m *MockTreatmentPlanRepository) ListByMedicalRecord(ctx context.Context, medicalRecordID int64) ([]entities.TreatmentPlan, error) {
	return m.plans(m.Called(ctx, medicalRecordID))
}

func (m *MockTreatmentPlanRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]entities.TreatmentPlan, error) {
	return m.plans(m.Called(ctx, doctorID))
}

func (m *MockTreatmentPlanRepository) Create(ctx context.Context, req entities.TreatmentPlanRequest) (*entities.TreatmentPlan, error) {
	return m.plan(m.Called(ctx, req))
}

func (m *MockTreatmentPlanRepository) Update(ctx context.Context, id int64, req entities.TreatmentPlanRequest) (*entities.TreatmentPlan, error) {
	return m.plan(m.Called(ctx, id, req))
}

func (m *MockTreatmentPlanRepository) UpdateStatus(ctx context.Context, id int64, status entities.TreatmentPlanStatus) (*entities.TreatmentPlan, error) {
	return m.plan(m.Called(ctx, id, status))
}

func (m *MockTreatmentPlanRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMedicalRecordRepository struct {
	mock.Mock
}

func (m *MockMedicalRecordRepository) record(args mock.Arguments) (*entities.MedicalRecord, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) records(args mock.Arguments) ([]entities.MedicalRecord, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) List(ctx context.Context) ([]entities.MedicalRecord, error) {
	return m.records(m.Called(ctx))
}

func (m *MockMedicalRecordRepository) GetByID(ctx context.Context, id int64) (*entities.MedicalRecord, error) {
	return m.record(m.Called(ctx, id))
}

func (m *MockMedicalRecordRepository) ListByCustomer(ctx context.Context, customerID int64) ([]entities.MedicalRecord, error) {
	return m.records(m.Called(ctx, customerID))
}

func (m *MockMedicalRecordRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]entities.MedicalRecord, error) {
	return m.records(m.Called(ctx, doctorID))
}

func (m *MockMedicalRecordRepository) Create(ctx context.Context, req entities.MedicalRecordRequest) (*entities.MedicalRecord, error) {
	return m.record(m.Called(ctx, req))
}

func (m *MockMedicalRecordRepository) Update(ctx context.Context, id int64, req entities.MedicalRecordRequest) (*entities.MedicalRecord, error) {
	return m.record(m.Called(ctx, id, req))
}

func (m *MockMedicalRecordRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// recordingNotifier keeps every notification for assertions
type recordingNotifier struct {
	mu    sync.Mutex
	notes []providers.Notification
}

func (r *recordingNotifier) Notify(ctx context.Context, n providers.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recordingNotifier) all() []providers.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]providers.Notification(nil), r.notes...)
}

func (r *recordingNotifier) last() providers.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return providers.Notification{}
	}
	return r.notes[len(r.notes)-1]
}
