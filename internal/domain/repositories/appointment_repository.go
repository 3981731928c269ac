package repositories

import (
	"context"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

// AppointmentRepository defines the appointment operations of the clinic backend
type AppointmentRepository interface {
	// Book creates a new appointment
	Book(ctx context.Context, req entities.BookAppointmentRequest) (*entities.Appointment, error)

	// List retrieves every appointment; degrades to sample data when the
	// fallback policy is enabled
	List(ctx context.Context) ([]entities.Appointment, error)

	// GetByID retrieves an appointment by ID
	GetByID(ctx context.Context, id int64) (*entities.Appointment, error)

	// ListByCustomer retrieves appointments booked by a customer
	ListByCustomer(ctx context.Context, customerID int64) ([]entities.Appointment, error)

	// ListByDoctor retrieves appointments assigned to a doctor
	ListByDoctor(ctx context.Context, doctorID int64) ([]entities.Appointment, error)

	// ListByStatus retrieves appointments in a status
	ListByStatus(ctx context.Context, status entities.AppointmentStatus) ([]entities.Appointment, error)

	// ListByDoctorAndStatus retrieves a doctor's appointments in a status
	ListByDoctorAndStatus(ctx context.Context, doctorID int64, status entities.AppointmentStatus) ([]entities.Appointment, error)

	// UpdateStatus changes an appointment's status
	UpdateStatus(ctx context.Context, id int64, status entities.AppointmentStatus) (*entities.Appointment, error)

	// Cancel moves an appointment to CANCELLED
	Cancel(ctx context.Context, id int64) (*entities.Appointment, error)

	// Delete removes an appointment
	Delete(ctx context.Context, id int64) error
}
