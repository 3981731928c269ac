package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

// Datetime layouts accepted when booking
var appointmentDatetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// AppointmentAdapter implements the AppointmentRepository interface
type AppointmentAdapter struct {
	client   *clinicapi.Client
	fallback *FallbackPolicy
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(client *clinicapi.Client, fallback *FallbackPolicy) repositories.AppointmentRepository {
	return &AppointmentAdapter{client: client, fallback: fallback}
}

// Book creates a new appointment
func (a *AppointmentAdapter) Book(ctx context.Context, req entities.BookAppointmentRequest) (*entities.Appointment, error) {
	if err := validateBooking(req); err != nil {
		return nil, err
	}

	var out entities.Appointment
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Book appointment",
		Method:     http.MethodPost,
		Path:       "/appointment/book",
		Body:       req,
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List retrieves every appointment
func (a *AppointmentAdapter) List(ctx context.Context) ([]entities.Appointment, error) {
	return withFallback(ctx, a.fallback, "Get appointments", func() ([]entities.Appointment, error) {
		return a.list(ctx, "Get appointments", "/appointment/getAllAppointment")
	}, sampleAppointments)
}

// GetByID retrieves an appointment by ID
func (a *AppointmentAdapter) GetByID(ctx context.Context, id int64) (*entities.Appointment, error) {
	var out entities.Appointment
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Get appointment",
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/appointment/%d", id),
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByCustomer retrieves appointments booked by a customer
func (a *AppointmentAdapter) ListByCustomer(ctx context.Context, customerID int64) ([]entities.Appointment, error) {
	return a.list(ctx, "Get customer appointments", fmt.Sprintf("/appointment/customer/%d", customerID))
}

// ListByDoctor retrieves appointments assigned to a doctor
func (a *AppointmentAdapter) ListByDoctor(ctx context.Context, doctorID int64) ([]entities.Appointment, error) {
	return a.list(ctx, "Get doctor appointments", fmt.Sprintf("/appointment/doctor/%d", doctorID))
}

// ListByStatus retrieves appointments in a status
func (a *AppointmentAdapter) ListByStatus(ctx context.Context, status entities.AppointmentStatus) ([]entities.Appointment, error) {
	return a.list(ctx, "Get appointments by status", "/appointment/status/"+url.PathEscape(string(status)))
}

// ListByDoctorAndStatus retrieves a doctor's appointments in a status
func (a *AppointmentAdapter) ListByDoctorAndStatus(ctx context.Context, doctorID int64, status entities.AppointmentStatus) ([]entities.Appointment, error) {
	path := fmt.Sprintf("/appointment/doctor/%d/status/%s", doctorID, url.PathEscape(string(status)))
	return a.list(ctx, "Get doctor appointments by status", path)
}

// UpdateStatus changes an appointment's status
func (a *AppointmentAdapter) UpdateStatus(ctx context.Context, id int64, status entities.AppointmentStatus) (*entities.Appointment, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("Trạng thái lịch hẹn không hợp lệ")
	}
	return a.updateStatus(ctx, "Update appointment status", id, status)
}

// Cancel moves an appointment to CANCELLED
func (a *AppointmentAdapter) Cancel(ctx context.Context, id int64) (*entities.Appointment, error) {
	return a.updateStatus(ctx, "Cancel appointment", id, entities.AppointmentStatusCancelled)
}

// Delete removes an appointment
func (a *AppointmentAdapter) Delete(ctx context.Context, id int64) error {
	return a.client.Do(ctx, clinicapi.Request{
		Operation:  "Delete appointment",
		Method:     http.MethodDelete,
		Path:       fmt.Sprintf("/appointment/%d", id),
		Authorized: true,
	}, nil)
}

func (a *AppointmentAdapter) updateStatus(ctx context.Context, op string, id int64, status entities.AppointmentStatus) (*entities.Appointment, error) {
	var out entities.Appointment
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  op,
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/appointment/%d/status", id),
		Body:       entities.UpdateAppointmentStatusRequest{Status: status},
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AppointmentAdapter) list(ctx context.Context, op, path string) ([]entities.Appointment, error) {
	var out []entities.Appointment
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  op,
		Method:     http.MethodGet,
		Path:       path,
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Appointment{}
	}
	return out, nil
}

func validateBooking(req entities.BookAppointmentRequest) error {
	if req.CustomerID <= 0 {
		return apperrors.NewValidationError("Vui lòng chọn bệnh nhân")
	}
	if req.DoctorID <= 0 {
		return apperrors.NewValidationError("Vui lòng chọn bác sĩ")
	}
	if strings.TrimSpace(string(req.Type)) == "" {
		return apperrors.NewValidationError("Vui lòng chọn hình thức khám")
	}
	if _, ok := parseDatetime(req.Datetime); !ok {
		return apperrors.NewValidationError("Thời gian hẹn không hợp lệ")
	}
	return nil
}

func parseDatetime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range appointmentDatetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
