package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

// MedicalRecordAdapter implements the MedicalRecordRepository interface
type MedicalRecordAdapter struct {
	client *clinicapi.Client
}

// NewMedicalRecordAdapter creates a new medical record adapter
func NewMedicalRecordAdapter(client *clinicapi.Client) repositories.MedicalRecordRepository {
	return &MedicalRecordAdapter{client: client}
}

// List retrieves every medical record
func (a *MedicalRecordAdapter) List(ctx context.Context) ([]entities.MedicalRecord, error) {
	return a.list(ctx, "Get medical records", "/medical-record")
}

// GetByID retrieves a medical record by ID
func (a *MedicalRecordAdapter) GetByID(ctx context.Context, id int64) (*entities.MedicalRecord, error) {
	var out entities.MedicalRecord
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Get medical record",
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/medical-record/%d", id),
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByCustomer retrieves a patient's records
func (a *MedicalRecordAdapter) ListByCustomer(ctx context.Context, customerID int64) ([]entities.MedicalRecord, error) {
	return a.list(ctx, "Get customer medical records", fmt.Sprintf("/medical-record/customer/%d", customerID))
}

// ListByDoctor retrieves records owned by a doctor
func (a *MedicalRecordAdapter) ListByDoctor(ctx context.Context, doctorID int64) ([]entities.MedicalRecord, error) {
	return a.list(ctx, "Get doctor medical records", fmt.Sprintf("/medical-record/doctor/%d", doctorID))
}

// Create stores a new record
func (a *MedicalRecordAdapter) Create(ctx context.Context, req entities.MedicalRecordRequest) (*entities.MedicalRecord, error) {
	return a.write(ctx, "Create medical record", http.MethodPost, "/medical-record", req)
}

// Update replaces a record's lab values and history
func (a *MedicalRecordAdapter) Update(ctx context.Context, id int64, req entities.MedicalRecordRequest) (*entities.MedicalRecord, error) {
	return a.write(ctx, "Update medical record", http.MethodPut, fmt.Sprintf("/medical-record/%d", id), req)
}

// Delete removes a record
func (a *MedicalRecordAdapter) Delete(ctx context.Context, id int64) error {
	return a.client.Do(ctx, clinicapi.Request{
		Operation:  "Delete medical record",
		Method:     http.MethodDelete,
		Path:       fmt.Sprintf("/medical-record/%d", id),
		Authorized: true,
	}, nil)
}

func (a *MedicalRecordAdapter) write(ctx context.Context, op, method, path string, req entities.MedicalRecordRequest) (*entities.MedicalRecord, error) {
	if err := validateMedicalRecord(req); err != nil {
		return nil, err
	}

	var out entities.MedicalRecord
	err := a.client.Do(ctx, clinicapi.Request{
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

func (a *MedicalRecordAdapter) list(ctx context.Context, op, path string) ([]entities.MedicalRecord, error) {
	var out []entities.MedicalRecord
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
		out = []entities.MedicalRecord{}
	}
	return out, nil
}

func validateMedicalRecord(req entities.MedicalRecordRequest) error {
	if req.CustomerID <= 0 {
		return apperrors.NewValidationError("Vui lòng chọn bệnh nhân")
	}
	if req.CD4Count < 0 {
		return apperrors.NewValidationError("Số lượng CD4 không được âm")
	}
	if req.ViralLoad < 0 {
		return apperrors.NewValidationError("Tải lượng virus không được âm")
	}
	return nil
}
