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

// TreatmentPlanAdapter implements the TreatmentPlanRepository interface
type TreatmentPlanAdapter struct {
	client *clinicapi.Client
}

// NewTreatmentPlanAdapter creates a new treatment plan adapter
func NewTreatmentPlanAdapter(client *clinicapi.Client) repositories.TreatmentPlanRepository {
	return &TreatmentPlanAdapter{client: client}
}

// GetByID retrieves a plan by ID
func (a *TreatmentPlanAdapter) GetByID(ctx context.Context, id int64) (*entities.TreatmentPlan, error) {
	var out entities.TreatmentPlan
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Get treatment plan",
		Method:     http.MethodGet,
		Path:       fmt.Sprintf("/treatment-plan/%d", id),
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByMedicalRecord retrieves the plans attached to a record
func (a *TreatmentPlanAdapter) ListByMedicalRecord(ctx context.Context, medicalRecordID int64) ([]entities.TreatmentPlan, error) {
	return a.list(ctx, "Get record treatment plans", fmt.Sprintf("/treatment-plan/medical-record/%d", medicalRecordID))
}

// ListByDoctor retrieves a doctor's plans
func (a *TreatmentPlanAdapter) ListByDoctor(ctx context.Context, doctorID int64) ([]entities.TreatmentPlan, error) {
	return a.list(ctx, "Get doctor treatment plans", fmt.Sprintf("/treatment-plan/doctor/%d", doctorID))
}

// Create starts a new plan; the regimen must be one of the templates
func (a *TreatmentPlanAdapter) Create(ctx context.Context, req entities.TreatmentPlanRequest) (*entities.TreatmentPlan, error) {
	if req.Status == "" {
		req.Status = entities.TreatmentPlanStatusActive
	}
	return a.write(ctx, "Create treatment plan", http.MethodPost, "/treatment-plan", req)
}

// Update replaces a plan's fields
func (a *TreatmentPlanAdapter) Update(ctx context.Context, id int64, req entities.TreatmentPlanRequest) (*entities.TreatmentPlan, error) {
	return a.write(ctx, "Update treatment plan", http.MethodPut, fmt.Sprintf("/treatment-plan/%d", id), req)
}

// UpdateStatus changes a plan's lifecycle status
func (a *TreatmentPlanAdapter) UpdateStatus(ctx context.Context, id int64, status entities.TreatmentPlanStatus) (*entities.TreatmentPlan, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("Trạng thái phác đồ không hợp lệ")
	}

	var out entities.TreatmentPlan
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Update treatment plan status",
		Method:     http.MethodPut,
		Path:       fmt.Sprintf("/treatment-plan/%d/status", id),
		Body:       entities.UpdateTreatmentPlanStatusRequest{Status: status},
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a plan
func (a *TreatmentPlanAdapter) Delete(ctx context.Context, id int64) error {
	return a.client.Do(ctx, clinicapi.Request{
		Operation:  "Delete treatment plan",
		Method:     http.MethodDelete,
		Path:       fmt.Sprintf("/treatment-plan/%d", id),
		Authorized: true,
	}, nil)
}

func (a *TreatmentPlanAdapter) write(ctx context.Context, op, method, path string, req entities.TreatmentPlanRequest) (*entities.TreatmentPlan, error) {
	if err := validateTreatmentPlan(req); err != nil {
		return nil, err
	}

	var out entities.TreatmentPlan
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

func (a *TreatmentPlanAdapter) list(ctx context.Context, op, path string) ([]entities.TreatmentPlan, error) {
	var out []entities.TreatmentPlan
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
		out = []entities.TreatmentPlan{}
	}
	return out, nil
}

func validateTreatmentPlan(req entities.TreatmentPlanRequest) error {
	if req.MedicalRecordID <= 0 {
		return apperrors.NewValidationError("Vui lòng chọn hồ sơ bệnh án")
	}
	if !entities.IsKnownARVRegimen(req.ARVRegimen) {
		return apperrors.NewValidationError("Phác đồ ARV không hợp lệ")
	}
	if req.Status != "" && !req.Status.IsValid() {
		return apperrors.NewValidationError("Trạng thái phác đồ không hợp lệ")
	}
	return nil
}
