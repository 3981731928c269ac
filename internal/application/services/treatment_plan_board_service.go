package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/pkg/display"
)

const treatmentPlanTitle = "Phác đồ điều trị"

// TreatmentPlanRow is one plan with its medical record and lab grading.
// Record is nil when the record could not be fetched.
type TreatmentPlanRow struct {
	Plan      entities.TreatmentPlan
	Record    *entities.MedicalRecord
	RecordErr error
	Status    display.Label
	CD4       display.Label
	ViralLoad display.Label
	StartedOn string
}

// TreatmentPlanBoardService lists a doctor's treatment plans together with
// the medical record each plan belongs to.
type TreatmentPlanBoardService struct {
	plans    repositories.TreatmentPlanRepository
	records  repositories.MedicalRecordRepository
	notifier providers.Notifier
	wait     time.Duration
}

// NewTreatmentPlanBoardService creates the service
func NewTreatmentPlanBoardService(plans repositories.TreatmentPlanRepository, records repositories.MedicalRecordRepository, notifier providers.Notifier) *TreatmentPlanBoardService {
	return &TreatmentPlanBoardService{
		plans:    plans,
		records:  records,
		notifier: notifierOrNop(notifier),
		wait:     5 * time.Millisecond,
	}
}

// newRecordLoader builds a loader scoped to one board load. Keys requested
// more than once in that load are fetched once; nothing is cached across
// loads.
func (s *TreatmentPlanBoardService) newRecordLoader() *dataloader.Loader[int64, *entities.MedicalRecord] {
	return dataloader.NewBatchedLoader(func(ctx context.Context, keys []int64) []*dataloader.Result[*entities.MedicalRecord] {
		results := make([]*dataloader.Result[*entities.MedicalRecord], len(keys))

		var wg sync.WaitGroup
		for i, key := range keys {
			wg.Add(1)
			go func(i int, id int64) {
				defer wg.Done()
				record, err := s.records.GetByID(ctx, id)
				switch {
				case err != nil:
					results[i] = &dataloader.Result[*entities.MedicalRecord]{Error: err}
				case record == nil:
					results[i] = &dataloader.Result[*entities.MedicalRecord]{Error: fmt.Errorf("medical record %d not found", id)}
				default:
					results[i] = &dataloader.Result[*entities.MedicalRecord]{Data: record}
				}
			}(i, key)
		}
		wg.Wait()
		return results
	}, dataloader.WithWait[int64, *entities.MedicalRecord](s.wait))
}

// LoadForDoctor lists a doctor's plans. A plan whose record fails to load
// is still returned, with RecordErr set.
func (s *TreatmentPlanBoardService) LoadForDoctor(ctx context.Context, doctorID int64) ([]TreatmentPlanRow, error) {
	plans, err := s.plans.ListByDoctor(ctx, doctorID)
	if err != nil {
		notifyError(ctx, s.notifier, treatmentPlanTitle, "Không thể tải phác đồ điều trị", err)
		return nil, err
	}
	return s.rows(ctx, plans), nil
}

// LoadForRecord lists the plans attached to one medical record
func (s *TreatmentPlanBoardService) LoadForRecord(ctx context.Context, medicalRecordID int64) ([]TreatmentPlanRow, error) {
	plans, err := s.plans.ListByMedicalRecord(ctx, medicalRecordID)
	if err != nil {
		notifyError(ctx, s.notifier, treatmentPlanTitle, "Không thể tải phác đồ điều trị", err)
		return nil, err
	}
	return s.rows(ctx, plans), nil
}

func (s *TreatmentPlanBoardService) rows(ctx context.Context, plans []entities.TreatmentPlan) []TreatmentPlanRow {
	loader := s.newRecordLoader()

	thunks := make([]dataloader.Thunk[*entities.MedicalRecord], len(plans))
	for i, p := range plans {
		thunks[i] = loader.Load(ctx, p.MedicalRecordID)
	}

	rows := make([]TreatmentPlanRow, len(plans))
	for i, p := range plans {
		row := TreatmentPlanRow{
			Plan:      p,
			Status:    display.TreatmentPlanStatusLabel(p.Status),
			StartedOn: display.FormatDate(p.StartDate),
		}
		record, err := thunks[i]()
		if err != nil {
			row.RecordErr = err
		} else {
			row.Record = record
			row.CD4 = display.ClassifyCD4(record.CD4Count)
			row.ViralLoad = display.ClassifyViralLoad(record.ViralLoad)
		}
		rows[i] = row
	}
	return rows
}

// Create starts a plan
func (s *TreatmentPlanBoardService) Create(ctx context.Context, req entities.TreatmentPlanRequest) bool {
	if _, err := s.plans.Create(ctx, req); err != nil {
		notifyError(ctx, s.notifier, treatmentPlanTitle, "Không thể tạo phác đồ", err)
		return false
	}
	notifySuccess(ctx, s.notifier, treatmentPlanTitle, "Tạo phác đồ thành công")
	return true
}

// UpdateStatus changes a plan's status
func (s *TreatmentPlanBoardService) UpdateStatus(ctx context.Context, id int64, status entities.TreatmentPlanStatus) bool {
	if _, err := s.plans.UpdateStatus(ctx, id, status); err != nil {
		notifyError(ctx, s.notifier, treatmentPlanTitle, "Không thể cập nhật trạng thái phác đồ", err)
		return false
	}
	notifySuccess(ctx, s.notifier, treatmentPlanTitle, "Cập nhật trạng thái phác đồ thành công")
	return true
}
