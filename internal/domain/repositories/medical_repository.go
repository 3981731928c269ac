package repositories

import (
	"context"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

// MedicalRecordRepository defines medical record operations
type MedicalRecordRepository interface {
	List(ctx context.Context) ([]entities.MedicalRecord, error)
	GetByID(ctx context.Context, id int64) (*entities.MedicalRecord, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]entities.MedicalRecord, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]entities.MedicalRecord, error)
	Create(ctx context.Context, req entities.MedicalRecordRequest) (*entities.MedicalRecord, error)
	Update(ctx context.Context, id int64, req entities.MedicalRecordRequest) (*entities.MedicalRecord, error)
	Delete(ctx context.Context, id int64) error
}

// TreatmentPlanRepository defines treatment plan operations
type TreatmentPlanRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.TreatmentPlan, error)
	ListByMedicalRecord(ctx context.Context, medicalRecordID int64) ([]entities.TreatmentPlan, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]entities.TreatmentPlan, error)
	Create(ctx context.Context, req entities.TreatmentPlanRequest) (*entities.TreatmentPlan, error)
	Update(ctx context.Context, id int64, req entities.TreatmentPlanRequest) (*entities.TreatmentPlan, error)
	UpdateStatus(ctx context.Context, id int64, status entities.TreatmentPlanStatus) (*entities.TreatmentPlan, error)
	Delete(ctx context.Context, id int64) error
}

// UploadRepository defines file operations
type UploadRepository interface {
	UploadAvatar(ctx context.Context, file entities.FileUpload) (*entities.UploadedFile, error)
	UploadDocument(ctx context.Context, file entities.FileUpload, fileType entities.FileType) (*entities.UploadedFile, error)
	UploadMedicalRecordFile(ctx context.Context, medicalRecordID int64, file entities.FileUpload) (*entities.UploadedFile, error)
	ListMine(ctx context.Context) ([]entities.UploadedFile, error)
	Download(ctx context.Context, fileID string) (*entities.Blob, error)
	Delete(ctx context.Context, fileID string) error
}
