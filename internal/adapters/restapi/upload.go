package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/repositories"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

// UploadAdapter implements the UploadRepository interface over multipart
// form posts. The file owner is implied by the bearer token.
type UploadAdapter struct {
	client *clinicapi.Client
}

// NewUploadAdapter creates a new upload adapter
func NewUploadAdapter(client *clinicapi.Client) repositories.UploadRepository {
	return &UploadAdapter{client: client}
}

// UploadAvatar uploads the signed-in user's avatar
func (a *UploadAdapter) UploadAvatar(ctx context.Context, file entities.FileUpload) (*entities.UploadedFile, error) {
	return a.upload(ctx, "Upload avatar", "/upload/avatar", "avatar", file, nil)
}

// UploadDocument uploads a document of the given type
func (a *UploadAdapter) UploadDocument(ctx context.Context, file entities.FileUpload, fileType entities.FileType) (*entities.UploadedFile, error) {
	if fileType == "" {
		fileType = entities.FileTypeDocument
	}
	return a.upload(ctx, "Upload document", "/upload/document", "document", file, map[string]string{"type": string(fileType)})
}

// UploadMedicalRecordFile attaches a file to a medical record
func (a *UploadAdapter) UploadMedicalRecordFile(ctx context.Context, medicalRecordID int64, file entities.FileUpload) (*entities.UploadedFile, error) {
	if medicalRecordID <= 0 {
		return nil, apperrors.NewValidationError("Vui lòng chọn hồ sơ bệnh án")
	}
	return a.upload(ctx, "Upload medical record file", fmt.Sprintf("/upload/medical-record/%d", medicalRecordID), "file", file, nil)
}

// ListMine lists the signed-in user's files
func (a *UploadAdapter) ListMine(ctx context.Context) ([]entities.UploadedFile, error) {
	var out []entities.UploadedFile
	err := a.client.Do(ctx, clinicapi.Request{
		Operation:  "Get files",
		Method:     http.MethodGet,
		Path:       "/upload/files",
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.UploadedFile{}
	}
	return out, nil
}

// Download fetches a file body
func (a *UploadAdapter) Download(ctx context.Context, fileID string) (*entities.Blob, error) {
	if strings.TrimSpace(fileID) == "" {
		return nil, apperrors.NewValidationError("Thiếu mã tệp")
	}
	blob, err := a.client.Download(ctx, clinicapi.Request{
		Operation:  "Download file",
		Method:     http.MethodGet,
		Path:       "/upload/files/" + url.PathEscape(fileID),
		Authorized: true,
	})
	if err != nil {
		return nil, err
	}
	if blob.FileName == "" {
		blob.FileName = fileID
	}
	return blob, nil
}

// Delete removes a file
func (a *UploadAdapter) Delete(ctx context.Context, fileID string) error {
	if strings.TrimSpace(fileID) == "" {
		return apperrors.NewValidationError("Thiếu mã tệp")
	}
	return a.client.Do(ctx, clinicapi.Request{
		Operation:  "Delete file",
		Method:     http.MethodDelete,
		Path:       "/upload/files/" + url.PathEscape(fileID),
		Authorized: true,
	}, nil)
}

func (a *UploadAdapter) upload(ctx context.Context, op, path, field string, file entities.FileUpload, fields map[string]string) (*entities.UploadedFile, error) {
	if file.Content == nil {
		return nil, apperrors.NewValidationError("Vui lòng chọn tệp")
	}

	var out entities.UploadedFile
	err := a.client.Do(ctx, clinicapi.Request{
		Operation: op,
		Method:    http.MethodPost,
		Path:      path,
		Form: &clinicapi.MultipartForm{
			Fields: fields,
			Files:  []clinicapi.FilePart{{Field: field, FileName: file.FileName, Content: file.Content}},
		},
		Authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
