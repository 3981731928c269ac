package entities

import (
	"io"
)

// FileType classifies uploads
type FileType string

const (
	FileTypeAvatar        FileType = "avatar"
	FileTypeDocument      FileType = "document"
	FileTypeMedicalRecord FileType = "medical_record"
)

// UploadedFile describes a stored file. The owner is implied by the token.
type UploadedFile struct {
	FileID     string   `json:"fileId"`
	FileName   string   `json:"fileName,omitempty"`
	URL        string   `json:"url,omitempty"`
	Type       FileType `json:"type,omitempty"`
	Size       int64    `json:"size,omitempty"`
	UploadedAt string   `json:"uploadedAt,omitempty"`
}

// FileUpload is a file handle to send as a multipart part
type FileUpload struct {
	FileName string
	Content  io.Reader
}

// Blob is a downloaded file body
type Blob struct {
	FileName    string
	ContentType string
	Data        []byte
}
