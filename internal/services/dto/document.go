package dto

import (
	"time"

	"venturenest_backend/internal/models"
)

// ---------------- Requests ----------------

// UploadDocumentRequest is bound from the multipart form accompanying the
// file part.
type UploadDocumentRequest struct {
	Name           string `form:"name" validate:"required,max=150"`
	DocumentType   string `form:"document_type" validate:"required,document_type"`
	Description    string `form:"description" validate:"omitempty,max=2000"`
	IsConfidential bool   `form:"is_confidential"`
}

type UpdateDocumentRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,max=150"`
	DocumentType   *string `json:"document_type,omitempty" validate:"omitempty,document_type"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	IsConfidential *bool   `json:"is_confidential,omitempty"`
}

// ---------------- Responses ----------------

type DocumentResponse struct {
	ID                string              `json:"id"`
	BusinessProfileID string              `json:"business_profile_id"`
	Name              string              `json:"name"`
	FileURL           string              `json:"file_url"`
	FileType          string              `json:"file_type"`
	DocumentType      models.DocumentType `json:"document_type"`
	Description       string              `json:"description,omitempty"`
	IsConfidential    bool                `json:"is_confidential"`
	Version           int                 `json:"version"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type DocumentDownloadResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewDocumentResponse(document *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:                document.ID,
		BusinessProfileID: document.BusinessProfileID,
		Name:              document.Name,
		FileURL:           document.FileURL,
		FileType:          document.FileType,
		DocumentType:      document.DocumentType,
		Description:       document.Description,
		IsConfidential:    document.IsConfidential,
		Version:           document.Version,
		CreatedAt:         document.CreatedAt,
		UpdatedAt:         document.UpdatedAt,
	}
}
