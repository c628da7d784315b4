package dto

import (
	"time"

	"venturenest_backend/internal/models"
)

// ---------------- Requests ----------------

type CreateAccessRequestRequest struct {
	DocumentID string `json:"document_id" validate:"required,uuid"`
}

type RespondAccessRequestRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// ---------------- Responses ----------------

type AccessRequestResponse struct {
	ID          string                     `json:"id"`
	DocumentID  string                     `json:"document_id"`
	InvestorID  string                     `json:"investor_id"`
	Status      models.AccessRequestStatus `json:"status"`
	RequestedAt time.Time                  `json:"requested_at"`
	RespondedAt *time.Time                 `json:"responded_at,omitempty"`
	Document    *DocumentResponse          `json:"document,omitempty"`
}

type AccessRequestListResponse struct {
	Requests []*AccessRequestResponse `json:"requests"`
	Total    int                      `json:"total"`
}

func NewAccessRequestResponse(request *models.DocumentAccessRequest) *AccessRequestResponse {
	resp := &AccessRequestResponse{
		ID:          request.ID,
		DocumentID:  request.DocumentID,
		InvestorID:  request.InvestorID,
		Status:      request.Status,
		RequestedAt: request.RequestedAt,
		RespondedAt: request.RespondedAt,
	}

	if request.Document != nil {
		resp.Document = NewDocumentResponse(request.Document)
	}

	return resp
}
