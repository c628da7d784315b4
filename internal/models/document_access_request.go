package models

import "time"

// DocumentAccessRequest tracks an investor's request to view a confidential
// document. At most one pending request may exist per (document, investor)
// pair; the partial unique index backs the service-level duplicate check.
type DocumentAccessRequest struct {
	BaseModel
	DocumentID  string              `gorm:"type:uuid;not null;index:idx_access_requests_pending,unique,where:status = 'pending'" json:"document_id"`
	InvestorID  string              `gorm:"type:uuid;not null;index:idx_access_requests_pending,unique,where:status = 'pending'" json:"investor_id"`
	Status      AccessRequestStatus `gorm:"not null;default:'pending'" json:"status"`
	RequestedAt time.Time           `gorm:"not null" json:"requested_at"`
	RespondedAt *time.Time          `json:"responded_at,omitempty"`

	Document *Document `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
}
