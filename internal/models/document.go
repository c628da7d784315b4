package models

type Document struct {
	BaseModel
	BusinessProfileID string       `gorm:"type:uuid;not null;index" json:"business_profile_id"`
	Name              string       `gorm:"not null" json:"name"`
	FileURL           string       `gorm:"not null" json:"file_url"`
	FileType          string       `json:"file_type"`
	DocumentType      DocumentType `gorm:"not null" json:"document_type"`
	Description       string       `json:"description,omitempty"`
	IsConfidential    bool         `gorm:"default:false" json:"is_confidential"`
	Version           int          `gorm:"default:1" json:"version"`
}
