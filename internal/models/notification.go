package models

type Notification struct {
	BaseModel
	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string `gorm:"not null" json:"type"` // "listing_view", "document_access_request", ...
	Title     string `gorm:"not null" json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `gorm:"default:false" json:"is_read"`
	RelatedID string `json:"related_id,omitempty"` // listing, document or request id
}
