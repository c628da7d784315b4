package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type BusinessProfile struct {
	BaseModel
	UserID       string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName  string         `gorm:"not null" json:"company_name"`
	Description  string         `json:"description"`
	LogoURL      string         `json:"logo_url,omitempty"`
	IndustryTags pq.StringArray `gorm:"type:text[]" json:"industry_tags"`
	WebsiteURL   string         `json:"website_url,omitempty"`
	SocialMedia  datatypes.JSON `gorm:"type:jsonb" json:"social_media"` // {"linkedin": "...", "twitter": "..."}
}
