package models

type CompanyListing struct {
	BaseModel
	BusinessProfileID string        `gorm:"type:uuid;not null;index" json:"business_profile_id"`
	Title             string        `gorm:"not null" json:"title"`
	Description       string        `json:"description"`
	AskingPrice       *float64      `json:"asking_price,omitempty"`      // set when IsFullCompany
	EquityPercentage  *float64      `json:"equity_percentage,omitempty"` // set when !IsFullCompany
	IsFullCompany     bool          `gorm:"default:false" json:"is_full_company"`
	Status            ListingStatus `gorm:"not null;default:'draft'" json:"status"`
}
