package models

type User struct {
	BaseModel
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string `gorm:"not null" json:"-"`
	FullName       string `json:"full_name"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	Phone          string `json:"phone,omitempty"`
	IsEntrepreneur bool   `gorm:"default:false" json:"is_entrepreneur"`
	IsInvestor     bool   `gorm:"default:false" json:"is_investor"`
}
