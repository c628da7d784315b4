package dto

import (
	"encoding/json"
	"time"

	"venturenest_backend/internal/models"
)

// ---------------- Requests ----------------

type CreateBusinessProfileRequest struct {
	CompanyName  string            `json:"company_name" validate:"required,max=150"`
	Description  string            `json:"description" validate:"omitempty,max=5000"`
	LogoURL      string            `json:"logo_url" validate:"omitempty,url"`
	IndustryTags []string          `json:"industry_tags" validate:"omitempty,dive,max=50"`
	WebsiteURL   string            `json:"website_url" validate:"omitempty,url"`
	SocialMedia  map[string]string `json:"social_media"`
}

type UpdateBusinessProfileRequest struct {
	CompanyName  *string           `json:"company_name,omitempty" validate:"omitempty,max=150"`
	Description  *string           `json:"description,omitempty" validate:"omitempty,max=5000"`
	LogoURL      *string           `json:"logo_url,omitempty" validate:"omitempty,url"`
	IndustryTags []string          `json:"industry_tags,omitempty" validate:"omitempty,dive,max=50"`
	WebsiteURL   *string           `json:"website_url,omitempty" validate:"omitempty,url"`
	SocialMedia  map[string]string `json:"social_media,omitempty"`
}

// ---------------- Responses ----------------

type BusinessProfileResponse struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	CompanyName  string            `json:"company_name"`
	Description  string            `json:"description"`
	LogoURL      string            `json:"logo_url,omitempty"`
	IndustryTags []string          `json:"industry_tags"`
	WebsiteURL   string            `json:"website_url,omitempty"`
	SocialMedia  map[string]string `json:"social_media"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type UploadLogoResponse struct {
	LogoURL string `json:"logo_url"`
}

func NewBusinessProfileResponse(profile *models.BusinessProfile) *BusinessProfileResponse {
	resp := &BusinessProfileResponse{
		ID:           profile.ID,
		UserID:       profile.UserID,
		CompanyName:  profile.CompanyName,
		Description:  profile.Description,
		LogoURL:      profile.LogoURL,
		IndustryTags: profile.IndustryTags,
		WebsiteURL:   profile.WebsiteURL,
		SocialMedia:  map[string]string{},
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}

	if len(profile.SocialMedia) > 0 {
		// Ignore malformed rows; the links are cosmetic.
		_ = json.Unmarshal(profile.SocialMedia, &resp.SocialMedia)
	}

	return resp
}
