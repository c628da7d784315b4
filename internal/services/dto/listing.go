package dto

import (
	"time"

	"venturenest_backend/internal/models"
)

// ---------------- Requests ----------------

// CreateListingRequest carries either an asking price (full-company sale)
// or an equity percentage, selected by is_full_company. The service
// enforces the exclusivity.
type CreateListingRequest struct {
	Title            string   `json:"title" validate:"required,max=150"`
	Description      string   `json:"description" validate:"omitempty,max=5000"`
	AskingPrice      *float64 `json:"asking_price,omitempty" validate:"omitempty,gt=0"`
	EquityPercentage *float64 `json:"equity_percentage,omitempty" validate:"omitempty,gt=0,lte=100"`
	IsFullCompany    bool     `json:"is_full_company"`
}

type UpdateListingRequest struct {
	Title            *string  `json:"title,omitempty" validate:"omitempty,max=150"`
	Description      *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	AskingPrice      *float64 `json:"asking_price,omitempty" validate:"omitempty,gt=0"`
	EquityPercentage *float64 `json:"equity_percentage,omitempty" validate:"omitempty,gt=0,lte=100"`
}

// ---------------- Responses ----------------

type ListingResponse struct {
	ID                string               `json:"id"`
	BusinessProfileID string               `json:"business_profile_id"`
	Title             string               `json:"title"`
	Description       string               `json:"description"`
	AskingPrice       *float64             `json:"asking_price,omitempty"`
	EquityPercentage  *float64             `json:"equity_percentage,omitempty"`
	IsFullCompany     bool                 `json:"is_full_company"`
	Status            models.ListingStatus `json:"status"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

type ListingListResponse struct {
	Listings []*ListingResponse `json:"listings"`
	Total    int64              `json:"total"`
}

func NewListingResponse(listing *models.CompanyListing) *ListingResponse {
	return &ListingResponse{
		ID:                listing.ID,
		BusinessProfileID: listing.BusinessProfileID,
		Title:             listing.Title,
		Description:       listing.Description,
		AskingPrice:       listing.AskingPrice,
		EquityPercentage:  listing.EquityPercentage,
		IsFullCompany:     listing.IsFullCompany,
		Status:            listing.Status,
		CreatedAt:         listing.CreatedAt,
		UpdatedAt:         listing.UpdatedAt,
	}
}
