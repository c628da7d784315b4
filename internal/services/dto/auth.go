package dto

import (
	"time"

	"venturenest_backend/internal/models"
)

// ---------------- Requests ----------------

type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required,max=100"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	IsEntrepreneur bool   `json:"is_entrepreneur"`
	IsInvestor     bool   `json:"is_investor"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// ---------------- Responses ----------------

type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	IsEntrepreneur bool      `json:"is_entrepreneur"`
	IsInvestor     bool      `json:"is_investor"`
	CreatedAt      time.Time `json:"created_at"`
}

type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		AvatarURL:      user.AvatarURL,
		Phone:          user.Phone,
		IsEntrepreneur: user.IsEntrepreneur,
		IsInvestor:     user.IsInvestor,
		CreatedAt:      user.CreatedAt,
	}
}
