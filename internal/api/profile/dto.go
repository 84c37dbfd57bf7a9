package profile

import (
	"mime/multipart"
	"time"
)

type ProfileResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	Bio         string `json:"bio" validate:"omitempty,max=500"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,min=8"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type UpdateAvatarRequest struct {
	AvatarFile *multipart.FileHeader `validate:"required"`
	X          int
	Y          int
	Width      int
	Height     int
	Rotate     int
	Zoom       float64
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
