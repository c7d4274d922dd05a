package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	City        string    `json:"city"`
	Bio         string    `json:"bio"`
	Favorites   []string  `json:"favorites"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	City        string `json:"city"`
	Bio         string `json:"bio"`
}

type FavoriteRequest struct {
	PetId uuid.UUID `json:"pet_id" validate:"required"`
}
