package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePetRequest struct {
	Name        string   `json:"name" validate:"required"`
	Species     string   `json:"species" validate:"required"`
	Breed       string   `json:"breed"`
	Age         int      `json:"age" validate:"gte=0"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=male female unknown"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Photos      []string `json:"photos" validate:"required,min=1"`
	Tags        []string `json:"tags"`
}

type UpdatePetRequest struct {
	Name        string   `json:"name"`
	Breed       string   `json:"breed"`
	Age         *int     `json:"age" validate:"omitempty,gte=0"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Photos      []string `json:"photos"`
	Tags        []string `json:"tags"`
	Adopted     *bool    `json:"adopted"`
}

type PetListRequest struct {
	Species string `query:"species"`
	Owner   string `query:"owner"`
}

type PetResponse struct {
	Id          uuid.UUID  `json:"id"`
	OwnerId     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Species     string     `json:"species"`
	Breed       string     `json:"breed"`
	Age         int        `json:"age"`
	Gender      string     `json:"gender"`
	Description string     `json:"description"`
	City        string     `json:"city"`
	Photos      []string   `json:"photos"`
	Tags        []string   `json:"tags"`
	Adopted     bool       `json:"adopted"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
