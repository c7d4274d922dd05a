package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMapSpotRequest struct {
	Type      string  `json:"type" validate:"required,oneof=food water both veterinary shelter"`
	Title     string  `json:"title" validate:"required"`
	Note      string  `json:"note"`
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	PhotoURL  string  `json:"photo_url"`
}

type MapSpotResponse struct {
	Id                uuid.UUID `json:"id"`
	CreatorId         uuid.UUID `json:"creator_id"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Note              string    `json:"note"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	PhotoURL          string    `json:"photo_url"`
	ContributorsCount int       `json:"contributors_count"`
	CreatedAt         time.Time `json:"created_at"`
	LastUpdatedAt     time.Time `json:"last_updated_at"`
}
