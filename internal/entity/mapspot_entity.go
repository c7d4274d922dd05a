package entity

import (
	"time"

	"github.com/google/uuid"
)

// MapSpot spot types.
const (
	SpotTypeFood       = "food"
	SpotTypeWater      = "water"
	SpotTypeBoth       = "both"
	SpotTypeVeterinary = "veterinary"
	SpotTypeShelter    = "shelter"
)

// MapSpot is a community resource point (food/water/shelter) on the map.
type MapSpot struct {
	Id                uuid.UUID
	CreatorId         uuid.UUID
	Type              string
	Title             string
	Note              string
	Latitude          float64
	Longitude         float64
	PhotoURL          string
	ContributorsCount int
	CreatedAt         time.Time
	LastUpdatedAt     time.Time
}
