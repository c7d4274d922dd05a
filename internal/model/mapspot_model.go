package model

import (
	"time"

	"github.com/google/uuid"
)

type MapSpot struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatorId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Type              string    `gorm:"type:varchar(20);not null"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Note              string    `gorm:"type:text"`
	Latitude          float64   `gorm:"not null"`
	Longitude         float64   `gorm:"not null"`
	PhotoURL          string    `gorm:"type:text"`
	ContributorsCount int       `gorm:"default:1"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	LastUpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (MapSpot) TableName() string {
	return "map_spots"
}
