package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Pet struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Species     string    `gorm:"type:varchar(50);not null;index"`
	Breed       string    `gorm:"type:varchar(100)"`
	Age         int       `gorm:"default:0"`
	Gender      string    `gorm:"type:varchar(20)"`
	Description string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(100)"`
	Photos      datatypes.JSONSlice[string] `gorm:"not null"`
	Tags        datatypes.JSONSlice[string]
	Adopted     bool           `gorm:"default:false"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Pet) TableName() string {
	return "pets"
}
