package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Thread rows use the derived pair id as primary key, so the "one thread
// per unordered pair" invariant is enforced by the table itself. No soft
// delete: threads are never deleted in normal operation.
type Thread struct {
	Id            string                      `gorm:"type:varchar(80);primaryKey"`
	Participants  datatypes.JSONSlice[string] `gorm:"not null"`
	User1Id       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	User1Name     string                      `gorm:"type:varchar(255)"`
	User1Photo    string                      `gorm:"type:text"`
	User2Id       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	User2Name     string                      `gorm:"type:varchar(255)"`
	User2Photo    string                      `gorm:"type:text"`
	LastMessage   *string                     `gorm:"type:text"`
	LastMessageAt *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Thread) TableName() string {
	return "threads"
}
