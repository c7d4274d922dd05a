package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Message is append-only: rows are created on send and only read_by is ever
// updated afterwards. thread_id carries a plain index; listing queries are
// equality-only and ordering happens client-side.
type Message struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ThreadId  string                      `gorm:"type:varchar(80);not null;index"`
	SenderId  uuid.UUID                   `gorm:"type:uuid;not null"`
	Text      string                      `gorm:"type:text;not null"`
	ReadBy    datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt time.Time                   `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
