package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	DisplayName  string
	AvatarURL    string
	City         string
	Bio          string
	Favorites    []string // pet ids the user marked as favorite
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}
