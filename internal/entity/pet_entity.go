package entity

import (
	"time"

	"github.com/google/uuid"
)

type Pet struct {
	Id          uuid.UUID
	OwnerId     uuid.UUID
	Name        string
	Species     string
	Breed       string
	Age         int
	Gender      string
	Description string
	City        string
	Photos      []string
	Tags        []string
	Adopted     bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
