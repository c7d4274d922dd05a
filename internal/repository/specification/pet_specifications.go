package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByOwner filters pets by owner
type ByOwner struct {
	OwnerID uuid.UUID
}

func (s ByOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

// BySpecies filters pets by species
type BySpecies struct {
	Species string
}

func (s BySpecies) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("species = ?", s.Species)
}

// ByCreator filters map spots by creator
type ByCreator struct {
	CreatorID uuid.UUID
}

func (s ByCreator) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("creator_id = ?", s.CreatorID)
}
