package mapper

import (
	"time"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/model"

	"gorm.io/gorm"
)

type PetMapper struct{}

func NewPetMapper() *PetMapper {
	return &PetMapper{}
}

func (m *PetMapper) ToEntity(p *model.Pet) *entity.Pet {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Pet{
		Id:          p.Id,
		OwnerId:     p.OwnerId,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Age:         p.Age,
		Gender:      p.Gender,
		Description: p.Description,
		City:        p.City,
		Photos:      append([]string(nil), p.Photos...),
		Tags:        append([]string(nil), p.Tags...),
		Adopted:     p.Adopted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   p.DeletedAt.Valid,
	}
}

func (m *PetMapper) ToModel(p *entity.Pet) *model.Pet {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Pet{
		Id:          p.Id,
		OwnerId:     p.OwnerId,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Age:         p.Age,
		Gender:      p.Gender,
		Description: p.Description,
		City:        p.City,
		Photos:      append([]string(nil), p.Photos...),
		Tags:        append([]string(nil), p.Tags...),
		Adopted:     p.Adopted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}
