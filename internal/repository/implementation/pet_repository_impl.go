package implementation

import (
	"context"
	"errors"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/mapper"
	"petmedia-be/internal/model"
	"petmedia-be/internal/repository/contract"
	"petmedia-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PetMapper
}

func NewPetRepository(db *gorm.DB) contract.PetRepository {
	return &PetRepositoryImpl{
		db:     db,
		mapper: mapper.NewPetMapper(),
	}
}

func (r *PetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PetRepositoryImpl) Create(ctx context.Context, pet *entity.Pet) error {
	m := r.mapper.ToModel(pet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pet = *r.mapper.ToEntity(m)
	return nil
}

func (r *PetRepositoryImpl) Update(ctx context.Context, pet *entity.Pet) error {
	m := r.mapper.ToModel(pet)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*pet = *r.mapper.ToEntity(m)
	return nil
}

func (r *PetRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Pet{}, id).Error
}

func (r *PetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pet, error) {
	var m model.Pet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pet, error) {
	var models []*model.Pet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Pet, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Pet{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
