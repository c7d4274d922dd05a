package implementation

import (
	"context"
	"errors"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/mapper"
	"petmedia-be/internal/model"
	"petmedia-be/internal/repository/contract"
	"petmedia-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MapSpotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MapSpotMapper
}

func NewMapSpotRepository(db *gorm.DB) contract.MapSpotRepository {
	return &MapSpotRepositoryImpl{
		db:     db,
		mapper: mapper.NewMapSpotMapper(),
	}
}

func (r *MapSpotRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MapSpotRepositoryImpl) Create(ctx context.Context, spot *entity.MapSpot) error {
	m := r.mapper.ToModel(spot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*spot = *r.mapper.ToEntity(m)
	return nil
}

func (r *MapSpotRepositoryImpl) Update(ctx context.Context, spot *entity.MapSpot) error {
	m := r.mapper.ToModel(spot)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*spot = *r.mapper.ToEntity(m)
	return nil
}

func (r *MapSpotRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MapSpot, error) {
	var m model.MapSpot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MapSpotRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MapSpot, error) {
	var models []*model.MapSpot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MapSpot, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *MapSpotRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MapSpot{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
