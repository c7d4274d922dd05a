package contract

import (
	"context"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/repository/specification"
)

type MapSpotRepository interface {
	Create(ctx context.Context, spot *entity.MapSpot) error
	Update(ctx context.Context, spot *entity.MapSpot) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MapSpot, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MapSpot, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
