package contract

import (
	"context"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/repository/specification"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// UpdateReadBy persists read-state growth only; message content is
	// immutable after creation.
	UpdateReadBy(ctx context.Context, message *entity.Message) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
