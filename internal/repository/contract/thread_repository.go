package contract

import (
	"context"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/repository/specification"
)

type ThreadRepository interface {
	// Upsert creates the thread or, when a concurrent caller already created
	// the same pair id, overwrites it with identical content (last writer
	// wins; content is idempotent per pair).
	Upsert(ctx context.Context, thread *entity.Thread) error
	Update(ctx context.Context, thread *entity.Thread) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Thread, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Thread, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
