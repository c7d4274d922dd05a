package unitofwork

import "context"

// RepositoryFactory hands out fresh units of work. Services hold the
// factory, never a *gorm.DB directly.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
