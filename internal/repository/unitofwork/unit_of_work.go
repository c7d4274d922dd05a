package unitofwork

import (
	"context"

	"petmedia-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ThreadRepository() contract.ThreadRepository
	MessageRepository() contract.MessageRepository
	PetRepository() contract.PetRepository
	MapSpotRepository() contract.MapSpotRepository
}
