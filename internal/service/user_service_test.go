package service

import (
	"context"
	"testing"
	"time"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListUsersExcludesSelfAndSortsByName(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewUserService(factory)

	me := addUser(factory, "Zoe")
	addUser(factory, "bob")
	addUser(factory, "Alice")
	addUser(factory, "Carol")

	users, err := svc.ListUsers(context.Background(), me)
	assert.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, "Alice", users[0].DisplayName)
	assert.Equal(t, "bob", users[1].DisplayName) // case-insensitive ordering
	assert.Equal(t, "Carol", users[2].DisplayName)
}

func TestFavoritesAddIsIdempotent(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewUserService(factory)

	me := addUser(factory, "Alice")
	petId := uuid.New()
	factory.uow.pets.pets[petId] = &entity.Pet{
		Id:        petId,
		OwnerId:   uuid.New(),
		Name:      "Pamuk",
		Species:   "cat",
		Photos:    []string{"p.jpg"},
		CreatedAt: time.Now(),
	}

	favorites, err := svc.AddFavorite(context.Background(), me, petId)
	assert.NoError(t, err)
	assert.Equal(t, []string{petId.String()}, favorites)

	favorites, err = svc.AddFavorite(context.Background(), me, petId)
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestAddFavoriteUnknownPet(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewUserService(factory)
	me := addUser(factory, "Alice")

	_, err := svc.AddFavorite(context.Background(), me, uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRemoveFavorite(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewUserService(factory)

	me := addUser(factory, "Alice")
	petId := uuid.New()
	factory.uow.users.users[me].Favorites = []string{petId.String(), "other"}

	favorites, err := svc.RemoveFavorite(context.Background(), me, petId)
	assert.NoError(t, err)
	assert.Equal(t, []string{"other"}, favorites)

	// Removing again is a no-op.
	favorites, err = svc.RemoveFavorite(context.Background(), me, petId)
	assert.NoError(t, err)
	assert.Equal(t, []string{"other"}, favorites)
}
