package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/repository/specification"
	"petmedia-be/internal/repository/unitofwork"
	"petmedia-be/pkg/database"
	"petmedia-be/pkg/threadid"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestMessagingStorage(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ThreadRepository())
	assert.NotNil(t, uow.MessageRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()
	id, err := threadid.Derive(userA.String(), userB.String())
	assert.NoError(t, err)
	first, second, _ := threadid.Participants(id)

	t.Run("Thread upsert converges", func(t *testing.T) {
		thread := &entity.Thread{
			Id:           id,
			Participants: []string{first, second},
			User1Id:      userA,
			User1Name:    "Integration A",
			User2Id:      userB,
			User2Name:    "Integration B",
			CreatedAt:    time.Now(),
		}

		// Two racing creators write identical content; the second upsert
		// must not fail on the primary key.
		assert.NoError(t, uow.ThreadRepository().Upsert(ctx, thread))
		assert.NoError(t, uow.ThreadRepository().Upsert(ctx, thread))

		found, err := uow.ThreadRepository().FindOne(ctx, specification.ThreadByID{ID: id})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "Integration A", found.User1Name)
		}
	})

	t.Run("Message round trip with read state", func(t *testing.T) {
		msg := &entity.Message{
			Id:        uuid.New(),
			ThreadId:  id,
			SenderId:  userA,
			Text:      "integration hello",
			ReadBy:    []string{userA.String()},
			CreatedAt: time.Now(),
		}
		assert.NoError(t, uow.MessageRepository().Create(ctx, msg))

		msg.ReadBy = append(msg.ReadBy, userB.String())
		assert.NoError(t, uow.MessageRepository().UpdateReadBy(ctx, msg))

		found, err := uow.MessageRepository().FindOne(ctx, specification.ByID{ID: msg.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.ElementsMatch(t, []string{userA.String(), userB.String()}, found.ReadBy)
			assert.Equal(t, "integration hello", found.Text)
		}
	})

	t.Run("Missing thread returns nil", func(t *testing.T) {
		found, err := uow.ThreadRepository().FindOne(ctx, specification.ThreadByID{ID: "does_not-exist"})
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
