package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"petmedia-be/internal/config"
	"petmedia-be/internal/dto"
	"petmedia-be/internal/entity"
	"petmedia-be/internal/pkg/apperrors"
	"petmedia-be/pkg/threadid"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newMessagingFixture() (*fakeUowFactory, *fakeLiveSync, IMessagingService) {
	factory := newFakeUowFactory()
	liveSync := &fakeLiveSync{}
	cfg := &config.Config{Auth: config.AuthConfig{MaxMessageSize: 1000}}
	svc := NewMessagingService(factory, liveSync, nil, cfg, nopLogger{})
	return factory, liveSync, svc
}

func addUser(factory *fakeUowFactory, name string) uuid.UUID {
	id := uuid.New()
	factory.uow.users.users[id] = &entity.User{
		Id:          id,
		Email:       strings.ToLower(name) + "@example.com",
		DisplayName: name,
		AvatarURL:   "https://example.com/" + strings.ToLower(name) + ".jpg",
		CreatedAt:   time.Now(),
	}
	return id
}

func TestGetOrCreateThreadCreatesWithSnapshot(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")

	thread, err := svc.GetOrCreateThread(context.Background(), alice, bob)
	assert.NoError(t, err)

	wantId, _ := threadid.Derive(alice.String(), bob.String())
	assert.Equal(t, wantId, thread.Id)
	assert.Equal(t, alice, thread.User1Id)
	assert.Equal(t, "Alice", thread.User1Name)
	assert.Equal(t, bob, thread.User2Id)
	assert.Equal(t, "Bob", thread.User2Name)
	assert.Nil(t, thread.LastMessage)
	assert.Nil(t, thread.LastMessageAt)

	first, second, ok := threadid.Participants(wantId)
	assert.True(t, ok)
	assert.Equal(t, []string{first, second}, thread.Participants)
}

func TestGetOrCreateThreadIsIdempotent(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")

	t1, err := svc.GetOrCreateThread(context.Background(), alice, bob)
	assert.NoError(t, err)

	// Caller order swapped; must resolve to the same thread.
	t2, err := svc.GetOrCreateThread(context.Background(), bob, alice)
	assert.NoError(t, err)

	assert.Equal(t, t1.Id, t2.Id)
	assert.Equal(t, 1, factory.uow.threads.upserts)
}

func TestGetOrCreateThreadRejectsSelf(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")

	_, err := svc.GetOrCreateThread(context.Background(), alice, alice)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestGetOrCreateThreadPlaceholderWhenProfileMissing(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	ghost := uuid.New() // no profile row

	thread, err := svc.GetOrCreateThread(context.Background(), alice, ghost)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", thread.User1Name)
	assert.Equal(t, fallbackDisplayName, thread.User2Name)
}

func TestGetOrCreateThreadRepairsMissingSnapshot(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")

	id, _ := threadid.Derive(alice.String(), bob.String())
	first, second, _ := threadid.Participants(id)
	factory.uow.threads.threads[id] = &entity.Thread{
		Id:           id,
		Participants: []string{first, second},
		User1Id:      alice,
		User1Name:    "Alice",
		User2Id:      bob,
		User2Name:    "", // created before Bob completed his profile
		CreatedAt:    time.Now(),
	}

	thread, err := svc.GetOrCreateThread(context.Background(), alice, bob)
	assert.NoError(t, err)
	assert.Equal(t, "Bob", thread.User2Name)

	stored := factory.uow.threads.threads[id]
	assert.Equal(t, "Bob", stored.User2Name)
}

func TestSendMessageValidation(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")
	thread, _ := svc.GetOrCreateThread(context.Background(), alice, bob)

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \n\t "},
		{name: "too long", text: strings.Repeat("x", 1001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SendMessage(context.Background(), alice, thread.Id, &dto.SendMessageRequest{Text: tt.text})
			assert.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}

	// Exactly at the limit passes.
	_, err := svc.SendMessage(context.Background(), alice, thread.Id, &dto.SendMessageRequest{Text: strings.Repeat("y", 1000)})
	assert.NoError(t, err)
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")
	eve := addUser(factory, "Eve")
	thread, _ := svc.GetOrCreateThread(context.Background(), alice, bob)

	_, err := svc.SendMessage(context.Background(), eve, thread.Id, &dto.SendMessageRequest{Text: "hi"})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestSendMessageUnknownThread(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")

	_, err := svc.SendMessage(context.Background(), alice, "nope_nope", &dto.SendMessageRequest{Text: "hi"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSendMessageUpdatesThreadAndNotifies(t *testing.T) {
	factory, liveSync, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")
	thread, _ := svc.GetOrCreateThread(context.Background(), alice, bob)

	msg, err := svc.SendMessage(context.Background(), alice, thread.Id, &dto.SendMessageRequest{Text: "  hello bob  "})
	assert.NoError(t, err)
	assert.Equal(t, "hello bob", msg.Text) // trimmed
	assert.Equal(t, []string{alice.String()}, msg.ReadBy)

	stored := factory.uow.threads.threads[thread.Id]
	assert.NotNil(t, stored.LastMessage)
	assert.Equal(t, "hello bob", *stored.LastMessage)
	assert.NotNil(t, stored.LastMessageAt)

	assert.Contains(t, liveSync.threadsChanged, thread.Id)
}

func TestListThreadMessagesSortedOldestFirst(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")
	thread, _ := svc.GetOrCreateThread(context.Background(), alice, bob)

	base := time.Now()
	for i, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		id := uuid.New()
		factory.uow.messages.messages[id] = &entity.Message{
			Id:        id,
			ThreadId:  thread.Id,
			SenderId:  alice,
			Text:      strings.Repeat("m", i+1),
			ReadBy:    []string{alice.String()},
			CreatedAt: base.Add(offset),
		}
	}

	messages, err := svc.ListThreadMessages(context.Background(), bob, thread.Id)
	assert.NoError(t, err)
	assert.Len(t, messages, 3)
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt))
	}
}

func TestListUserThreadsOrderedByActivity(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")
	carol := addUser(factory, "Carol")

	oldThread, _ := svc.GetOrCreateThread(context.Background(), alice, bob)
	newThread, _ := svc.GetOrCreateThread(context.Background(), alice, carol)

	// Old thread got a recent message; it must outrank the newer,
	// message-less thread which only has its creation time.
	recent := time.Now().Add(time.Hour)
	stored := factory.uow.threads.threads[oldThread.Id]
	stored.LastMessageAt = &recent

	threads, err := svc.ListUserThreads(context.Background(), alice)
	assert.NoError(t, err)
	assert.Len(t, threads, 2)
	assert.Equal(t, oldThread.Id, threads[0].Id)
	assert.Equal(t, newThread.Id, threads[1].Id)
}

func TestMarkReadCoversWholeThread(t *testing.T) {
	factory, liveSync, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")
	thread, _ := svc.GetOrCreateThread(context.Background(), alice, bob)

	first, _ := svc.SendMessage(context.Background(), alice, thread.Id, &dto.SendMessageRequest{Text: "hello"})
	second, _ := svc.SendMessage(context.Background(), alice, thread.Id, &dto.SendMessageRequest{Text: "anyone there?"})

	res, err := svc.MarkRead(context.Background(), bob, thread.Id)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.UpdatedCount)

	// Every message in the thread now carries the reader.
	for _, id := range []uuid.UUID{first.Id, second.Id} {
		stored := factory.uow.messages.messages[id]
		assert.ElementsMatch(t, []string{alice.String(), bob.String()}, stored.ReadBy)
	}

	assert.Contains(t, liveSync.threadsChanged, thread.Id)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")
	thread, _ := svc.GetOrCreateThread(context.Background(), alice, bob)

	msg, _ := svc.SendMessage(context.Background(), alice, thread.Id, &dto.SendMessageRequest{Text: "hello"})

	res, err := svc.MarkRead(context.Background(), bob, thread.Id)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.UpdatedCount)

	// Repeat call finds nothing unread and touches nothing.
	res, err = svc.MarkRead(context.Background(), bob, thread.Id)
	assert.NoError(t, err)
	assert.Equal(t, 0, res.UpdatedCount)

	stored := factory.uow.messages.messages[msg.Id]
	assert.ElementsMatch(t, []string{alice.String(), bob.String()}, stored.ReadBy)
}

func TestGetThreadAccessControl(t *testing.T) {
	factory, _, svc := newMessagingFixture()
	alice := addUser(factory, "Alice")
	bob := addUser(factory, "Bob")
	eve := addUser(factory, "Eve")
	thread, _ := svc.GetOrCreateThread(context.Background(), alice, bob)

	got, err := svc.GetThread(context.Background(), bob, thread.Id)
	assert.NoError(t, err)
	assert.Equal(t, thread.Id, got.Id)

	_, err = svc.GetThread(context.Background(), eve, thread.Id)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	_, err = svc.GetThread(context.Background(), alice, "missing_thread")
	assert.True(t, apperrors.IsNotFound(err))
}
