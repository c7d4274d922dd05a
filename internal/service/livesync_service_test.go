package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"petmedia-be/internal/dto"
	"petmedia-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func waitForSnapshot[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		panic("unreachable")
	}
}

func TestSubscribeThreadMessagesDeliversInitialSnapshot(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewLiveSyncService(factory, nopLogger{})
	defer svc.Close()

	threadId := "aaa_bbb"
	msgId := uuid.New()
	factory.uow.messages.messages[msgId] = &entity.Message{
		Id:        msgId,
		ThreadId:  threadId,
		SenderId:  uuid.New(),
		Text:      "first",
		ReadBy:    []string{},
		CreatedAt: time.Now(),
	}

	snapshots := make(chan []*dto.MessageResponse, 4)
	stop, err := svc.SubscribeThreadMessages(context.Background(), threadId,
		func(messages []*dto.MessageResponse) { snapshots <- messages },
		func(err error) { t.Errorf("unexpected error: %v", err) },
	)
	assert.NoError(t, err)
	defer stop()

	snap := waitForSnapshot(t, snapshots)
	assert.Len(t, snap, 1)
	assert.Equal(t, "first", snap[0].Text)
}

func TestSubscribeThreadMessagesPushesOnChange(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewLiveSyncService(factory, nopLogger{})
	defer svc.Close()

	threadId := "aaa_bbb"
	snapshots := make(chan []*dto.MessageResponse, 4)
	stop, err := svc.SubscribeThreadMessages(context.Background(), threadId,
		func(messages []*dto.MessageResponse) { snapshots <- messages },
		func(err error) { t.Errorf("unexpected error: %v", err) },
	)
	assert.NoError(t, err)
	defer stop()

	// Initial snapshot is empty.
	snap := waitForSnapshot(t, snapshots)
	assert.Empty(t, snap)

	// Mutate and signal; the full state must be re-delivered.
	msgId := uuid.New()
	factory.uow.messages.messages[msgId] = &entity.Message{
		Id:        msgId,
		ThreadId:  threadId,
		SenderId:  uuid.New(),
		Text:      "after change",
		ReadBy:    []string{},
		CreatedAt: time.Now(),
	}
	svc.NotifyThreadChanged(threadId)

	snap = waitForSnapshot(t, snapshots)
	assert.Len(t, snap, 1)
	assert.Equal(t, "after change", snap[0].Text)
}

func TestSubscribeThreadMessagesIgnoresOtherThreads(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewLiveSyncService(factory, nopLogger{})
	defer svc.Close()

	snapshots := make(chan []*dto.MessageResponse, 4)
	stop, err := svc.SubscribeThreadMessages(context.Background(), "aaa_bbb",
		func(messages []*dto.MessageResponse) { snapshots <- messages },
		func(err error) { t.Errorf("unexpected error: %v", err) },
	)
	assert.NoError(t, err)
	defer stop()

	waitForSnapshot(t, snapshots) // initial

	svc.NotifyThreadChanged("ccc_ddd")

	select {
	case <-snapshots:
		t.Fatal("received snapshot for an unrelated thread signal")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewLiveSyncService(factory, nopLogger{})
	defer svc.Close()

	snapshots := make(chan []*dto.MessageResponse, 4)
	stop, err := svc.SubscribeThreadMessages(context.Background(), "aaa_bbb",
		func(messages []*dto.MessageResponse) { snapshots <- messages },
		func(err error) {},
	)
	assert.NoError(t, err)

	waitForSnapshot(t, snapshots)

	// Calling stop repeatedly must not panic or block.
	stop()
	stop()
	stop()
}

func TestSubscribeReportsFetchErrors(t *testing.T) {
	factory := newFakeUowFactory()
	factory.uow.messages.err = errors.New("store down")
	svc := NewLiveSyncService(factory, nopLogger{})
	defer svc.Close()

	errs := make(chan error, 4)
	stop, err := svc.SubscribeThreadMessages(context.Background(), "aaa_bbb",
		func(messages []*dto.MessageResponse) { t.Error("should not deliver a snapshot") },
		func(err error) { errs <- err },
	)
	assert.NoError(t, err)
	defer stop()

	fetchErr := waitForSnapshot(t, errs)
	assert.ErrorContains(t, fetchErr, "store down")
}

func TestSubscribeSurvivesHandlerPanic(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewLiveSyncService(factory, nopLogger{})
	defer svc.Close()

	threadId := "aaa_bbb"
	snapshots := make(chan []*dto.MessageResponse, 4)
	errs := make(chan error, 4)
	delivered := false
	stop, err := svc.SubscribeThreadMessages(context.Background(), threadId,
		func(messages []*dto.MessageResponse) {
			if !delivered {
				delivered = true
				panic("handler blew up")
			}
			snapshots <- messages
		},
		func(err error) { errs <- err },
	)
	assert.NoError(t, err)
	defer stop()

	// The initial delivery panics; it must surface as an error, not a
	// dead subscription.
	panicErr := waitForSnapshot(t, errs)
	assert.ErrorContains(t, panicErr, "handler blew up")

	svc.NotifyThreadChanged(threadId)

	snap := waitForSnapshot(t, snapshots)
	assert.Empty(t, snap)
}

func TestSubscribeMapSpotsNewestFirst(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewLiveSyncService(factory, nopLogger{})
	defer svc.Close()

	base := time.Now()
	for i, offset := range []time.Duration{0, 2 * time.Hour, time.Hour} {
		id := uuid.New()
		factory.uow.spots.spots[id] = &entity.MapSpot{
			Id:                id,
			CreatorId:         uuid.New(),
			Type:              entity.SpotTypeFood,
			Title:             "spot",
			Latitude:          float64(i),
			ContributorsCount: 1,
			CreatedAt:         base.Add(offset),
		}
	}

	snapshots := make(chan []*dto.MapSpotResponse, 4)
	stop, err := svc.SubscribeMapSpots(context.Background(),
		func(spots []*dto.MapSpotResponse) { snapshots <- spots },
		func(err error) { t.Errorf("unexpected error: %v", err) },
	)
	assert.NoError(t, err)
	defer stop()

	snap := waitForSnapshot(t, snapshots)
	assert.Len(t, snap, 3)
	for i := 1; i < len(snap); i++ {
		assert.False(t, snap[i].CreatedAt.After(snap[i-1].CreatedAt))
	}
}
