package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"petmedia-be/internal/dto"
	"petmedia-be/internal/pkg/logger"
	"petmedia-be/internal/repository/specification"
	"petmedia-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	threadTopicPrefix = "livesync.thread."
	mapTopic          = "livesync.map"
)

// ThreadSnapshotHandler receives the complete, oldest-first message list of
// one thread.
type ThreadSnapshotHandler func(messages []*dto.MessageResponse)

// MapSnapshotHandler receives the complete, newest-first map spot list.
type MapSnapshotHandler func(spots []*dto.MapSpotResponse)

// ErrorHandler receives fetch and transport failures. Handlers must not be
// relied on for flow control; after an error the subscription stays alive
// and the next change signal triggers a fresh fetch.
type ErrorHandler func(err error)

// ILiveSyncService is the snapshot-push change feed. Every mutation in the
// messaging and map services raises a change signal here; each subscriber
// then gets the full re-fetched state, never a delta.
type ILiveSyncService interface {
	SubscribeThreadMessages(ctx context.Context, threadId string, onChange ThreadSnapshotHandler, onError ErrorHandler) (func(), error)
	SubscribeMapSpots(ctx context.Context, onChange MapSnapshotHandler, onError ErrorHandler) (func(), error)
	NotifyThreadChanged(threadId string)
	NotifyMapChanged()
	Close() error
}

type liveSyncService struct {
	uowFactory unitofwork.RepositoryFactory
	bus        *gochannel.GoChannel
	logger     logger.ILogger
}

func NewLiveSyncService(uowFactory unitofwork.RepositoryFactory, l logger.ILogger) ILiveSyncService {
	bus := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, logger.NewWatermillAdapter(l, "livesync"))

	return &liveSyncService{
		uowFactory: uowFactory,
		bus:        bus,
		logger:     l,
	}
}

func (s *liveSyncService) publish(topic string) {
	msg := message.NewMessage(watermill.NewUUID(), nil)
	if err := s.bus.Publish(topic, msg); err != nil {
		s.logger.Error("livesync", "Failed to publish change signal", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
	}
}

func (s *liveSyncService) NotifyThreadChanged(threadId string) {
	s.publish(threadTopicPrefix + threadId)
}

func (s *liveSyncService) NotifyMapChanged() {
	s.publish(mapTopic)
}

func (s *liveSyncService) fetchThreadSnapshot(ctx context.Context, threadId string) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAll(ctx, specification.ByThreadID{ThreadID: threadId})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	result := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		res := toMessageResponse(m)
		result = append(result, &res)
	}
	return result, nil
}

func (s *liveSyncService) fetchMapSnapshot(ctx context.Context) ([]*dto.MapSpotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	spots, err := uow.MapSpotRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].CreatedAt.After(spots[j].CreatedAt)
	})

	result := make([]*dto.MapSpotResponse, 0, len(spots))
	for _, spot := range spots {
		res := toMapSpotResponse(spot)
		result = append(result, &res)
	}
	return result, nil
}

// subscribe wires the common lifecycle: deliver one snapshot immediately,
// then one per change signal, all from a single goroutine so delivery
// order matches signal order. The returned stop func is idempotent.
func (s *liveSyncService) subscribe(ctx context.Context, topic string, deliver func(ctx context.Context) error, onError ErrorHandler) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)

	signals, err := s.bus.Subscribe(subCtx, topic)
	if err != nil {
		cancel()
		return nil, err
	}

	var once sync.Once
	stop := func() {
		once.Do(cancel)
	}

	// A panicking onChange must not kill the subscription. The panic is
	// surfaced through onError and the loop keeps consuming signals.
	safeDeliver := func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("livesync", "Subscriber handler panicked", map[string]interface{}{
					"topic": topic,
					"panic": r,
				})
				onError(fmt.Errorf("snapshot handler panicked: %v", r))
			}
		}()
		if err := deliver(subCtx); err != nil {
			onError(err)
		}
	}

	go func() {
		safeDeliver()

		for msg := range signals {
			msg.Ack()
			if subCtx.Err() != nil {
				return
			}
			safeDeliver()
		}
	}()

	return stop, nil
}

func (s *liveSyncService) SubscribeThreadMessages(ctx context.Context, threadId string, onChange ThreadSnapshotHandler, onError ErrorHandler) (func(), error) {
	return s.subscribe(ctx, threadTopicPrefix+threadId, func(ctx context.Context) error {
		snapshot, err := s.fetchThreadSnapshot(ctx, threadId)
		if err != nil {
			return err
		}
		onChange(snapshot)
		return nil
	}, onError)
}

func (s *liveSyncService) SubscribeMapSpots(ctx context.Context, onChange MapSnapshotHandler, onError ErrorHandler) (func(), error) {
	return s.subscribe(ctx, mapTopic, func(ctx context.Context) error {
		snapshot, err := s.fetchMapSnapshot(ctx)
		if err != nil {
			return err
		}
		onChange(snapshot)
		return nil
	}, onError)
}

func (s *liveSyncService) Close() error {
	return s.bus.Close()
}
