package service

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"petmedia-be/internal/config"
	"petmedia-be/internal/dto"
	"petmedia-be/internal/entity"
	"petmedia-be/internal/pkg/apperrors"
	"petmedia-be/internal/pkg/logger"
	"petmedia-be/internal/repository/specification"
	"petmedia-be/internal/repository/unitofwork"
	"petmedia-be/pkg/events"
	pkgNats "petmedia-be/pkg/nats"
	"petmedia-be/pkg/threadid"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// fallbackDisplayName stands in when a participant's profile cannot be
// loaded during thread creation. A conversation must always be creatable
// even when profile data is transiently unavailable.
const fallbackDisplayName = "Pet Lover"

type IMessagingService interface {
	GetOrCreateThread(ctx context.Context, callerId uuid.UUID, otherUserId uuid.UUID) (*dto.ThreadResponse, error)
	GetThread(ctx context.Context, callerId uuid.UUID, threadId string) (*dto.ThreadResponse, error)
	ListUserThreads(ctx context.Context, userId uuid.UUID) ([]*dto.ThreadResponse, error)
	SendMessage(ctx context.Context, senderId uuid.UUID, threadId string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	ListThreadMessages(ctx context.Context, callerId uuid.UUID, threadId string) ([]*dto.MessageResponse, error)
	MarkRead(ctx context.Context, callerId uuid.UUID, threadId string) (*dto.MarkReadResponse, error)
}

type profileSnapshot struct {
	Name  string
	Photo string
}

type messagingService struct {
	uowFactory     unitofwork.RepositoryFactory
	liveSync       ILiveSyncService
	eventPublisher *pkgNats.Publisher
	profileCache   *gocache.Cache
	maxMessageSize int
	logger         logger.ILogger
}

func NewMessagingService(
	uowFactory unitofwork.RepositoryFactory,
	liveSync ILiveSyncService,
	eventPublisher *pkgNats.Publisher,
	cfg *config.Config,
	l logger.ILogger,
) IMessagingService {
	return &messagingService{
		uowFactory:     uowFactory,
		liveSync:       liveSync,
		eventPublisher: eventPublisher,
		profileCache:   gocache.New(5*time.Minute, 10*time.Minute),
		maxMessageSize: cfg.Auth.MaxMessageSize,
		logger:         l,
	}
}

func toThreadResponse(thread *entity.Thread) dto.ThreadResponse {
	participants := thread.Participants
	if participants == nil {
		participants = []string{}
	}
	return dto.ThreadResponse{
		Id:            thread.Id,
		Participants:  participants,
		User1Id:       thread.User1Id,
		User1Name:     thread.User1Name,
		User1Photo:    thread.User1Photo,
		User2Id:       thread.User2Id,
		User2Name:     thread.User2Name,
		User2Photo:    thread.User2Photo,
		LastMessage:   thread.LastMessage,
		LastMessageAt: thread.LastMessageAt,
		CreatedAt:     thread.CreatedAt,
	}
}

func toMessageResponse(message *entity.Message) dto.MessageResponse {
	readBy := message.ReadBy
	if readBy == nil {
		readBy = []string{}
	}
	return dto.MessageResponse{
		Id:        message.Id,
		ThreadId:  message.ThreadId,
		SenderId:  message.SenderId,
		Text:      message.Text,
		ReadBy:    readBy,
		CreatedAt: message.CreatedAt,
	}
}

// lookupProfile fetches a participant's display snapshot, caching hits.
// A missing or failed lookup yields the placeholder instead of an error.
func (s *messagingService) lookupProfile(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) profileSnapshot {
	key := userId.String()
	if cached, found := s.profileCache.Get(key); found {
		return cached.(profileSnapshot)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		if err != nil {
			s.logger.Warn("messaging", "Profile lookup failed, using placeholder", map[string]interface{}{
				"user_id": key,
				"error":   err.Error(),
			})
		}
		return profileSnapshot{Name: fallbackDisplayName}
	}

	name := user.DisplayName
	if name == "" {
		name = user.Email
	}
	if name == "" {
		name = fallbackDisplayName
	}

	snap := profileSnapshot{Name: name, Photo: user.AvatarURL}
	s.profileCache.Set(key, snap, gocache.DefaultExpiration)
	return snap
}

func (s *messagingService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	err := s.eventPublisher.Publish(ctx, events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("messaging", "Failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

// GetOrCreateThread resolves the canonical thread for the caller and the
// other user, creating it with a denormalized profile snapshot on first
// contact. Concurrent creators converge on the same record via upsert.
func (s *messagingService) GetOrCreateThread(ctx context.Context, callerId uuid.UUID, otherUserId uuid.UUID) (*dto.ThreadResponse, error) {
	id, err := threadid.Derive(callerId.String(), otherUserId.String())
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	thread, err := uow.ThreadRepository().FindOne(ctx, specification.ThreadByID{ID: id})
	if err != nil {
		return nil, err
	}

	if thread != nil {
		s.repairSnapshotIfMissing(ctx, uow, thread)
		res := toThreadResponse(thread)
		return &res, nil
	}

	caller := s.lookupProfile(ctx, uow, callerId)
	other := s.lookupProfile(ctx, uow, otherUserId)

	first, second, _ := threadid.Participants(id)
	now := time.Now()
	thread = &entity.Thread{
		Id:           id,
		Participants: []string{first, second},
		User1Id:      callerId,
		User1Name:    caller.Name,
		User1Photo:   caller.Photo,
		User2Id:      otherUserId,
		User2Name:    other.Name,
		User2Photo:   other.Photo,
		CreatedAt:    now,
	}

	if err := uow.ThreadRepository().Upsert(ctx, thread); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeThreadCreated, map[string]interface{}{
		"thread_id": thread.Id,
		"user1_id":  callerId.String(),
		"user2_id":  otherUserId.String(),
	})

	res := toThreadResponse(thread)
	return &res, nil
}

// repairSnapshotIfMissing backfills participant names and photos on threads
// created before the profiles were complete. Read-path repair only; a
// failed repair is logged and the stale snapshot served as-is.
func (s *messagingService) repairSnapshotIfMissing(ctx context.Context, uow unitofwork.UnitOfWork, thread *entity.Thread) {
	missing := func(name string) bool {
		return name == "" || name == fallbackDisplayName
	}
	if !missing(thread.User1Name) && !missing(thread.User2Name) {
		return
	}

	user1 := s.lookupProfile(ctx, uow, thread.User1Id)
	user2 := s.lookupProfile(ctx, uow, thread.User2Id)

	thread.User1Name = user1.Name
	thread.User1Photo = user1.Photo
	thread.User2Name = user2.Name
	thread.User2Photo = user2.Photo
	now := time.Now()
	thread.UpdatedAt = &now

	if err := uow.ThreadRepository().Update(ctx, thread); err != nil {
		s.logger.Warn("messaging", "Failed to repair thread snapshot", map[string]interface{}{
			"thread_id": thread.Id,
			"error":     err.Error(),
		})
	}
}

func (s *messagingService) loadThreadForParticipant(ctx context.Context, uow unitofwork.UnitOfWork, callerId uuid.UUID, threadId string) (*entity.Thread, error) {
	thread, err := uow.ThreadRepository().FindOne(ctx, specification.ThreadByID{ID: threadId})
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, apperrors.NewNotFound("thread not found")
	}
	if !thread.HasParticipant(callerId) {
		return nil, apperrors.NewForbidden("not a participant of this thread")
	}
	return thread, nil
}

func (s *messagingService) GetThread(ctx context.Context, callerId uuid.UUID, threadId string) (*dto.ThreadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	thread, err := s.loadThreadForParticipant(ctx, uow, callerId, threadId)
	if err != nil {
		return nil, err
	}

	res := toThreadResponse(thread)
	return &res, nil
}

// ListUserThreads returns every thread the user participates in, most
// recently active first. Activity is last message time, falling back to
// creation time for threads with no messages yet. Ordering happens in
// memory; the query stays equality-only.
func (s *messagingService) ListUserThreads(ctx context.Context, userId uuid.UUID) ([]*dto.ThreadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	threads, err := uow.ThreadRepository().FindAll(ctx, specification.ParticipantOf{UserID: userId})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].ActivityAt().After(threads[j].ActivityAt())
	})

	result := make([]*dto.ThreadResponse, 0, len(threads))
	for _, thread := range threads {
		res := toThreadResponse(thread)
		result = append(result, &res)
	}
	return result, nil
}

func (s *messagingService) SendMessage(ctx context.Context, senderId uuid.UUID, threadId string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.NewValidation("message text must not be empty")
	}
	if utf8.RuneCountInString(text) > s.maxMessageSize {
		return nil, apperrors.NewValidation("message text exceeds maximum length")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	thread, err := s.loadThreadForParticipant(ctx, uow, senderId, threadId)
	if err != nil {
		return nil, err
	}

	msg := &entity.Message{
		Id:        uuid.New(),
		ThreadId:  threadId,
		SenderId:  senderId,
		Text:      text,
		ReadBy:    []string{senderId.String()},
		CreatedAt: time.Now(),
	}

	if err := uow.MessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	// Last-message cache update is best effort. The message itself is the
	// source of truth; a stale cache only affects thread list previews.
	thread.LastMessage = &msg.Text
	thread.LastMessageAt = &msg.CreatedAt
	now := time.Now()
	thread.UpdatedAt = &now
	if err := uow.ThreadRepository().Update(ctx, thread); err != nil {
		s.logger.Warn("messaging", "Failed to update thread last-message cache", map[string]interface{}{
			"thread_id": threadId,
			"error":     err.Error(),
		})
	}

	s.liveSync.NotifyThreadChanged(threadId)

	recipientId := thread.User1Id
	if recipientId == senderId {
		recipientId = thread.User2Id
	}
	s.publishEvent(ctx, events.TypeMessageSent, map[string]interface{}{
		"thread_id":    threadId,
		"message_id":   msg.Id.String(),
		"sender_id":    senderId.String(),
		"recipient_id": recipientId.String(),
		"text":         msg.Text,
	})

	res := toMessageResponse(msg)
	return &res, nil
}

// ListThreadMessages returns the full history oldest-first. Sorting is
// applied in memory so the store only ever sees an equality filter.
func (s *messagingService) ListThreadMessages(ctx context.Context, callerId uuid.UUID, threadId string) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.loadThreadForParticipant(ctx, uow, callerId, threadId); err != nil {
		return nil, err
	}

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

// MarkRead adds the caller to the read set of every message in the thread
// that does not already carry it. The read set only ever grows, so a repeat
// call finds nothing to update and is a no-op.
func (s *messagingService) MarkRead(ctx context.Context, callerId uuid.UUID, threadId string) (*dto.MarkReadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.loadThreadForParticipant(ctx, uow, callerId, threadId); err != nil {
		return nil, err
	}

	messages, err := uow.MessageRepository().FindAll(ctx, specification.ByThreadID{ThreadID: threadId})
	if err != nil {
		return nil, err
	}

	updated := 0
	for _, msg := range messages {
		if msg.ReadByUser(callerId) {
			continue
		}

		msg.ReadBy = append(msg.ReadBy, callerId.String())
		if err := uow.MessageRepository().UpdateReadBy(ctx, msg); err != nil {
			return nil, err
		}
		updated++
	}

	if updated > 0 {
		s.liveSync.NotifyThreadChanged(threadId)
	}

	return &dto.MarkReadResponse{UpdatedCount: updated}, nil
}
