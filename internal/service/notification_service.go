package service

import (
	"context"
	"fmt"
	"time"

	"petmedia-be/internal/model"
	"petmedia-be/internal/pkg/logger"
	"petmedia-be/pkg/events"
	pkgNats "petmedia-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Implemented by the websocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

// NotificationService turns bus events into websocket pushes. It runs as a
// durable NATS worker so events survive instance restarts.
type NotificationService struct {
	subscriber *pkgNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pkgNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	switch event.EventType() {
	case events.TypeMessageSent:
		return s.handleMessageSent(event)
	default:
		// Other event types have no push today; ack so they don't redeliver.
		return nil
	}
}

func (s *NotificationService) handleMessageSent(event events.Event) error {
	payload := event.Payload()

	recipientRaw, _ := payload["recipient_id"].(string)
	recipientId, err := uuid.Parse(recipientRaw)
	if err != nil {
		s.logger.Warn("NotificationService", "MESSAGE_SENT event without valid recipient", map[string]interface{}{
			"recipient_id": recipientRaw,
		})
		return nil
	}

	threadId, _ := payload["thread_id"].(string)
	text, _ := payload["text"].(string)

	s.delivery.Send(recipientId, model.Notification{
		ID:       uuid.New(),
		UserID:   recipientId,
		TypeCode: events.TypeMessageSent,
		Title:    "New message",
		Message:  fmt.Sprintf("You have a new message: %s", truncate(text, 80)),
		Metadata: map[string]interface{}{
			"thread_id": threadId,
		},
		CreatedAt: time.Now(),
	})
	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
