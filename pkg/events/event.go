package events

import "time"

// Event type codes emitted by the application.
const (
	TypeMessageSent    = "MESSAGE_SENT"
	TypeThreadCreated  = "THREAD_CREATED"
	TypeMapSpotCreated = "MAP_SPOT_CREATED"
	TypeMapSpotUpdated = "MAP_SPOT_UPDATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "MESSAGE_SENT").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation services construct inline.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
