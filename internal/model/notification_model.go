package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an ephemeral push payload delivered over the websocket
// hub. It is not persisted; a client that is offline simply learns about new
// messages from the thread list on next load.
type Notification struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	TypeCode  string                 `json:"type_code"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
