package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single chat line. Immutable after creation except for
// ReadBy, which only ever grows (union of reader ids).
type Message struct {
	Id        uuid.UUID
	ThreadId  string
	SenderId  uuid.UUID
	Text      string
	ReadBy    []string
	CreatedAt time.Time
}

// ReadByUser reports whether userId has acknowledged this message.
func (m *Message) ReadByUser(userId uuid.UUID) bool {
	id := userId.String()
	for _, r := range m.ReadBy {
		if r == id {
			return true
		}
	}
	return false
}
