package entity

import (
	"time"

	"github.com/google/uuid"
)

// Thread is a conversation between exactly two users. The id is derived
// from the participant pair (threadid.Derive), never store-generated.
// User1/User2 fields are a denormalized snapshot of the participants'
// profiles captured at creation time; staleness is tolerated and repaired
// lazily on read.
type Thread struct {
	Id            string
	Participants  []string
	User1Id       uuid.UUID
	User1Name     string
	User1Photo    string
	User2Id       uuid.UUID
	User2Name     string
	User2Photo    string
	LastMessage   *string
	LastMessageAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// HasParticipant reports whether userId is one of the two participants.
func (t *Thread) HasParticipant(userId uuid.UUID) bool {
	return t.User1Id == userId || t.User2Id == userId
}

// ActivityAt is the ordering key for thread lists: last message time when
// present, creation time otherwise.
func (t *Thread) ActivityAt() time.Time {
	if t.LastMessageAt != nil {
		return *t.LastMessageAt
	}
	return t.CreatedAt
}
