package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByThreadID filters messages belonging to one thread. Deliberately the only
// filter message listings use: combined with the absence of OrderBy the
// query stays equality-only, and ordering is applied client-side.
type ByThreadID struct {
	ThreadID string
}

func (s ByThreadID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("thread_id = ?", s.ThreadID)
}

// ThreadByID filters threads by their derived pair id. Threads use a
// string primary key, so the uuid-based ByID does not apply.
type ThreadByID struct {
	ID string
}

func (s ThreadByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ParticipantOf filters threads where the user is either participant.
type ParticipantOf struct {
	UserID uuid.UUID
}

func (s ParticipantOf) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user1_id = ? OR user2_id = ?", s.UserID, s.UserID)
}
