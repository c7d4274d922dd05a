package dto

import (
	"time"

	"github.com/google/uuid"
)

type GetOrCreateThreadRequest struct {
	OtherUserId uuid.UUID `json:"other_user_id" validate:"required"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// ThreadResponse carries the denormalized participant snapshot so the
// client can render a thread list without extra profile lookups.
type ThreadResponse struct {
	Id            string     `json:"id"`
	Participants  []string   `json:"participants"`
	User1Id       uuid.UUID  `json:"user1_id"`
	User1Name     string     `json:"user1_name"`
	User1Photo    string     `json:"user1_photo"`
	User2Id       uuid.UUID  `json:"user2_id"`
	User2Name     string     `json:"user2_name"`
	User2Photo    string     `json:"user2_photo"`
	LastMessage   *string    `json:"last_message"`
	LastMessageAt *time.Time `json:"last_message_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	ThreadId  string    `json:"thread_id"`
	SenderId  uuid.UUID `json:"sender_id"`
	Text      string    `json:"text"`
	ReadBy    []string  `json:"read_by"`
	CreatedAt time.Time `json:"created_at"`
}

type MarkReadResponse struct {
	UpdatedCount int `json:"updated_count"`
}
