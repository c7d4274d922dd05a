package mapper

import (
	"time"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/model"
)

type MessagingMapper struct{}

func NewMessagingMapper() *MessagingMapper {
	return &MessagingMapper{}
}

// Thread Mappers

func (m *MessagingMapper) ThreadToEntity(t *model.Thread) *entity.Thread {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.Thread{
		Id:            t.Id,
		Participants:  append([]string(nil), t.Participants...),
		User1Id:       t.User1Id,
		User1Name:     t.User1Name,
		User1Photo:    t.User1Photo,
		User2Id:       t.User2Id,
		User2Name:     t.User2Name,
		User2Photo:    t.User2Photo,
		LastMessage:   t.LastMessage,
		LastMessageAt: t.LastMessageAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *MessagingMapper) ThreadToModel(t *entity.Thread) *model.Thread {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Thread{
		Id:            t.Id,
		Participants:  append([]string(nil), t.Participants...),
		User1Id:       t.User1Id,
		User1Name:     t.User1Name,
		User1Photo:    t.User1Photo,
		User2Id:       t.User2Id,
		User2Name:     t.User2Name,
		User2Photo:    t.User2Photo,
		LastMessage:   t.LastMessage,
		LastMessageAt: t.LastMessageAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

// Message Mappers

func (m *MessagingMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:        msg.Id,
		ThreadId:  msg.ThreadId,
		SenderId:  msg.SenderId,
		Text:      msg.Text,
		ReadBy:    append([]string(nil), msg.ReadBy...),
		CreatedAt: msg.CreatedAt,
	}
}

func (m *MessagingMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:        msg.Id,
		ThreadId:  msg.ThreadId,
		SenderId:  msg.SenderId,
		Text:      msg.Text,
		ReadBy:    append([]string(nil), msg.ReadBy...),
		CreatedAt: msg.CreatedAt,
	}
}
