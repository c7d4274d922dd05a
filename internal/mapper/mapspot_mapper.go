package mapper

import (
	"petmedia-be/internal/entity"
	"petmedia-be/internal/model"
)

type MapSpotMapper struct{}

func NewMapSpotMapper() *MapSpotMapper {
	return &MapSpotMapper{}
}

func (m *MapSpotMapper) ToEntity(s *model.MapSpot) *entity.MapSpot {
	if s == nil {
		return nil
	}

	return &entity.MapSpot{
		Id:                s.Id,
		CreatorId:         s.CreatorId,
		Type:              s.Type,
		Title:             s.Title,
		Note:              s.Note,
		Latitude:          s.Latitude,
		Longitude:         s.Longitude,
		PhotoURL:          s.PhotoURL,
		ContributorsCount: s.ContributorsCount,
		CreatedAt:         s.CreatedAt,
		LastUpdatedAt:     s.LastUpdatedAt,
	}
}

func (m *MapSpotMapper) ToModel(s *entity.MapSpot) *model.MapSpot {
	if s == nil {
		return nil
	}

	return &model.MapSpot{
		Id:                s.Id,
		CreatorId:         s.CreatorId,
		Type:              s.Type,
		Title:             s.Title,
		Note:              s.Note,
		Latitude:          s.Latitude,
		Longitude:         s.Longitude,
		PhotoURL:          s.PhotoURL,
		ContributorsCount: s.ContributorsCount,
		CreatedAt:         s.CreatedAt,
		LastUpdatedAt:     s.LastUpdatedAt,
	}
}
