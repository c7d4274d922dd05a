package service

import (
	"context"
	"sort"
	"time"

	"petmedia-be/internal/dto"
	"petmedia-be/internal/entity"
	"petmedia-be/internal/pkg/apperrors"
	"petmedia-be/internal/pkg/logger"
	"petmedia-be/internal/repository/specification"
	"petmedia-be/internal/repository/unitofwork"
	"petmedia-be/pkg/events"
	pkgNats "petmedia-be/pkg/nats"

	"github.com/google/uuid"
)

type IMapSpotService interface {
	Create(ctx context.Context, creatorId uuid.UUID, req *dto.CreateMapSpotRequest) (*dto.MapSpotResponse, error)
	Contribute(ctx context.Context, spotId uuid.UUID) (*dto.MapSpotResponse, error)
	List(ctx context.Context) ([]*dto.MapSpotResponse, error)
	ListMine(ctx context.Context, creatorId uuid.UUID) ([]*dto.MapSpotResponse, error)
}

type mapSpotService struct {
	uowFactory     unitofwork.RepositoryFactory
	liveSync       ILiveSyncService
	eventPublisher *pkgNats.Publisher
	logger         logger.ILogger
}

func NewMapSpotService(
	uowFactory unitofwork.RepositoryFactory,
	liveSync ILiveSyncService,
	eventPublisher *pkgNats.Publisher,
	l logger.ILogger,
) IMapSpotService {
	return &mapSpotService{
		uowFactory:     uowFactory,
		liveSync:       liveSync,
		eventPublisher: eventPublisher,
		logger:         l,
	}
}

func toMapSpotResponse(spot *entity.MapSpot) dto.MapSpotResponse {
	return dto.MapSpotResponse{
		Id:                spot.Id,
		CreatorId:         spot.CreatorId,
		Type:              spot.Type,
		Title:             spot.Title,
		Note:              spot.Note,
		Latitude:          spot.Latitude,
		Longitude:         spot.Longitude,
		PhotoURL:          spot.PhotoURL,
		ContributorsCount: spot.ContributorsCount,
		CreatedAt:         spot.CreatedAt,
		LastUpdatedAt:     spot.LastUpdatedAt,
	}
}

func (s *mapSpotService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	err := s.eventPublisher.Publish(ctx, events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("mapspot", "Failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *mapSpotService) Create(ctx context.Context, creatorId uuid.UUID, req *dto.CreateMapSpotRequest) (*dto.MapSpotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	spot := &entity.MapSpot{
		Id:                uuid.New(),
		CreatorId:         creatorId,
		Type:              req.Type,
		Title:             req.Title,
		Note:              req.Note,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		PhotoURL:          req.PhotoURL,
		ContributorsCount: 1,
		CreatedAt:         now,
		LastUpdatedAt:     now,
	}

	if err := uow.MapSpotRepository().Create(ctx, spot); err != nil {
		return nil, err
	}

	s.liveSync.NotifyMapChanged()
	s.publishEvent(ctx, events.TypeMapSpotCreated, map[string]interface{}{
		"spot_id":    spot.Id.String(),
		"creator_id": creatorId.String(),
		"type":       spot.Type,
	})

	res := toMapSpotResponse(spot)
	return &res, nil
}

// Contribute bumps the contributor count by one. Anyone may contribute,
// including the creator; there is no per-user dedup here.
func (s *mapSpotService) Contribute(ctx context.Context, spotId uuid.UUID) (*dto.MapSpotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	spot, err := uow.MapSpotRepository().FindOne(ctx, specification.ByID{ID: spotId})
	if err != nil {
		return nil, err
	}
	if spot == nil {
		return nil, apperrors.NewNotFound("map spot not found")
	}

	spot.ContributorsCount++
	spot.LastUpdatedAt = time.Now()

	if err := uow.MapSpotRepository().Update(ctx, spot); err != nil {
		return nil, err
	}

	s.liveSync.NotifyMapChanged()
	s.publishEvent(ctx, events.TypeMapSpotUpdated, map[string]interface{}{
		"spot_id":            spot.Id.String(),
		"contributors_count": spot.ContributorsCount,
	})

	res := toMapSpotResponse(spot)
	return &res, nil
}

func (s *mapSpotService) List(ctx context.Context) ([]*dto.MapSpotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	spots, err := uow.MapSpotRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].CreatedAt.After(spots[j].CreatedAt)
	})

	result := make([]*dto.MapSpotResponse, 0, len(spots))
	for _, spot := range spots {
		res := toMapSpotResponse(spot)
		result = append(result, &res)
	}
	return result, nil
}

func (s *mapSpotService) ListMine(ctx context.Context, creatorId uuid.UUID) ([]*dto.MapSpotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	spots, err := uow.MapSpotRepository().FindAll(ctx, specification.ByCreator{CreatorID: creatorId})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].CreatedAt.After(spots[j].CreatedAt)
	})

	result := make([]*dto.MapSpotResponse, 0, len(spots))
	for _, spot := range spots {
		res := toMapSpotResponse(spot)
		result = append(result, &res)
	}
	return result, nil
}
