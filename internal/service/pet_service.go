package service

import (
	"context"
	"sort"
	"time"

	"petmedia-be/internal/dto"
	"petmedia-be/internal/entity"
	"petmedia-be/internal/pkg/apperrors"
	"petmedia-be/internal/repository/specification"
	"petmedia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPetService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	Update(ctx context.Context, ownerId uuid.UUID, petId uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	Delete(ctx context.Context, ownerId uuid.UUID, petId uuid.UUID) error
	Show(ctx context.Context, petId uuid.UUID) (*dto.PetResponse, error)
	List(ctx context.Context, req *dto.PetListRequest) ([]*dto.PetResponse, error)
}

type petService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPetService(uowFactory unitofwork.RepositoryFactory) IPetService {
	return &petService{
		uowFactory: uowFactory,
	}
}

func toPetResponse(pet *entity.Pet) dto.PetResponse {
	photos := pet.Photos
	if photos == nil {
		photos = []string{}
	}
	tags := pet.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.PetResponse{
		Id:          pet.Id,
		OwnerId:     pet.OwnerId,
		Name:        pet.Name,
		Species:     pet.Species,
		Breed:       pet.Breed,
		Age:         pet.Age,
		Gender:      pet.Gender,
		Description: pet.Description,
		City:        pet.City,
		Photos:      photos,
		Tags:        tags,
		Adopted:     pet.Adopted,
		CreatedAt:   pet.CreatedAt,
		UpdatedAt:   pet.UpdatedAt,
	}
}

func (s *petService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pet := &entity.Pet{
		Id:          uuid.New(),
		OwnerId:     ownerId,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         req.Age,
		Gender:      req.Gender,
		Description: req.Description,
		City:        req.City,
		Photos:      req.Photos,
		Tags:        req.Tags,
		CreatedAt:   time.Now(),
	}

	if err := uow.PetRepository().Create(ctx, pet); err != nil {
		return nil, err
	}

	res := toPetResponse(pet)
	return &res, nil
}

func (s *petService) Update(ctx context.Context, ownerId uuid.UUID, petId uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pet, err := uow.PetRepository().FindOne(ctx, specification.ByID{ID: petId})
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, apperrors.NewNotFound("pet not found")
	}
	if pet.OwnerId != ownerId {
		return nil, apperrors.NewForbidden("only the owner can update a pet listing")
	}

	if req.Name != "" {
		pet.Name = req.Name
	}
	if req.Breed != "" {
		pet.Breed = req.Breed
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}
	if req.Description != "" {
		pet.Description = req.Description
	}
	if req.City != "" {
		pet.City = req.City
	}
	if len(req.Photos) > 0 {
		pet.Photos = req.Photos
	}
	if req.Tags != nil {
		pet.Tags = req.Tags
	}
	if req.Adopted != nil {
		pet.Adopted = *req.Adopted
	}
	now := time.Now()
	pet.UpdatedAt = &now

	if err := uow.PetRepository().Update(ctx, pet); err != nil {
		return nil, err
	}

	res := toPetResponse(pet)
	return &res, nil
}

func (s *petService) Delete(ctx context.Context, ownerId uuid.UUID, petId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pet, err := uow.PetRepository().FindOne(ctx, specification.ByID{ID: petId})
	if err != nil {
		return err
	}
	if pet == nil {
		return apperrors.NewNotFound("pet not found")
	}
	if pet.OwnerId != ownerId {
		return apperrors.NewForbidden("only the owner can remove a pet listing")
	}

	return uow.PetRepository().Delete(ctx, petId)
}

func (s *petService) Show(ctx context.Context, petId uuid.UUID) (*dto.PetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pet, err := uow.PetRepository().FindOne(ctx, specification.ByID{ID: petId})
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, apperrors.NewNotFound("pet not found")
	}

	res := toPetResponse(pet)
	return &res, nil
}

// List fetches with equality filters only and sorts newest-first in memory.
func (s *petService) List(ctx context.Context, req *dto.PetListRequest) ([]*dto.PetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := make([]specification.Specification, 0, 2)
	if req.Species != "" {
		specs = append(specs, specification.BySpecies{Species: req.Species})
	}
	if req.Owner != "" {
		ownerId, err := uuid.Parse(req.Owner)
		if err != nil {
			return nil, apperrors.NewValidation("invalid owner id")
		}
		specs = append(specs, specification.ByOwner{OwnerID: ownerId})
	}

	pets, err := uow.PetRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(pets, func(i, j int) bool {
		return pets[i].CreatedAt.After(pets[j].CreatedAt)
	})

	result := make([]*dto.PetResponse, 0, len(pets))
	for _, pet := range pets {
		res := toPetResponse(pet)
		result = append(result, &res)
	}
	return result, nil
}
