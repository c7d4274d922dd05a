package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"petmedia-be/internal/dto"
	"petmedia-be/internal/entity"
	"petmedia-be/internal/pkg/apperrors"
	"petmedia-be/internal/repository/specification"
	"petmedia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, requesterId uuid.UUID) ([]*dto.UserResponse, error)
	AddFavorite(ctx context.Context, userId uuid.UUID, petId uuid.UUID) ([]string, error)
	RemoveFavorite(ctx context.Context, userId uuid.UUID, petId uuid.UUID) ([]string, error)
	ListFavorites(ctx context.Context, userId uuid.UUID) ([]*dto.PetResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func toUserResponse(user *entity.User) dto.UserResponse {
	favorites := user.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return dto.UserResponse{
		Id:          user.Id,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		City:        user.City,
		Bio:         user.Bio,
		Favorites:   favorites,
		CreatedAt:   user.CreatedAt,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user not found")
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user not found")
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	now := time.Now()
	user.UpdatedAt = &now

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

// ListUsers returns every profile except the requester's own, for the
// contact picker. Ordering is applied in memory by display name.
func (s *userService) ListUsers(ctx context.Context, requesterId uuid.UUID) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		if user.Id == requesterId {
			continue
		}
		res := toUserResponse(user)
		result = append(result, &res)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].DisplayName) < strings.ToLower(result[j].DisplayName)
	})

	return result, nil
}

func (s *userService) AddFavorite(ctx context.Context, userId uuid.UUID, petId uuid.UUID) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user not found")
	}

	pet, err := uow.PetRepository().FindOne(ctx, specification.ByID{ID: petId})
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, apperrors.NewNotFound("pet not found")
	}

	id := petId.String()
	for _, fav := range user.Favorites {
		if fav == id {
			return user.Favorites, nil
		}
	}

	user.Favorites = append(user.Favorites, id)
	now := time.Now()
	user.UpdatedAt = &now

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Favorites, nil
}

func (s *userService) RemoveFavorite(ctx context.Context, userId uuid.UUID, petId uuid.UUID) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user not found")
	}

	id := petId.String()
	kept := make([]string, 0, len(user.Favorites))
	for _, fav := range user.Favorites {
		if fav != id {
			kept = append(kept, fav)
		}
	}
	user.Favorites = kept
	now := time.Now()
	user.UpdatedAt = &now

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Favorites, nil
}

func (s *userService) ListFavorites(ctx context.Context, userId uuid.UUID) ([]*dto.PetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user not found")
	}

	if len(user.Favorites) == 0 {
		return []*dto.PetResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(user.Favorites))
	for _, fav := range user.Favorites {
		id, err := uuid.Parse(fav)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	pets, err := uow.PetRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PetResponse, 0, len(pets))
	for _, pet := range pets {
		res := toPetResponse(pet)
		result = append(result, &res)
	}
	return result, nil
}
