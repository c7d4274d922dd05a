package controller

import (
	"petmedia-be/internal/dto"
	"petmedia-be/internal/pkg/serverutils"
	"petmedia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
	AddFavorite(ctx *fiber.Ctx) error
	RemoveFavorite(ctx *fiber.Ctx) error
	ListFavorites(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/me", c.GetProfile)
	h.Put("/me", c.UpdateProfile)
	h.Get("", c.ListUsers)
	h.Get("/favorites", c.ListFavorites)
	h.Post("/favorites", c.AddFavorite)
	h.Delete("/favorites/:petId", c.RemoveFavorite)
	h.Get("/:id", c.GetUser)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.service.GetProfile(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *userController) ListUsers(ctx *fiber.Ctx) error {
	res, err := c.service.ListUsers(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}

func (c *userController) GetUser(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	res, err := c.service.GetProfile(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get user", res))
}

func (c *userController) AddFavorite(ctx *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	favorites, err := c.service.AddFavorite(ctx.Context(), currentUserId(ctx), req.PetId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add favorite", favorites))
}

func (c *userController) RemoveFavorite(ctx *fiber.Ctx) error {
	petId, err := uuid.Parse(ctx.Params("petId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pet id")
	}

	favorites, err := c.service.RemoveFavorite(ctx.Context(), currentUserId(ctx), petId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove favorite", favorites))
}

func (c *userController) ListFavorites(ctx *fiber.Ctx) error {
	res, err := c.service.ListFavorites(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list favorites", res))
}
