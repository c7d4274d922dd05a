package controller

import (
	"petmedia-be/internal/dto"
	"petmedia-be/internal/pkg/serverutils"
	"petmedia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMapSpotController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Contribute(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
}

type mapSpotController struct {
	service service.IMapSpotService
}

func NewMapSpotController(service service.IMapSpotService) IMapSpotController {
	return &mapSpotController{service: service}
}

func (c *mapSpotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mapspot/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/mine", c.ListMine)
	h.Post("/:id/contribute", c.Contribute)
}

func (c *mapSpotController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMapSpotRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create map spot", res))
}

func (c *mapSpotController) Contribute(ctx *fiber.Ctx) error {
	spotId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid spot id")
	}

	res, err := c.service.Contribute(ctx.Context(), spotId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success contribute to map spot", res))
}

func (c *mapSpotController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list map spots", res))
}

func (c *mapSpotController) ListMine(ctx *fiber.Ctx) error {
	res, err := c.service.ListMine(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list my map spots", res))
}
