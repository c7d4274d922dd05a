package controller

import (
	"petmedia-be/internal/dto"
	"petmedia-be/internal/pkg/serverutils"
	"petmedia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPetController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
}

type petController struct {
	service service.IPetService
}

func NewPetController(service service.IPetService) IPetController {
	return &petController{service: service}
}

func (c *petController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pet/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/mine", c.ListMine)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *petController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePetRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create pet", res))
}

func (c *petController) Update(ctx *fiber.Ctx) error {
	petId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pet id")
	}

	var req dto.UpdatePetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), currentUserId(ctx), petId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update pet", res))
}

func (c *petController) Delete(ctx *fiber.Ctx) error {
	petId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pet id")
	}

	if err := c.service.Delete(ctx.Context(), currentUserId(ctx), petId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete pet", nil))
}

func (c *petController) Show(ctx *fiber.Ctx) error {
	petId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pet id")
	}

	res, err := c.service.Show(ctx.Context(), petId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show pet", res))
}

func (c *petController) List(ctx *fiber.Ctx) error {
	var req dto.PetListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list pets", res))
}

func (c *petController) ListMine(ctx *fiber.Ctx) error {
	req := dto.PetListRequest{Owner: currentUserId(ctx).String()}

	res, err := c.service.List(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list my pets", res))
}
