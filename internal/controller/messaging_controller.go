package controller

import (
	"petmedia-be/internal/dto"
	"petmedia-be/internal/pkg/serverutils"
	"petmedia-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMessagingController interface {
	RegisterRoutes(r fiber.Router)
	GetOrCreateThread(ctx *fiber.Ctx) error
	ListThreads(ctx *fiber.Ctx) error
	GetThread(ctx *fiber.Ctx) error
	ListMessages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
}

type messagingController struct {
	service service.IMessagingService
}

func NewMessagingController(service service.IMessagingService) IMessagingController {
	return &messagingController{service: service}
}

func (c *messagingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/messaging/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/thread", c.GetOrCreateThread)
	h.Get("/thread", c.ListThreads)
	h.Get("/thread/:id", c.GetThread)
	h.Get("/thread/:id/messages", c.ListMessages)
	h.Post("/thread/:id/messages", c.SendMessage)
	h.Post("/thread/:id/read", c.MarkRead)
}

func (c *messagingController) GetOrCreateThread(ctx *fiber.Ctx) error {
	var req dto.GetOrCreateThreadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GetOrCreateThread(ctx.Context(), currentUserId(ctx), req.OtherUserId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get or create thread", res))
}

func (c *messagingController) ListThreads(ctx *fiber.Ctx) error {
	res, err := c.service.ListUserThreads(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list threads", res))
}

func (c *messagingController) GetThread(ctx *fiber.Ctx) error {
	res, err := c.service.GetThread(ctx.Context(), currentUserId(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get thread", res))
}

func (c *messagingController) ListMessages(ctx *fiber.Ctx) error {
	res, err := c.service.ListThreadMessages(ctx.Context(), currentUserId(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list messages", res))
}

func (c *messagingController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), currentUserId(ctx), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *messagingController) MarkRead(ctx *fiber.Ctx) error {
	res, err := c.service.MarkRead(ctx.Context(), currentUserId(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success mark read", res))
}
