package controller

import (
	"petmedia-be/internal/dto"
	"petmedia-be/internal/pkg/apperrors"
	"petmedia-be/internal/pkg/serverutils"
	"petmedia-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	UploadImage(ctx *fiber.Ctx) error
	DeleteImage(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
}

func NewUploadController(service service.IUploadService) IUploadController {
	return &uploadController{service: service}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/image", c.UploadImage)
	h.Delete("/image", c.DeleteImage)
}

func (c *uploadController) UploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return apperrors.NewValidation("image file is required")
	}

	category := ctx.FormValue("category")
	url, err := c.service.UploadImage(ctx.Context(), currentUserId(ctx), category, file)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload image", dto.UploadImageResponse{Url: url}))
}

func (c *uploadController) DeleteImage(ctx *fiber.Ctx) error {
	var req dto.DeleteImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.DeleteImage(ctx.Context(), req.Url); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete image", dto.UploadImageResponse{Url: req.Url}))
}
