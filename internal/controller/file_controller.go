package controller

import (
	"ai-studymate-be/internal/pkg/serverutils"
	"ai-studymate-be/internal/service"
	ws "ai-studymate-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Stage(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService service.IFileService
	hub         *ws.Hub
}

func NewFileController(fileService service.IFileService, hub *ws.Hub) IFileController {
	return &fileController{
		fileService: fileService,
		hub:         hub,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/file/v1")
	h.Post("", c.Stage)
	h.Get("", c.List)
	h.Delete(":id", c.Remove)

	h.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	h.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		ws.ServeWs(c.hub, conn)
	}))
}

func (c *fileController) Stage(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return serverutils.NewRequestValidationError("A multipart form with at least one file is required")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return serverutils.NewRequestValidationError("A multipart form with at least one file is required")
	}

	res, err := c.fileService.Stage(ctx.Context(), files)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success stage files", res))
}

func (c *fileController) List(ctx *fiber.Ctx) error {
	res := c.fileService.List(ctx.Context())

	return ctx.JSON(serverutils.SuccessResponse("Success get staged files", res))
}

func (c *fileController) Remove(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewRequestValidationError("Invalid file id")
	}

	c.fileService.Remove(ctx.Context(), id)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove staged file", nil))
}
