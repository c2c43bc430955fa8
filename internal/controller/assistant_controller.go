package controller

import (
	"io"
	"strconv"

	"helpdesk-assistant-be/internal/dto"
	"helpdesk-assistant-be/internal/pkg/serverutils"
	"helpdesk-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Sync(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
	indexerService   service.IIndexerService
}

func NewAssistantController(
	assistantService service.IAssistantService,
	indexerService service.IIndexerService,
) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
		indexerService:   indexerService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("chat", c.Chat)
	h.Get("history", c.History)
	h.Get("status", c.Status)
	h.Post("sync", c.Sync)
	h.Post("upload", c.Upload)
	h.Get("health", c.Health)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *assistantController) History(ctx *fiber.Ctx) error {
	sessionId := ctx.Query("session_id")
	if sessionId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session_id is required")
	}
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))

	res, err := c.assistantService.History(ctx.Context(), sessionId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show history", res))
}

func (c *assistantController) Status(ctx *fiber.Ctx) error {
	res, err := c.assistantService.Status(ctx.Context(), ctx.Query("session_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show status", res))
}

func (c *assistantController) Sync(ctx *fiber.Ctx) error {
	res, err := c.indexerService.Sync(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success sync knowledge base", res))
}

func (c *assistantController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.indexerService.Upload(ctx.Context(), fileHeader.Filename, content)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload document", res))
}

func (c *assistantController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
