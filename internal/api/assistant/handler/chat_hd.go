package assistantHandler

import (
	"ProjectRoameo/internal/api/assistant"
	contextPkg "ProjectRoameo/pkg/context"
	"ProjectRoameo/pkg/handlerUtil"
	"ProjectRoameo/pkg/log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AssistantHandler) HandleChatMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat message request")

	var req assistant.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if strings.TrimSpace(req.Message) == "" {
		return errHandler.Handle(ctx, requestID, assistant.ErrEmptyMessage, ctx.Path(), "handle_chat_message")
	}

	result := h.assistantService.Composer().Compose(c, req.Message, req.CurrentPath)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.ChatResponse{
			Message:    result.Message,
			Navigation: result.Navigation,
		})
	}
}
