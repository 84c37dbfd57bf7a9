package assistantHandler

import (
	"ProjectRoameo/internal/api/assistant"
	"ProjectRoameo/internal/entity"
	contextPkg "ProjectRoameo/pkg/context"
	"ProjectRoameo/pkg/handlerUtil"
	"ProjectRoameo/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AssistantHandler) HandleListFAQs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list faqs request")

	entries := h.assistantService.FAQ().Load(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, assistant.FAQListResponse{
			Entries: entries,
		})
	}
}

func (h *AssistantHandler) HandleUpdateFAQs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update faqs request")

	var req assistant.UpdateFAQsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	seen := make(map[string]struct{}, len(req.Entries))
	entries := make([]entity.FAQEntry, 0, len(req.Entries))
	for _, p := range req.Entries {
		if _, dup := seen[p.ID]; dup {
			return errHandler.Handle(ctx, requestID, assistant.ErrDuplicateFAQID, ctx.Path(), "handle_update_faqs")
		}
		seen[p.ID] = struct{}{}

		lastUpdated := p.LastUpdated
		if lastUpdated == "" {
			lastUpdated = time.Now().Format("2006-01-02")
		}

		entries = append(entries, entity.FAQEntry{
			ID:             p.ID,
			Question:       p.Question,
			Answer:         p.Answer,
			LastUpdated:    lastUpdated,
			Tags:           p.Tags,
			TargetPages:    p.TargetPages,
			PageKeywords:   p.PageKeywords,
			SystemCategory: p.SystemCategory,
		})
	}

	if err := h.assistantService.FAQ().Save(c, entries); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err,
		}).Error("Failed to persist faq entries")
		return errHandler.Handle(ctx, requestID, assistant.ErrFAQStoreFailure, ctx.Path(), "handle_update_faqs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "FAQ entries updated successfully",
			"count":   len(entries),
		})
	}
}
