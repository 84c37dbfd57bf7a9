package profileHandler

import (
	"ProjectRoameo/internal/api/profile"
	contextPkg "ProjectRoameo/pkg/context"
	"ProjectRoameo/pkg/handlerUtil"
	"ProjectRoameo/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ProfileHandler) ChangePassword(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing change password request")

	userID := h.userID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req profile.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.profileService.Password().ChangePassword(c, userID, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "change_password")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Password changed successfully",
		})
	}
}
