package profileHandler

import (
	"ProjectRoameo/internal/api/profile"
	contextPkg "ProjectRoameo/pkg/context"
	"ProjectRoameo/pkg/handlerUtil"
	"ProjectRoameo/pkg/log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ProfileHandler) UpdateAvatar(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update avatar request")

	userID := h.userID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	avatarFile, err := ctx.FormFile("avatar")
	if err != nil {
		return errHandler.Handle(ctx, requestID, profile.ErrInvalidAvatarFile, ctx.Path(), "update_avatar")
	}

	req := profile.UpdateAvatarRequest{
		AvatarFile: avatarFile,
		X:          formInt(ctx, "x", 0),
		Y:          formInt(ctx, "y", 0),
		Width:      formInt(ctx, "width", 0),
		Height:     formInt(ctx, "height", 0),
		Rotate:     formInt(ctx, "rotate", 0),
		Zoom:       formFloat(ctx, "zoom", 1.0),
	}

	response, err := h.profileService.Avatar().UpdateAvatar(c, userID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_avatar")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func formInt(ctx *fiber.Ctx, key string, fallback int) int {
	v, err := strconv.Atoi(ctx.FormValue(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func formFloat(ctx *fiber.Ctx, key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(ctx.FormValue(key, strconv.FormatFloat(fallback, 'f', -1, 64)), 64)
	if err != nil {
		return fallback
	}
	return v
}
