package profileHandler

import (
	profileService "ProjectRoameo/internal/api/profile/service"
	"ProjectRoameo/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// The gateway terminates authentication and forwards the caller's identity in
// this header.
const userIDHeader = "X-User-ID"

type ProfileHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	profileService profileService.ProfileService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps profileService.ProfileService,
) *ProfileHandler {
	return &ProfileHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		profileService: ps,
	}
}

func (h *ProfileHandler) Start(srv fiber.Router) {
	profile := srv.Group("/profile")

	profile.Get("/", h.GetProfile)
	profile.Put("/", h.UpdateProfile)
	profile.Put("/password", h.ChangePassword)
	profile.Put("/avatar", h.UpdateAvatar)
}

func (h *ProfileHandler) userID(ctx *fiber.Ctx) string {
	return ctx.Get(userIDHeader)
}
