package assistantHandler

import (
	assistantService "ProjectRoameo/internal/api/assistant/service"
	"ProjectRoameo/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.AssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.AssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	assistant := srv.Group("/assistant")

	// Stateless one-shot composition
	assistant.Post("/message", h.HandleChatMessage)

	// FAQ corpus administration
	assistant.Get("/faqs", h.HandleListFAQs)
	assistant.Put("/faqs", h.HandleUpdateFAQs)

	// Stateful widget session
	assistant.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	assistant.Get("/ws", websocket.New(h.HandleSession))
}
