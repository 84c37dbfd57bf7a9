package paymentHandler

import (
	paymentService "ProjectRoameo/internal/api/payment/service"
	"ProjectRoameo/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const userIDHeader = "X-User-ID"

type PaymentHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	paymentService paymentService.PaymentService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps paymentService.PaymentService,
) *PaymentHandler {
	return &PaymentHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		paymentService: ps,
	}
}

func (h *PaymentHandler) Start(srv fiber.Router) {
	payment := srv.Group("/payment")

	payment.Get("/methods", h.ListMethods)
	payment.Post("/methods", h.AddMethod)
	payment.Put("/methods/:method_id/default", h.SetDefaultMethod)
	payment.Delete("/methods/:method_id", h.DeleteMethod)

	payment.Get("/topups", h.ListTopUps)
	payment.Post("/topup", h.CreateTopUp)

	// Doku notifies here; no user identity on this route.
	payment.Post("/callback", h.PaymentCallback)
}

func (h *PaymentHandler) userID(ctx *fiber.Ctx) string {
	return ctx.Get(userIDHeader)
}
