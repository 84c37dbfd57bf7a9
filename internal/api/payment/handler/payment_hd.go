package paymentHandler

import (
	"ProjectRoameo/internal/api/payment"
	contextPkg "ProjectRoameo/pkg/context"
	"ProjectRoameo/pkg/handlerUtil"
	"ProjectRoameo/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PaymentHandler) ListMethods(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list payment methods request")

	userID := h.userID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	methods, err := h.paymentService.Methods().List(c, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_payment_methods")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, payment.PaymentMethodListResponse{
			Methods: methods,
		})
	}
}

func (h *PaymentHandler) AddMethod(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing add payment method request")

	userID := h.userID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req payment.PaymentMethodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	method, err := h.paymentService.Methods().Add(c, userID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_payment_method")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, method)
	}
}

func (h *PaymentHandler) SetDefaultMethod(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.userID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	methodID := ctx.Params("method_id")
	if methodID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("method_id is required"), ctx.Path())
	}

	if err := h.paymentService.Methods().SetDefault(c, userID, methodID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "set_default_payment_method")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Default payment method updated",
		})
	}
}

func (h *PaymentHandler) DeleteMethod(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.userID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	methodID := ctx.Params("method_id")
	if methodID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("method_id is required"), ctx.Path())
	}

	if err := h.paymentService.Methods().Delete(c, userID, methodID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_payment_method")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Payment method removed",
		})
	}
}

func (h *PaymentHandler) ListTopUps(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userID := h.userID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	transactions, err := h.paymentService.TopUp().List(c, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_topups")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, payment.TopUpListResponse{
			Transactions: transactions,
		})
	}
}

func (h *PaymentHandler) CreateTopUp(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create top-up request")

	userID := h.userID(ctx)
	if userID == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req payment.TopUpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.paymentService.TopUp().CreateTopUp(c, userID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_topup")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, response)
	}
}

func (h *PaymentHandler) PaymentCallback(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req payment.PaymentCallbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	h.log.WithFields(log.Fields{
		"request_id":  requestID,
		"trxId":       req.TrxId,
		"paidAmount":  req.PaidAmount.Value,
		"channel":     req.AdditionalInfo.Channel,
		"xExternalID": ctx.Get("X-EXTERNAL-ID"),
	}).Info("Received payment callback")

	if err := h.paymentService.TopUp().ProcessCallback(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_payment_callback")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"responseCode":    "2002500",
			"responseMessage": "success",
			"virtualAccountData": map[string]interface{}{
				"partnerServiceId": req.PartnerServiceId,
				"customerNo":       req.CustomerNo,
				"virtualAccountNo": req.VirtualAccountNo,
				"paymentRequestId": req.PaymentRequestId,
				"trxId":            req.TrxId,
				"trxDateTime":      req.TrxDateTime,
			},
		})
	}
}
