package payment

import (
	"ProjectRoameo/pkg/response"
	"net/http"
)

var (
	ErrInvalidBank          = response.NewError(http.StatusBadRequest, "unsupported bank")
	ErrInvalidAmount        = response.NewError(http.StatusBadRequest, "amount must be greater than zero")
	ErrMethodNotFound       = response.NewError(http.StatusNotFound, "payment method not found")
	ErrTransactionNotFound  = response.NewError(http.StatusNotFound, "top-up transaction not found")
	ErrCreateVirtualAccount = response.NewError(http.StatusBadGateway, "failed to create virtual account")
	ErrPaymentNotSettled    = response.NewError(http.StatusConflict, "payment is not settled yet")
)
