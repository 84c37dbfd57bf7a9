package payment

import (
	"ProjectRoameo/internal/entity"
)

type PaymentMethodRequest struct {
	Type          string `json:"type" validate:"required,oneof=bank_account credit_card e_wallet"`
	Label         string `json:"label" validate:"required,max=100"`
	Bank          string `json:"bank" validate:"omitempty,max=50"`
	AccountNumber string `json:"account_number" validate:"required,max=32"`
	IsDefault     bool   `json:"is_default"`
}

type PaymentMethodListResponse struct {
	Methods []entity.PaymentMethod `json:"methods"`
}

type TopUpRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Bank   string  `json:"bank" validate:"required"`
}

type TopUpResponse struct {
	TransactionID string  `json:"transaction_id"`
	VANumber      string  `json:"va_number"`
	Bank          string  `json:"bank"`
	Amount        float64 `json:"amount"`
	ExpiredAt     string  `json:"expired_at"`
	VAURL         string  `json:"va_url"`
	Status        string  `json:"status"`
}

type TopUpListResponse struct {
	Transactions []entity.TopUpTransaction `json:"transactions"`
}

type PaidAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type CallbackAdditionalInfo struct {
	Channel string `json:"channel"`
}

// PaymentCallbackRequest is the Doku SNAP payment notification body.
type PaymentCallbackRequest struct {
	PartnerServiceId   string                 `json:"partnerServiceId"`
	CustomerNo         string                 `json:"customerNo"`
	VirtualAccountNo   string                 `json:"virtualAccountNo"`
	VirtualAccountName string                 `json:"virtualAccountName"`
	TrxId              string                 `json:"trxId"`
	PaymentRequestId   string                 `json:"paymentRequestId"`
	TrxDateTime        string                 `json:"trxDateTime"`
	PaidAmount         PaidAmount             `json:"paidAmount"`
	AdditionalInfo     CallbackAdditionalInfo `json:"additionalInfo"`
}
