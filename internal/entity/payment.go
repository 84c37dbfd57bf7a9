package entity

import (
	"time"
)

const (
	TopUpStatusPending = "pending"
	TopUpStatusPaid    = "paid"
	TopUpStatusExpired = "expired"
)

// PaymentMethod is one saved entry on the profile editor's payment-settings
// panel. AccountNumber is stored masked; the full number never reaches us.
type PaymentMethod struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Label         string    `json:"label"`
	Bank          string    `json:"bank"`
	AccountNumber string    `json:"account_number"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TopUpTransaction tracks one Doku virtual-account top-up from creation to
// the paid/expired callback.
type TopUpTransaction struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Amount    float64    `json:"amount"`
	VANumber  string     `json:"va_number"`
	Bank      string     `json:"bank"`
	Status    string     `json:"status"`
	VAURL     string     `json:"va_url"`
	ExpiredAt string     `json:"expired_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
