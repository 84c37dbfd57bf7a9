package doku

import (
	"time"
)

const (
	BankBCA      = "VIRTUAL_ACCOUNT_BCA"
	BankMANDIRI  = "VIRTUAL_ACCOUNT_BANK_MANDIRI"
	BankBRI      = "VIRTUAL_ACCOUNT_BRI"
	BankBNI      = "VIRTUAL_ACCOUNT_BNI"
	BankDANAMON  = "VIRTUAL_ACCOUNT_BANK_DANAMON"
	BankPERMATA  = "VIRTUAL_ACCOUNT_BANK_PERMATA"
	BankMAYBANK  = "VIRTUAL_ACCOUNT_MAYBANK"
	BankBTN      = "VIRTUAL_ACCOUNT_BTN"
	BankBSI      = "VIRTUAL_ACCOUNT_BSI"
	BankCIMB     = "VIRTUAL_ACCOUNT_BANK_CIMB"
	BankSINARMAS = "VIRTUAL_ACCOUNT_SINARMAS"
	BankDOKU     = "VIRTUAL_ACCOUNT_DOKU"
)

type CreateVaRequest struct {
	UserID          string
	Name            string
	Email           string
	Phone           string
	Amount          float64
	TrxId           string
	Bank            string
	ExpiredDuration time.Duration
	ReusableStatus  bool
}

type CreateVaResponse struct {
	VirtualAccountNo  string
	Bank              string
	Amount            float64
	TransactionID     string
	ExpiryDate        string
	VirtualAccountURL string
}
