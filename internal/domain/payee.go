package domain

import "github.com/shopspring/decimal"

// Payee is a bill-payment recipient. It carries no reference to any identity
// or account.
type Payee struct {
	PayeeID string `json:"payee_id"`
	Name    string `json:"name"`
	// Nickname defaults to the legal name.
	Nickname string `json:"nickname"`
	// Account and routing numbers are plain digit strings; no checksum or
	// length validation is applied.
	AccountNumber     string          `json:"account_number"`
	RoutingNumber     string          `json:"routing_number"`
	Address           Address         `json:"address"`
	Phone             string          `json:"phone"`
	Category          string          `json:"category"`
	LastPaymentDate   Date            `json:"last_payment_date"`
	LastPaymentAmount decimal.Decimal `json:"last_payment_amount"`
}
