package domain

import "github.com/shopspring/decimal"

// Account types with distinct balance ranges. Anything else falls into the
// generic range.
const (
	AccountChecking = "checking"
	AccountSavings  = "savings"
)

// AccountStatusActive is the only status the generator emits.
const AccountStatusActive = "active"

// Account is a financial account. UserID is filled in during orchestration
// with the owning identity's username; a standalone generated account leaves
// it empty.
type Account struct {
	AccountID   string          `json:"account_id"`
	AccountType string          `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	OpenDate    Date            `json:"open_date"`
	Status      string          `json:"status"`
	// InterestRate is set only for savings accounts and serializes as null
	// otherwise.
	InterestRate *decimal.Decimal `json:"interest_rate"`
	UserID       string           `json:"user_id,omitempty"`
}
