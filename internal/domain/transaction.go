package domain

import "github.com/shopspring/decimal"

// TransactionStatusCleared is the only status the generator emits; no pending
// or failed entries are produced.
const TransactionStatusCleared = "cleared"

// Transaction is a ledger entry against one account.
type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Date          Date            `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	IsDebit       bool            `json:"is_debit"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	// BalanceAfter is always null: running balances are not computed, and
	// downstream scenarios rely on the field staying unset.
	BalanceAfter *decimal.Decimal `json:"balance_after"`
	Status       string           `json:"status"`
}
