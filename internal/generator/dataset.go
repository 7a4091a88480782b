package generator

import (
	"context"
	"fmt"

	"github.com/tbarrett/bankfixtures/internal/domain"
)

// Dataset contains the four generated fixture collections in insertion order.
type Dataset struct {
	Identities   []domain.Identity    `json:"users"`
	Accounts     []domain.Account     `json:"accounts"`
	Transactions []domain.Transaction `json:"transactions"`
	Payees       []domain.Payee       `json:"payees"`
}

// Generate synthesises the linked dataset: users own accounts, accounts own
// transactions, payees stand alone. It respects context cancellation.
//
// Two fixture conventions are load-bearing for the downstream scenarios and
// must not be generalized: the second user generated (index 1) is always
// enrolled in 2FA, and the first account per user is checking while the rest
// are savings.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	var ds Dataset

	for i := 0; i < g.cfg.Users; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}

		identity := g.Identity(i == 1)
		ds.Identities = append(ds.Identities, identity)

		for j := 0; j < g.cfg.AccountsPerUser; j++ {
			accountType := domain.AccountSavings
			if j == 0 {
				accountType = domain.AccountChecking
			}
			account := g.Account(accountType, nil)
			account.UserID = identity.Username
			ds.Accounts = append(ds.Accounts, account)

			for k := 0; k < g.cfg.TransactionsPerAccount; k++ {
				ds.Transactions = append(ds.Transactions, g.Transaction(account.AccountID, TransactionOpts{}))
			}
		}
	}

	for i := 0; i < g.cfg.Payees; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		ds.Payees = append(ds.Payees, g.Payee())
	}

	return ds, nil
}

// Validate checks referential integrity of the informal string foreign keys:
// every account must point at a generated username and every transaction at a
// generated account id. Generation never enforces this, so callers run it as
// a post-generation pass.
func (ds Dataset) Validate() error {
	usernames := make(map[string]struct{}, len(ds.Identities))
	for _, identity := range ds.Identities {
		usernames[identity.Username] = struct{}{}
	}

	accountIDs := make(map[string]struct{}, len(ds.Accounts))
	for _, account := range ds.Accounts {
		if _, ok := usernames[account.UserID]; !ok {
			return fmt.Errorf("account %s references unknown user %q", account.AccountID, account.UserID)
		}
		accountIDs[account.AccountID] = struct{}{}
	}

	for _, tx := range ds.Transactions {
		if _, ok := accountIDs[tx.AccountID]; !ok {
			return fmt.Errorf("transaction %s references unknown account %q", tx.TransactionID, tx.AccountID)
		}
	}

	return nil
}
