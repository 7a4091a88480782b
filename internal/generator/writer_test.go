package generator

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/tbarrett/bankfixtures/internal/domain"
)

func TestWriteDatasetRoundTrip(t *testing.T) {
	cfg := Config{Users: 2, AccountsPerUser: 2, TransactionsPerAccount: 3, Payees: 2, Seed: 42}
	ds := generateDataset(t, cfg)

	dir := t.TempDir()
	if err := WriteDataset(ds, dir, zap.NewNop()); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	var identities []domain.Identity
	readJSONFile(t, filepath.Join(dir, UsersFile), &identities)
	if len(identities) != len(ds.Identities) {
		t.Fatalf("users.json has %d records, want %d", len(identities), len(ds.Identities))
	}

	var accounts []domain.Account
	readJSONFile(t, filepath.Join(dir, AccountsFile), &accounts)
	if len(accounts) != len(ds.Accounts) {
		t.Fatalf("accounts.json has %d records, want %d", len(accounts), len(ds.Accounts))
	}
	for i, account := range accounts {
		if !account.Balance.Equal(ds.Accounts[i].Balance) {
			t.Fatalf("account %d balance drifted: wrote %s, read %s", i, ds.Accounts[i].Balance, account.Balance)
		}
	}

	var transactions []domain.Transaction
	readJSONFile(t, filepath.Join(dir, TransactionsFile), &transactions)
	if len(transactions) != len(ds.Transactions) {
		t.Fatalf("transactions.json has %d records, want %d", len(transactions), len(ds.Transactions))
	}
	for i, tx := range transactions {
		if !tx.Amount.Equal(ds.Transactions[i].Amount) {
			t.Fatalf("transaction %d amount drifted: wrote %s, read %s", i, ds.Transactions[i].Amount, tx.Amount)
		}
	}

	var payees []domain.Payee
	readJSONFile(t, filepath.Join(dir, PayeesFile), &payees)
	if len(payees) != len(ds.Payees) {
		t.Fatalf("payees.json has %d records, want %d", len(payees), len(ds.Payees))
	}
}

// Decimal fields must reach disk as JSON strings and nullable fields as
// literal nulls; check the raw document, not just the decoded structs.
func TestWriteDatasetFieldEncoding(t *testing.T) {
	ds := generateDataset(t, Config{Users: 1, AccountsPerUser: 2, TransactionsPerAccount: 1, Payees: 1, Seed: 5})

	dir := t.TempDir()
	if err := WriteDataset(ds, dir, zap.NewNop()); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	var rawAccounts []map[string]json.RawMessage
	readJSONFile(t, filepath.Join(dir, AccountsFile), &rawAccounts)
	for i, account := range rawAccounts {
		balance := string(account["balance"])
		if len(balance) < 2 || balance[0] != '"' {
			t.Fatalf("account %d balance %s is not a JSON string", i, balance)
		}
		rate := string(account["interest_rate"])
		if ds.Accounts[i].AccountType == domain.AccountSavings {
			if rate == "null" {
				t.Fatalf("savings account %d has null interest_rate", i)
			}
		} else if rate != "null" {
			t.Fatalf("account %d interest_rate = %s, want null", i, rate)
		}
	}

	var rawTransactions []map[string]json.RawMessage
	readJSONFile(t, filepath.Join(dir, TransactionsFile), &rawTransactions)
	for i, tx := range rawTransactions {
		if string(tx["balance_after"]) != "null" {
			t.Fatalf("transaction %d balance_after = %s, want null", i, tx["balance_after"])
		}
		amount := string(tx["amount"])
		if len(amount) < 2 || amount[0] != '"' {
			t.Fatalf("transaction %d amount %s is not a JSON string", i, amount)
		}
	}
}

func TestWriteDatasetOverwrites(t *testing.T) {
	dir := t.TempDir()

	big := generateDataset(t, Config{Users: 3, AccountsPerUser: 2, TransactionsPerAccount: 2, Payees: 3, Seed: 1})
	if err := WriteDataset(big, dir, zap.NewNop()); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	small := generateDataset(t, Config{Users: 1, AccountsPerUser: 1, TransactionsPerAccount: 1, Payees: 1, Seed: 2})
	if err := WriteDataset(small, dir, zap.NewNop()); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	var identities []domain.Identity
	readJSONFile(t, filepath.Join(dir, UsersFile), &identities)
	if len(identities) != 1 {
		t.Fatalf("users.json has %d records after overwrite, want 1", len(identities))
	}
}

func TestWriteDatasetCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "test_data")

	ds, err := New(Config{Users: 1, AccountsPerUser: 1, TransactionsPerAccount: 1, Payees: 1, Seed: 3}).Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := WriteDataset(ds, dir, zap.NewNop()); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	for _, name := range []string{UsersFile, AccountsFile, TransactionsFile, PayeesFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

func readJSONFile(t *testing.T, path string, out any) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
}
