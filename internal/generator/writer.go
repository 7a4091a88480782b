package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Fixed output filenames, one JSON array per collection.
const (
	UsersFile        = "users.json"
	AccountsFile     = "accounts.json"
	TransactionsFile = "transactions.json"
	PayeesFile       = "payees.json"
)

// WriteDataset serializes the four collections into their fixture files under
// dir, creating the directory if needed and overwriting existing files. The
// writes are independent: a failure part way through leaves earlier files in
// place.
func WriteDataset(ds Dataset, dir string, logger *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := []struct {
		name    string
		data    any
		records int
	}{
		{UsersFile, ds.Identities, len(ds.Identities)},
		{AccountsFile, ds.Accounts, len(ds.Accounts)},
		{TransactionsFile, ds.Transactions, len(ds.Transactions)},
		{PayeesFile, ds.Payees, len(ds.Payees)},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeJSON(path, f.data); err != nil {
			return err
		}
		logger.Info("wrote fixture file",
			zap.String("path", path),
			zap.Int("records", f.records),
		)
	}

	return nil
}

func writeJSON(path string, data any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode json for %s: %w", path, err)
	}
	return nil
}
