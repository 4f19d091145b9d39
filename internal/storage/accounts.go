package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"piggy-game-bot/internal/models"
)

// LoadAccounts reads the accounts JSON file and returns the enabled accounts.
// Callers treat any error as a degraded start (empty account list), not a
// fatal one.
func LoadAccounts(path string) ([]models.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	var file models.AccountsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse accounts file: %w", err)
	}

	accounts := make([]models.Account, 0, len(file.Accounts))
	for i, account := range file.Accounts {
		if !account.IsEnabled() {
			continue
		}
		if account.Name == "" {
			return nil, fmt.Errorf("account %d is missing a name", i)
		}
		if account.SessionToken == "" {
			return nil, fmt.Errorf("account %q is missing a session token", account.Name)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}
