package models

// Account represents one configured game account. Accounts are loaded once at
// startup and never mutated during a run.
type Account struct {
	Name         string `json:"name"`
	SessionToken string `json:"session_token"`
	Cookies      string `json:"cookies"`
	Description  string `json:"description"`
	Enabled      *bool  `json:"enabled"`
}

// IsEnabled reports whether the account should be played. A missing "enabled"
// field counts as enabled.
func (a Account) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// AccountsFile mirrors the on-disk accounts.json envelope.
type AccountsFile struct {
	Accounts []Account `json:"accounts"`
}
