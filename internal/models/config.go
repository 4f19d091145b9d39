package models

import "time"

// GameSettings controls how each account session is played.
type GameSettings struct {
	GamesPerSession int
	MinScore        int
	MaxScore        int
	GameDelay       time.Duration
	SessionInterval time.Duration
}

// Config represents the application configuration. Immutable after load.
type Config struct {
	LogLevel string
	LogFile  string

	BaseURL        string
	RequestTimeout time.Duration

	AccountsFilePath   string
	ProxyFilePath      string
	UserAgentsFilePath string

	Game GameSettings
}
