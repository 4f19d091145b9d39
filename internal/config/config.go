package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"piggy-game-bot/internal/models"
)

// Defaults applied when the config file omits a key. Delay and interval values
// are seconds in the file.
const (
	defaultLogLevel        = "INFO"
	defaultLogFile         = "piggy_game_bot.log"
	defaultBaseURL         = "https://app.piggycell.io"
	defaultRequestTimeout  = 30
	defaultGamesPerSession = 3
	defaultMinScore        = 65
	defaultMaxScore        = 100
	defaultGameDelay       = 1
	defaultSessionInterval = 300

	defaultAccountsFile   = "config/accounts.json"
	defaultProxyFile      = "proxy.txt"
	defaultUserAgentsFile = "user_agents.txt"
)

// Load reads the JSON config file at path and returns the resulting Config.
// A missing or malformed config file is an error; the caller is expected to
// treat it as fatal.
func Load(path string) (models.Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("config")
		v.AddConfigPath(".")
	}

	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_file", defaultLogFile)
	v.SetDefault("base_url", defaultBaseURL)
	v.SetDefault("request_timeout", defaultRequestTimeout)
	v.SetDefault("accounts_file", defaultAccountsFile)
	v.SetDefault("proxy_file", defaultProxyFile)
	v.SetDefault("user_agents_file", defaultUserAgentsFile)
	v.SetDefault("game_settings.games_per_session", defaultGamesPerSession)
	v.SetDefault("game_settings.min_score", defaultMinScore)
	v.SetDefault("game_settings.max_score", defaultMaxScore)
	v.SetDefault("game_settings.game_delay", defaultGameDelay)
	v.SetDefault("game_settings.session_interval", defaultSessionInterval)

	if err := v.ReadInConfig(); err != nil {
		return models.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := models.Config{
		LogLevel:           v.GetString("log_level"),
		LogFile:            v.GetString("log_file"),
		BaseURL:            v.GetString("base_url"),
		RequestTimeout:     time.Duration(v.GetInt("request_timeout")) * time.Second,
		AccountsFilePath:   v.GetString("accounts_file"),
		ProxyFilePath:      v.GetString("proxy_file"),
		UserAgentsFilePath: v.GetString("user_agents_file"),
		Game: models.GameSettings{
			GamesPerSession: v.GetInt("game_settings.games_per_session"),
			MinScore:        v.GetInt("game_settings.min_score"),
			MaxScore:        v.GetInt("game_settings.max_score"),
			GameDelay:       time.Duration(v.GetInt("game_settings.game_delay")) * time.Second,
			SessionInterval: time.Duration(v.GetInt("game_settings.session_interval")) * time.Second,
		},
	}

	if cfg.Game.GamesPerSession < 1 {
		return models.Config{}, fmt.Errorf("invalid games_per_session: %d", cfg.Game.GamesPerSession)
	}
	if cfg.Game.MinScore > cfg.Game.MaxScore {
		return models.Config{}, fmt.Errorf("invalid score range: min %d > max %d", cfg.Game.MinScore, cfg.Game.MaxScore)
	}
	if cfg.Game.GameDelay < 0 {
		return models.Config{}, fmt.Errorf("invalid game_delay: %s", cfg.Game.GameDelay)
	}
	if cfg.Game.SessionInterval <= 0 {
		return models.Config{}, fmt.Errorf("invalid session_interval: %s", cfg.Game.SessionInterval)
	}

	return cfg, nil
}

// DefaultConfig returns the configuration used when no config file overrides
// anything. Handy for tests.
func DefaultConfig() models.Config {
	return models.Config{
		LogLevel:           defaultLogLevel,
		LogFile:            defaultLogFile,
		BaseURL:            defaultBaseURL,
		RequestTimeout:     defaultRequestTimeout * time.Second,
		AccountsFilePath:   defaultAccountsFile,
		ProxyFilePath:      defaultProxyFile,
		UserAgentsFilePath: defaultUserAgentsFile,
		Game: models.GameSettings{
			GamesPerSession: defaultGamesPerSession,
			MinScore:        defaultMinScore,
			MaxScore:        defaultMaxScore,
			GameDelay:       defaultGameDelay * time.Second,
			SessionInterval: defaultSessionInterval * time.Second,
		},
	}
}
