package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"piggy-game-bot/internal/config"
	"piggy-game-bot/internal/gameclient"
	"piggy-game-bot/internal/logging"
	"piggy-game-bot/internal/models"
	"piggy-game-bot/internal/orchestrator"
	"piggy-game-bot/internal/storage"
	"piggy-game-bot/internal/utils"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	configPath := flag.String("config", "", "path to config file (default config/config.json)")
	flag.Parse()

	// A missing or malformed config file is fatal; everything else degrades.
	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
			With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFile)

	accounts := loadAccounts(cfg, log)
	proxies := loadProxies(cfg, log)
	userAgents := loadUserAgents(cfg, log)

	client := gameclient.New(cfg, proxies, userAgents, log)
	defer client.Close()

	bot := orchestrator.New(cfg, accounts, client, log)

	if *once {
		start := time.Now()
		stats := bot.RunSweep(context.Background())
		log.Info().
			Int("succeeded", stats.Succeeded).
			Int("accounts", stats.Accounts).
			Str("took", utils.FormatDuration(time.Since(start))).
			Msg("single sweep done")
		return
	}

	ctx, stop := utils.NotifyShutdown(context.Background())
	defer stop()

	if err := orchestrator.NewScheduler(bot, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("scheduler failed")
	}
}

func loadAccounts(cfg models.Config, log zerolog.Logger) []models.Account {
	accounts, err := storage.LoadAccounts(cfg.AccountsFilePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.AccountsFilePath).Msg("no accounts loaded")
		return nil
	}
	log.Info().Int("accounts", len(accounts)).Msg("accounts loaded")
	return accounts
}

func loadProxies(cfg models.Config, log zerolog.Logger) *storage.ProxyPool {
	empty, _ := storage.NewProxyPool(nil)

	raw, err := storage.LoadProxies(cfg.ProxyFilePath)
	if err != nil {
		log.Warn().Err(err).Msg("no proxies loaded, using direct connections")
		return empty
	}

	pool, err := storage.NewProxyPool(raw)
	if err != nil {
		log.Warn().Err(err).Msg("proxy file has invalid entries, using direct connections")
		return empty
	}

	log.Info().Int("proxies", pool.Len()).Msg("proxies loaded")
	return pool
}

func loadUserAgents(cfg models.Config, log zerolog.Logger) *storage.UserAgentPool {
	agents, err := storage.LoadUserAgents(cfg.UserAgentsFilePath)
	if err != nil {
		log.Warn().Err(err).Msg("no user agents file, using built-in list")
	}
	pool := storage.NewUserAgentPool(agents)
	log.Info().Int("user_agents", pool.Len()).Msg("user agent pool ready")
	return pool
}
