package orchestrator

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog"

	"piggy-game-bot/internal/gameclient"
	"piggy-game-bot/internal/models"
	"piggy-game-bot/internal/utils"
)

// Bot runs game sessions for every configured account. Config, accounts and
// the API client are injected once at construction; nothing here is global.
type Bot struct {
	config   models.Config
	accounts []models.Account
	client   *gameclient.Client
	log      zerolog.Logger

	shutdownRequested int32

	// Indirections for tests.
	sleep     func(time.Duration)
	pickScore func(min, max int) int
}

// New creates a Bot over the given accounts.
func New(cfg models.Config, accounts []models.Account, client *gameclient.Client, log zerolog.Logger) *Bot {
	return &Bot{
		config:    cfg,
		accounts:  accounts,
		client:    client,
		log:       log,
		sleep:     time.Sleep,
		pickScore: gofakeit.IntRange,
	}
}

// RequestShutdown asks the bot to stop after the current call finishes. The
// in-flight request is never canceled early.
func (b *Bot) RequestShutdown() {
	atomic.StoreInt32(&b.shutdownRequested, 1)
}

// ShutdownRequested reports whether a shutdown has been requested.
func (b *Bot) ShutdownRequested() bool {
	return atomic.LoadInt32(&b.shutdownRequested) == 1
}

// RunSweep plays one session for every account in order and returns the sweep
// totals. Accounts are fully independent: a failure in one never stops the
// others.
func (b *Bot) RunSweep(ctx context.Context) models.SweepStats {
	start := time.Now()
	stats := models.SweepStats{Accounts: len(b.accounts)}

	if len(b.accounts) == 0 {
		b.log.Warn().Msg("no accounts configured, skipping sweep")
		stats.Duration = time.Since(start)
		return stats
	}

	b.log.Info().Int("accounts", len(b.accounts)).Msg("starting sweep")

	for i, account := range b.accounts {
		if b.ShutdownRequested() {
			b.log.Info().Msg("shutdown requested, stopping sweep")
			break
		}

		if b.PlayAccount(ctx, account).Succeeded() {
			stats.Succeeded++
		}

		// 1-3s jitter between accounts.
		if i < len(b.accounts)-1 {
			b.sleep(time.Duration(1000+rand.Intn(2000)) * time.Millisecond)
		}
	}

	stats.Duration = time.Since(start)
	b.log.Info().
		Int("succeeded", stats.Succeeded).
		Int("accounts", stats.Accounts).
		Str("duration", utils.FormatDuration(stats.Duration)).
		Msg("sweep complete")

	return stats
}

// PlayAccount runs up to GamesPerSession rounds for one account. The first
// failed round is treated as "no attempts remaining" and aborts the rest of
// the session for this account.
func (b *Bot) PlayAccount(ctx context.Context, account models.Account) models.AccountResult {
	result := models.AccountResult{Account: account.Name}
	games := b.config.Game.GamesPerSession

	accLog := b.log.With().Str("account", account.Name).Logger()
	if account.Description != "" {
		accLog = accLog.With().Str("desc", account.Description).Logger()
	}

	accLog.Info().Int("games", games).Msg("starting session")

	for round := 1; round <= games; round++ {
		if b.ShutdownRequested() {
			result.Aborted = true
			break
		}

		result.RoundsPlayed++
		if !b.playRound(ctx, accLog, account, round) {
			result.Aborted = true
			accLog.Info().Int("round", round).Msg("no attempts remaining, stopping session")
			break
		}
		result.RoundsRecorded++

		if round < games {
			accLog.Info().Dur("delay", b.config.Game.GameDelay).Msg("waiting before next game")
			b.sleep(b.config.Game.GameDelay)
		}
	}

	accLog.Info().
		Int("recorded", result.RoundsRecorded).
		Int("games", games).
		Msg("session finished")

	return result
}

// playRound walks one round through its states: generate code, check code,
// record score. Returns false as soon as any network step fails.
func (b *Bot) playRound(ctx context.Context, accLog zerolog.Logger, account models.Account, round int) bool {
	code := gameclient.GenerateCode()
	accLog.Info().Int("round", round).Str("code", code).Msg("generated game code")

	if res := b.client.CheckGameCode(ctx, account, code); !res.OK {
		accLog.Error().
			Int("round", round).
			Int("status", res.Status).
			Str("reason", res.Reason).
			Msg("game code check failed")
		return false
	}

	score := b.pickScore(b.config.Game.MinScore, b.config.Game.MaxScore)
	accLog.Info().Int("round", round).Int("score", score).Msg("game finished")

	if res := b.client.RecordScore(ctx, account, score); !res.OK {
		accLog.Error().
			Int("round", round).
			Int("status", res.Status).
			Str("reason", res.Reason).
			Msg("failed to record score")
		return false
	}

	accLog.Info().Int("round", round).Int("score", score).Msg("score recorded")
	return true
}
