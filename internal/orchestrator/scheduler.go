package orchestrator

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs a full sweep immediately, then one sweep every
// session_interval until the context is canceled by an interrupt.
type Scheduler struct {
	bot *Bot
	log zerolog.Logger
}

// NewScheduler creates a Scheduler for the given bot.
func NewScheduler(bot *Bot, log zerolog.Logger) *Scheduler {
	return &Scheduler{bot: bot, log: log}
}

// Run blocks until ctx is canceled. Sweeps themselves use a background
// context so an in-flight call is never canceled early; shutdown is
// cooperative via the bot's flag.
func (s *Scheduler) Run(ctx context.Context) error {
	// Set the flag as soon as the interrupt lands so even the initial sweep
	// stops between rounds.
	go func() {
		<-ctx.Done()
		s.bot.RequestShutdown()
	}()

	s.log.Info().Msg("running initial sweep")
	s.bot.RunSweep(context.Background())

	interval := s.bot.config.Game.SessionInterval

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		s.bot.RunSweep(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sweeps: %w", err)
	}

	c.Start()
	s.log.Info().Dur("interval", interval).Msg("scheduled sweeps, press Ctrl+C to stop")

	<-ctx.Done()

	s.log.Info().Msg("interrupt received, shutting down")

	// Wait for a sweep that is still running to notice the flag and return.
	<-c.Stop().Done()
	s.log.Info().Msg("scheduler stopped")

	return nil
}
