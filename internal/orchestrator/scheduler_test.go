package orchestrator

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piggy-game-bot/internal/models"
)

func TestSchedulerRunsImmediatelyThenOnInterval(t *testing.T) {
	fg := &fakeGame{}
	srv := httptest.NewServer(fg.handler())
	defer srv.Close()

	bot := newTestBot(t, srv.URL, []models.Account{account("alice", "good-token")})
	bot.config.Game.SessionInterval = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 1600*time.Millisecond)
	defer cancel()

	err := NewScheduler(bot, zerolog.Nop()).Run(ctx)
	require.NoError(t, err)

	// Initial sweep plus at least one scheduled sweep, 3 rounds each.
	checks, _ := fg.counts()
	assert.GreaterOrEqual(t, checks, 4)
}

func TestSchedulerStopsMidInitialSweep(t *testing.T) {
	fg := &fakeGame{}
	srv := httptest.NewServer(fg.handler())
	defer srv.Close()

	accounts := []models.Account{
		account("alice", "good-token"),
		account("bob", "good-token"),
		account("carol", "good-token"),
	}

	bot := newTestBot(t, srv.URL, accounts)
	bot.sleep = time.Sleep // real delays so the sweep outlives the cancel
	bot.config.Game.GameDelay = 200 * time.Millisecond
	bot.config.Game.SessionInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	done := make(chan error, 1)
	go func() { done <- NewScheduler(bot, zerolog.Nop()).Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("initial sweep ignored the interrupt")
	}

	// The interrupt landed during round 1 of account 1, so the sweep must
	// stop well short of 3 accounts x 3 rounds.
	checks, _ := fg.counts()
	assert.Less(t, checks, 9)
	assert.LessOrEqual(t, checks, 3)
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	bot := newTestBot(t, "http://127.0.0.1:0", nil)
	bot.config.Game.SessionInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	done := make(chan error, 1)
	go func() { done <- NewScheduler(bot, zerolog.Nop()).Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.True(t, bot.ShutdownRequested())
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
