package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// NotifyShutdown returns a context that is canceled on SIGINT or SIGTERM.
// Cancellation only breaks the scheduler's wait; network calls already in
// flight run to completion.
func NotifyShutdown(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
