package models

import "time"

// StepResult is the outcome of a single network step (check code or record
// score). Failures carry the HTTP status (0 for transport errors) and a short
// reason instead of being signaled through panics.
type StepResult struct {
	OK     bool
	Status int
	Reason string
}

// StepOK returns a successful step result.
func StepOK(status int) StepResult {
	return StepResult{OK: true, Status: status}
}

// StepFailed returns a failed step result with the given status and reason.
func StepFailed(status int, reason string) StepResult {
	return StepResult{Status: status, Reason: reason}
}

// AccountResult summarizes the rounds played for one account within a sweep.
type AccountResult struct {
	Account        string
	RoundsPlayed   int
	RoundsRecorded int
	Aborted        bool
}

// Succeeded reports whether at least one round recorded a score.
func (r AccountResult) Succeeded() bool {
	return r.RoundsRecorded > 0
}

// SweepStats summarizes one full pass over all configured accounts.
type SweepStats struct {
	Accounts  int
	Succeeded int
	Duration  time.Duration
}
