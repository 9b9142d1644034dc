// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package profile loads a user's profile after signup. Provisioning
// writes land with eventual consistency, so a profile may not be visible
// to the first lookup; the loader retries on a bounded schedule and
// exposes an explicit state machine instead of surfacing raw misses.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"blueprintos/internal/models"
)

// State is the loader's externally visible phase.
type State string

const (
	StatePending  State = "pending"
	StateRetrying State = "retrying"
	StateLoaded   State = "loaded"
	StateFailed   State = "failed"
)

// Status is a snapshot of the loader: the current state and, while
// retrying, the attempt number.
type Status struct {
	State   State `json:"state"`
	Attempt int   `json:"attempt,omitempty"`
}

// defaultDelays is the increasing wait schedule between attempts. Six
// attempts total: the first immediately, five retries after these waits.
var defaultDelays = []time.Duration{
	1 * time.Second,
	1500 * time.Millisecond,
	2 * time.Second,
	2500 * time.Millisecond,
	3 * time.Second,
}

// ErrProfileNotFound is returned when every attempt came back empty. The
// caller surfaces this as a recoverable state: manual retry, reload, or
// (in development) forced profile creation.
var ErrProfileNotFound = errors.New("profile: not found after retries")

// Finder is the slice of the profile store the loader needs.
type Finder interface {
	FindByID(id uuid.UUID) (*models.Profile, error)
}

// Loader retrieves a profile with bounded retries. Cancelling the
// context aborts the remaining schedule immediately.
type Loader struct {
	finder Finder
	delays []time.Duration

	mu      sync.Mutex
	state   State
	attempt int
}

// NewLoader creates a loader with the default retry schedule.
func NewLoader(finder Finder) *Loader {
	return &Loader{finder: finder, delays: defaultDelays, state: StatePending}
}

// NewLoaderWithDelays creates a loader with a custom schedule; tests use
// zero delays to run the full attempt sequence without sleeping.
func NewLoaderWithDelays(finder Finder, delays []time.Duration) *Loader {
	return &Loader{finder: finder, delays: delays, state: StatePending}
}

// Status returns the loader's current snapshot.
func (l *Loader) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := Status{State: l.state}
	if l.state == StateRetrying {
		s.Attempt = l.attempt
	}
	return s
}

func (l *Loader) setState(state State, attempt int) {
	l.mu.Lock()
	l.state = state
	l.attempt = attempt
	l.mu.Unlock()
}

// Load fetches the profile, retrying misses and lookup errors on the
// configured schedule. Returns ErrProfileNotFound when the schedule is
// exhausted, or the context error on cancellation.
func (l *Loader) Load(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	attempt := 0
	maxAttempts := len(l.delays) + 1

	backoff := retry.WithMaxRetries(uint64(len(l.delays)), retry.BackoffFunc(func() (time.Duration, bool) {
		// attempt has already been incremented for the try that just
		// missed; its delay index is attempt-1.
		if attempt-1 < len(l.delays) {
			return l.delays[attempt-1], false
		}
		return 0, true
	}))

	var loaded *models.Profile
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			l.setState(StateRetrying, attempt)
		}

		p, err := l.finder.FindByID(userID)
		if err != nil {
			slog.Error("profile fetch failed", "user", userID, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		if p == nil {
			slog.Warn("profile not visible yet", "user", userID, "attempt", attempt, "max", maxAttempts)
			return retry.RetryableError(fmt.Errorf("profile %s not found", userID))
		}

		loaded = p
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			l.setState(StateFailed, attempt)
			return nil, ctx.Err()
		}
		l.setState(StateFailed, attempt)
		slog.Error("profile not found after retries", "user", userID, "attempts", attempt)
		return nil, ErrProfileNotFound
	}

	l.setState(StateLoaded, attempt)
	return loaded, nil
}
