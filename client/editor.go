package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Editor states.
const (
	EDITOR_STATE_IDLE   = "idle"
	EDITOR_STATE_DIRTY  = "dirty"
	EDITOR_STATE_SAVING = "saving"
	EDITOR_STATE_SAVED  = "saved"
	EDITOR_STATE_ERROR  = "error"
)

// How long the saved indicator stays up before falling back to idle.
const DEFAULT_SAVED_HOLD = 1500 * time.Millisecond

var ErrSaveInProgress = errors.New("保存処理の実行中です")

// SaveFunc persists the current value and returns the server's canonical
// copy, which becomes the new baseline.
type SaveFunc[T any] func(ctx context.Context, value T) (T, error)

// Editor tracks one form's unsaved-changes lifecycle:
//
//	idle -> dirty -> saving -> saved -> idle
//	                    \-> error
//
// Dirtiness is decided by comparing a serialized snapshot of the current
// value against the baseline, so reverting every field by hand returns the
// editor to idle. Applying the server's response after a save must not look
// like a user edit; a guard flag suppresses the dirty check until the next
// turn of the event loop.
type Editor[T any] struct {
	mu         sync.Mutex
	state      string
	value      T
	baseline   string
	guard      bool
	save       SaveFunc[T]
	savedHold  time.Duration
	savedTimer *time.Timer
	lastError  string
}

func NewEditor[T any](initial T, save SaveFunc[T]) *Editor[T] {
	return &Editor[T]{
		state:     EDITOR_STATE_IDLE,
		value:     initial,
		baseline:  snapshot(initial),
		save:      save,
		savedHold: DEFAULT_SAVED_HOLD,
	}
}

// SetSavedHold overrides how long the saved state lingers. Mainly for tests.
func (e *Editor[T]) SetSavedHold(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.savedHold = d
}

func (e *Editor[T]) State() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor[T]) Value() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

func (e *Editor[T]) IsDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == EDITOR_STATE_DIRTY
}

// LastError is the message from the most recent failed save; empty once the
// user edits again or a save succeeds.
func (e *Editor[T]) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastError
}

// SetValue records an edit. While the guard is up (a server response being
// applied) or a save is in flight, the value updates but the state does not.
func (e *Editor[T]) SetValue(v T) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.value = v
	if e.guard || e.state == EDITOR_STATE_SAVING {
		return
	}

	e.lastError = ""
	if snapshot(v) == e.baseline {
		e.state = EDITOR_STATE_IDLE
		return
	}
	e.state = EDITOR_STATE_DIRTY
}

// Reset replaces the value and baseline together, e.g. after a fresh fetch.
func (e *Editor[T]) Reset(v T) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.value = v
	e.baseline = snapshot(v)
	e.lastError = ""
	e.state = EDITOR_STATE_IDLE
}

// Save persists the current value. Refused while another save is in flight.
// Saving an unchanged value is a no-op. On success the server's copy becomes
// the value and the baseline, and the editor shows saved for the hold
// duration before settling back to idle.
func (e *Editor[T]) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.state == EDITOR_STATE_SAVING {
		e.mu.Unlock()
		return ErrSaveInProgress
	}
	if snapshot(e.value) == e.baseline {
		e.mu.Unlock()
		return nil
	}
	e.state = EDITOR_STATE_SAVING
	e.lastError = ""
	value := e.value
	e.mu.Unlock()

	saved, err := e.save(ctx, value)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.state = EDITOR_STATE_ERROR
		e.lastError = err.Error()
		return err
	}

	e.value = saved
	e.baseline = snapshot(saved)
	e.guard = true
	time.AfterFunc(0, func() {
		e.mu.Lock()
		e.guard = false
		e.mu.Unlock()
	})

	e.state = EDITOR_STATE_SAVED
	if e.savedTimer != nil {
		e.savedTimer.Stop()
	}
	e.savedTimer = time.AfterFunc(e.savedHold, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.state == EDITOR_STATE_SAVED {
			e.state = EDITOR_STATE_IDLE
		}
	})

	return nil
}

func snapshot[T any](v T) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(payload)
}
