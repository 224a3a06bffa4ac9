// Package timer implements the per-owner countdown state machine: at most one
// running timer per owner, a deferred completion callback, explicit stop.
package timer

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

type Kind string

const (
	KindStudy Kind = "study"
	KindBreak Kind = "break"
)

const (
	MinMinutes = 1
	MaxMinutes = 240
)

var (
	ErrInvalidDuration = errors.New("duration outside 1-240 minutes")
	ErrAlreadyActive   = errors.New("timer already active")
	ErrNoTimer         = errors.New("no active timer")
)

// Timer is one countdown instance. The ID ties the scheduled completion to
// this exact instance: a completion can only fire for the timer that
// scheduled it, so Stop and the completion event are mutually exclusive.
type Timer struct {
	ID        uuid.UUID
	Owner     int64
	Kind      Kind
	Minutes   int
	StartedAt time.Time
	EndsAt    time.Time
}

type entry struct {
	t    Timer
	fire *clock.Timer
}

// Engine owns all running timers. All state transitions happen under one lock.
type Engine struct {
	clk clock.Clock

	mu         sync.Mutex
	active     map[int64]*entry
	onComplete func(Timer)
}

func NewEngine(clk clock.Clock) *Engine {
	return &Engine{clk: clk, active: make(map[int64]*entry)}
}

// OnComplete registers the callback invoked when a timer runs to completion.
// Called without the engine lock held.
func (e *Engine) OnComplete(fn func(Timer)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onComplete = fn
}

// Start creates and schedules a timer for owner. A running timer for the same
// owner rejects the new one; durations outside [1,240] minutes are invalid.
func (e *Engine) Start(owner int64, minutes int, kind Kind) (Timer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.active[owner]; ok {
		return Timer{}, ErrAlreadyActive
	}
	if minutes < MinMinutes || minutes > MaxMinutes {
		return Timer{}, ErrInvalidDuration
	}

	now := e.clk.Now()
	t := Timer{
		ID:        uuid.New(),
		Owner:     owner,
		Kind:      kind,
		Minutes:   minutes,
		StartedAt: now,
		EndsAt:    now.Add(time.Duration(minutes) * time.Minute),
	}
	id := t.ID
	e.active[owner] = &entry{
		t:    t,
		fire: e.clk.AfterFunc(time.Duration(minutes)*time.Minute, func() { e.complete(owner, id) }),
	}
	return t, nil
}

// Status reports the running timer for owner and its remaining time,
// max(0, ends_at - now).
func (e *Engine) Status(owner int64) (Timer, time.Duration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.active[owner]
	if !ok {
		return Timer{}, 0, ErrNoTimer
	}
	remaining := ent.t.EndsAt.Sub(e.clk.Now())
	if remaining < 0 {
		remaining = 0
	}
	return ent.t, remaining, nil
}

// Stop cancels the pending completion and removes the record. The cancelled
// completion can never fire: it is keyed to this instance's ID, which is gone.
func (e *Engine) Stop(owner int64) (Timer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.active[owner]
	if !ok {
		return Timer{}, ErrNoTimer
	}
	ent.fire.Stop()
	delete(e.active, owner)
	return ent.t, nil
}

func (e *Engine) complete(owner int64, id uuid.UUID) {
	e.mu.Lock()
	ent, ok := e.active[owner]
	if !ok || ent.t.ID != id {
		e.mu.Unlock()
		return
	}
	delete(e.active, owner)
	fn := e.onComplete
	t := ent.t
	e.mu.Unlock()

	if fn != nil {
		fn(t)
	}
}
