// Package pomodoro implements a 25 minute work-session countdown.
package pomodoro

import (
	"fmt"
	"time"
)

// SessionLength is the full duration of one pomodoro.
const SessionLength = 25 * time.Minute

// Timer counts down from SessionLength one second at a time. The zero
// value is not usable; call New.
type Timer struct {
	remaining time.Duration
	running   bool
}

// New returns a paused timer holding a full session.
func New() *Timer {
	return &Timer{remaining: SessionLength}
}

// Start resumes the countdown. Starting an elapsed timer has no effect.
func (t *Timer) Start() {
	if t.remaining > 0 {
		t.running = true
	}
}

// Pause halts the countdown without losing the remaining time.
func (t *Timer) Pause() {
	t.running = false
}

// Reset restores a full session and pauses the timer.
func (t *Timer) Reset() {
	t.remaining = SessionLength
	t.running = false
}

// Tick advances the countdown by one second. It reports whether this
// tick finished the session. Ticks while paused or elapsed do nothing.
func (t *Timer) Tick() bool {
	if !t.running {
		return false
	}
	t.remaining -= time.Second
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
		return true
	}
	return false
}

// Running reports whether the countdown is currently advancing.
func (t *Timer) Running() bool {
	return t.running
}

// Remaining returns the time left in the session.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Clock renders the remaining time as M:SS, minutes unpadded.
func (t *Timer) Clock() string {
	total := int(t.remaining / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
