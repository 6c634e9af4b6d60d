// Package debounce collapses bursts of triggers into one delayed message.
//
// A Timer never runs callbacks itself. Trigger returns a tea.Cmd that sleeps
// for the delay and then reports a Msg; the owner hands every Msg back to
// Fire, which accepts only the tick produced by the most recent Trigger.
// Superseded ticks still arrive but are ignored, so everything stays on the
// Bubble Tea update loop.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Msg is delivered when a debounce window closes.
type Msg struct {
	ID      int
	Seq     uint64
	Payload any
}

type Timer struct {
	id      int
	seq     uint64
	delay   time.Duration
	pending bool
}

func New(delay time.Duration) *Timer {
	return &Timer{id: nextID(), delay: delay}
}

func (t *Timer) Delay() time.Duration { return t.delay }

// SetDelay changes the delay for future triggers.
func (t *Timer) SetDelay(d time.Duration) { t.delay = d }

// Pending reports whether a window is open.
func (t *Timer) Pending() bool { return t.pending }

// Trigger (re)opens the window. Any tick from an earlier Trigger becomes
// stale. Payload is returned unchanged in the Msg.
func (t *Timer) Trigger(payload any) tea.Cmd {
	t.seq++
	t.pending = true
	id, seq := t.id, t.seq
	return tea.Tick(t.delay, func(time.Time) tea.Msg {
		return Msg{ID: id, Seq: seq, Payload: payload}
	})
}

// Cancel closes the window; the outstanding tick will be ignored.
func (t *Timer) Cancel() {
	t.seq++
	t.pending = false
}

// Owns reports whether msg was produced by this timer, stale or not.
func (t *Timer) Owns(msg Msg) bool { return msg.ID == t.id }

// Fire reports whether msg is the live tick for this timer and closes the
// window if so.
func (t *Timer) Fire(msg Msg) bool {
	if msg.ID != t.id || msg.Seq != t.seq || !t.pending {
		return false
	}
	t.pending = false
	return true
}
