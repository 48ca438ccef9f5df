package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/termtris/internal/core"
)

const (
	// DefaultHold is how long a repeating key counts as down after its last key event.
	DefaultHold = 100 * time.Millisecond
	// DefaultRearm is how long a key must stay silent before another event
	// for it counts as a new physical press. It must cover the terminal's
	// delay before the first auto-repeat.
	DefaultRearm = 600 * time.Millisecond
)

// keyEntry tracks one action's physical key.
type keyEntry struct {
	lastSeen time.Time
	pending  bool // press not yet handed to the loop
	repeated bool // auto-repeat seen since the press
}

// KeyState is the key-state table shared by the Bubble Tea goroutine, which
// records key events, and the game loop, which polls it once per tick.
//
// Terminals report presses and auto-repeats but never releases. The first
// event for a key is a press: it raises the edge flag, which the next Snapshot
// consumes, and the key is down for that one snapshot. Later events within
// the rearm window are auto-repeats; once they arrive the key counts as held
// until hold passes without another one. After rearm passes in silence the
// key is released and the next event starts a new press.
type KeyState struct {
	mu    sync.Mutex
	hold  time.Duration
	rearm time.Duration
	now   func() time.Time
	keys  map[core.Action]*keyEntry
}

// KeyStateOption configures a KeyState.
type KeyStateOption func(*KeyState)

// WithKeyClock replaces the wall clock, for tests.
func WithKeyClock(now func() time.Time) KeyStateOption {
	return func(k *KeyState) {
		k.now = now
	}
}

// WithRearm sets the release window. Non-positive values keep DefaultRearm.
func WithRearm(d time.Duration) KeyStateOption {
	return func(k *KeyState) {
		if d > 0 {
			k.rearm = d
		}
	}
}

// NewKeyState creates an empty key-state table. A non-positive hold uses
// DefaultHold. The rearm window is never shorter than hold.
func NewKeyState(hold time.Duration, opts ...KeyStateOption) *KeyState {
	if hold <= 0 {
		hold = DefaultHold
	}
	k := &KeyState{
		hold:  hold,
		rearm: DefaultRearm,
		now:   time.Now,
		keys:  make(map[core.Action]*keyEntry),
	}
	for _, opt := range opts {
		opt(k)
	}
	k.rearm = max(k.rearm, k.hold)
	return k
}

// Press records a key event for the action and reports whether it started
// a new physical press.
func (k *KeyState) Press(a core.Action) bool {
	if a == core.ActionNone {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if e, ok := k.keys[a]; ok && !k.released(e, now) {
		e.repeated = true
		e.lastSeen = now
		return false
	}
	k.keys[a] = &keyEntry{lastSeen: now, pending: true}
	return true
}

// Snapshot returns the key state for one tick and consumes pending presses.
// A tap is down in exactly one snapshot however fast the loop ticks, so it
// moves the piece once.
func (k *KeyState) Snapshot() core.InputFrame {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	frame := core.NewInputFrame()
	for a, e := range k.keys {
		switch {
		case e.pending:
			frame.Press(a)
			e.pending = false
		case e.repeated && now.Sub(e.lastSeen) < k.hold:
			frame.Hold(a)
		case k.released(e, now):
			delete(k.keys, a)
		}
	}
	return frame
}

// released reports whether the key has been silent for the rearm window. Callers hold mu.
func (k *KeyState) released(e *keyEntry, now time.Time) bool {
	return now.Sub(e.lastSeen) >= k.rearm
}
