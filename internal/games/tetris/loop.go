package tetris

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/core"
)

// InputSource hands the loop one consistent key-state snapshot per tick.
type InputSource interface {
	Snapshot() core.InputFrame
}

// Loop drives a Session at a fixed tick rate.
type Loop struct {
	session *Session
	input   InputSource
	period  time.Duration
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
	logger  *log.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock replaces the wall clock and sleeper, for tests.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) LoopOption {
	return func(l *Loop) {
		l.now = now
		l.sleep = sleep
	}
}

// WithLoopLogger sets the logger for tick overruns and loop exit.
func WithLoopLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// TickPeriod returns the duration of one tick at the given rate.
func TickPeriod(tickRate int) time.Duration {
	return time.Second / time.Duration(tickRate)
}

// NewLoop creates a loop running s at tickRate ticks per second.
func NewLoop(s *Session, in InputSource, tickRate int, opts ...LoopOption) *Loop {
	l := &Loop{
		session: s,
		input:   in,
		period:  TickPeriod(tickRate),
		now:     time.Now,
		sleep:   sleepContext,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run ticks until the game-over screen has been drawn or ctx is cancelled.
// Each tick sleeps for whatever is left of the tick period; an overrunning
// tick is followed immediately by the next one and the lost time is not
// made up.
func (l *Loop) Run(ctx context.Context) (core.GameState, error) {
	for {
		if err := ctx.Err(); err != nil {
			l.logger.Info("loop cancelled", "error", err)
			return l.session.State(), err
		}

		start := l.now()
		l.session.Step(l.input.Snapshot())
		if l.session.Done() {
			state := l.session.State()
			l.logger.Info("loop finished", "score", state.Score, "lines", state.Lines)
			return state, nil
		}

		spent := l.now().Sub(start)
		if spent > l.period {
			l.logger.Debug("tick overrun", "spent", spent, "period", l.period)
		}
		if err := l.sleep(ctx, max(0, l.period-spent)); err != nil {
			l.logger.Info("loop cancelled", "error", err)
			return l.session.State(), err
		}
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
