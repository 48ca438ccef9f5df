// Package tui provides the Bubble Tea integration for termtris.
// It owns the terminal: key events feed a KeyState, a goroutine runs the
// fixed-tick game loop, and finished frames are sent back to the program.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

// ErrNotTerminal is returned when stdin cannot deliver key events.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Run plays one game in the terminal and returns the final state.
// cfg must be validated. rt.TickRate overrides the configured tick rate when
// positive, and a zero rt.Seed seeds from the clock. The terminal size in rt
// must fit the frame.
func Run(ctx context.Context, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return core.GameState{}, fmt.Errorf("tui: input init: %w", ErrNotTerminal)
	}

	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	tickRate := cfg.Timing.TickRate
	if rt.TickRate > 0 {
		tickRate = rt.TickRate
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := NewKeyState(
		time.Duration(cfg.Input.HoldMs)*time.Millisecond,
		WithRearm(time.Duration(cfg.Input.RearmMs)*time.Millisecond),
	)
	p := tea.NewProgram(
		NewModel(DefaultKeyMap(), keys, cancel),
		tea.WithAltScreen(),
	)

	termSize := func() (int, int, error) {
		return rt.ScreenW, rt.ScreenH, nil
	}
	session, err := tetris.NewSession(cfg, rt.Seed,
		NewRendererFactory(cfg.Display.Color, p.Send, termSize),
		tetris.WithSessionLogger(logger),
	)
	if err != nil {
		return core.GameState{}, err
	}

	loop := tetris.NewLoop(session, keys, tickRate, tetris.WithLoopLogger(logger))
	done := make(chan loopDoneMsg, 1)
	go func() {
		state, err := loop.Run(ctx)
		res := loopDoneMsg{state: state, err: err}
		done <- res
		// Returns immediately once the program has exited.
		p.Send(res)
	}()

	final, runErr := p.Run()
	cancel()
	res := <-done

	if runErr != nil {
		return res.state, fmt.Errorf("tui: program: %w", runErr)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return res.state, fmt.Errorf("tui: game loop: %w", m.Err())
	}
	return res.state, nil
}
