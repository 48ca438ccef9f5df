package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termtris/internal/core"
)

// loopDoneMsg reports that the game loop goroutine has returned.
type loopDoneMsg struct {
	state core.GameState
	err   error
}

// Model is the Bubble Tea model for a running game. It never steps the game
// itself: key events go into the KeyState polled by the loop goroutine, and
// frames come back as frameMsg.
type Model struct {
	keys     KeyMap
	help     help.Model
	input    *KeyState
	cancel   context.CancelFunc
	frame    string
	height   int // terminal rows, 0 until the first WindowSizeMsg
	score    int
	gameOver bool
	quitting bool
	err      error
}

// NewModel creates the model. cancel stops the game loop when the player quits.
func NewModel(keys KeyMap, input *KeyState, cancel context.CancelFunc) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		keys:   keys,
		help:   h,
		input:  input,
		cancel: cancel,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		m.frame = msg.view
		m.score = msg.score
		if msg.gameOver {
			m.gameOver = true
		}
		return m, nil

	case loopDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleKey feeds game keys into the key state. Quit ends the program, and
// so does a fresh press once the game is over. Auto-repeats of a key held
// through the last drop do not count, so the game-over box stays up.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	fresh := m.input.Press(action) || action == core.ActionNone
	if action == core.ActionQuit || (m.gameOver && fresh) {
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	}
	return m, nil
}

// View renders the latest frame. The help footer goes under it while the
// game runs and the terminal has a spare row.
func (m Model) View() string {
	if m.quitting || m.frame == "" {
		return ""
	}
	if m.gameOver {
		return m.frame
	}

	rows := strings.Count(m.frame, "\n") + 1
	if m.height > 0 && rows+helpRows > m.height {
		return m.frame
	}
	return m.frame + "\n" + strings.Repeat(" ", leftPadding) + m.help.View(m.keys)
}

// Score returns the last score shown on screen.
func (m Model) Score() int {
	return m.score
}

// GameOver reports whether the game-over frame has been shown.
func (m Model) GameOver() bool {
	return m.gameOver
}

// Err returns the error that stopped the game loop, if any.
func (m Model) Err() error {
	return m.err
}
