// Package tetris implements the falling-block engine: the playfield, the
// seven piece variants, the piece factory and the fixed-tick session that
// sequences input, gravity, locking and scoring.
//
// The package never touches the terminal. Drawing goes through Renderer and
// input arrives as core.KeyboardInput snapshots, so every rule can be driven
// tick by tick from tests.
package tetris

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// Renderer draws the session. It is called from the loop goroutine.
type Renderer interface {
	// Draw is called once per tick while running. active is nil only in the
	// instant between a lock and a failed spawn. Draw must not mutate state.
	Draw(active *Piece, score int)
	// DrawGameOver is called exactly once, on the tick the session ends.
	DrawGameOver(score int)
}

// RendererFactory builds the renderer for a session's grid.
// An error aborts session creation.
type RendererFactory func(g *Grid) (Renderer, error)

// State is the session state machine.
type State string

const (
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// centerSpawnWidth is the mask width used to center spawns; it is the
// widest mask in the catalog.
const centerSpawnWidth = 4

// Session is one game from first spawn to game over.
type Session struct {
	grid     *Grid
	factory  *Factory
	renderer Renderer
	logger   *log.Logger

	fallSpeed     float64
	pointsPerLine int
	spawnX        int
	spawnY        int

	active        *Piece
	state         State
	score         int
	lines         int
	tick          uint64
	gameOverDrawn bool
}

// SessionOption configures optional Session collaborators.
type SessionOption func(*Session)

// WithSessionLogger sets the logger for lock and game-over events.
func WithSessionLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates the grid, builds the renderer and spawns the first piece.
// cfg must already be validated.
func NewSession(cfg config.Config, seed int64, newRenderer RendererFactory, opts ...SessionOption) (*Session, error) {
	grid := NewGrid(cfg.Field.Width, cfg.Field.Height)

	renderer, err := newRenderer(grid)
	if err != nil {
		return nil, fmt.Errorf("tetris: renderer init: %w", err)
	}

	s := &Session{
		grid:          grid,
		factory:       NewFactory(seed),
		renderer:      renderer,
		logger:        log.New(io.Discard),
		fallSpeed:     cfg.Timing.FallSpeed,
		pointsPerLine: cfg.Scoring.PointsPerLine,
		state:         StateRunning,
	}
	if cfg.Spawn.Mode == config.SpawnCenter {
		s.spawnX = max(0, (grid.Width()-centerSpawnWidth)/2)
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Info("session started",
		"width", grid.Width(),
		"height", grid.Height(),
		"fall_speed", s.fallSpeed,
		"spawn_x", s.spawnX,
		"seed", seed,
	)
	s.spawn()
	return s, nil
}

// Grid returns the playfield.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Active returns the falling piece, or nil after game over.
func (s *Session) Active() *Piece {
	return s.active
}

// CurrentState returns the state machine's current state.
func (s *Session) CurrentState() State {
	return s.state
}

// Done reports whether the session is over and the game-over screen has been drawn.
func (s *Session) Done() bool {
	return s.state == StateGameOver && s.gameOverDrawn
}

// State returns the score summary.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lines:    s.lines,
		GameOver: s.state == StateGameOver,
	}
}

// Step advances the session by one tick using the given input snapshot.
func (s *Session) Step(in core.KeyboardInput) core.StepResult {
	if s.state == StateGameOver {
		s.draw()
		return core.StepResult{State: s.State()}
	}

	s.tick++
	locked := false

	// Rotation is applied without a collision check.
	if in.IsDown(core.ActionRotate) {
		s.active.Rotate()
	}

	// Right is evaluated last and wins when both are held.
	delta := 0
	if in.IsDown(core.ActionLeft) {
		delta = -1
	}
	if in.IsDown(core.ActionRight) {
		delta = 1
	}
	if delta != 0 {
		s.active.TryMoveHorizontal(delta)
	}

	if !s.active.TryMoveDown(s.fallSpeed) {
		s.lock()
		locked = true
	}

	// One lock per tick: a drop pressed on the tick gravity locked is dropped.
	if in.WasPressed(core.ActionDrop) && !locked {
		s.active.HardDrop()
		s.lock()
		locked = true
	}

	s.draw()
	return core.StepResult{State: s.State(), Locked: locked}
}

// lock places the active piece, clears rows and spawns the next piece.
func (s *Session) lock() {
	piece := s.active
	s.grid.Place(piece)

	cleared := s.grid.ClearCompleteLines()
	s.lines += cleared
	s.score += cleared * s.pointsPerLine

	s.logger.Debug("piece locked",
		"kind", piece.Kind(),
		"x", piece.X(),
		"y", piece.Y(),
		"rotation", piece.Rotation(),
		"cleared", cleared,
		"score", s.score,
	)

	s.spawn()
}

// spawn replaces the active piece. A new piece that collides immediately ends the game.
func (s *Session) spawn() {
	next := s.factory.Spawn(s.grid, s.spawnX, s.spawnY)
	if s.grid.CheckCollision(next) {
		s.active = nil
		s.state = StateGameOver
		s.logger.Info("game over",
			"score", s.score,
			"lines", s.lines,
			"ticks", s.tick,
			"blocked", next.Kind(),
		)
		return
	}
	s.active = next
}

// draw invokes the renderer for the current state.
func (s *Session) draw() {
	if s.state == StateRunning {
		s.renderer.Draw(s.active, s.score)
		return
	}
	if !s.gameOverDrawn {
		s.renderer.DrawGameOver(s.score)
		s.gameOverDrawn = true
	}
}
