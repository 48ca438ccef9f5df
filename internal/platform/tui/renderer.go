package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

// Frame layout constants.
const (
	blockStatic = '█' // locked cell
	blockMoving = '▓' // cell of the falling piece
	blockWidth  = 2   // columns per grid cell
	leftPadding = 3   // columns left of the frame
	chromeRows  = 4   // header, score, separator, footer
	helpRows    = 1   // optional help footer under the frame
)

// Exit hints under the game-over box, the short one for narrow fields.
const (
	exitHint      = "press any key to exit"
	exitHintShort = "any key"
)

// ErrTerminalTooSmall is returned when the terminal cannot fit a frame.
var ErrTerminalTooSmall = errors.New("terminal too small")

// FrameSize returns the columns and rows a frame needs for a w x h grid.
func FrameSize(w, h int) (cols, rows int) {
	return leftPadding + w*blockWidth + 2, h + chromeRows
}

// frameMsg carries one rendered frame from the loop goroutine to the program.
type frameMsg struct {
	view     string
	gameOver bool
	score    int
}

// FrameRenderer draws a session into a core.Screen and hands the result to
// the Bubble Tea program. It implements tetris.Renderer.
type FrameRenderer struct {
	grid   *tetris.Grid
	screen *core.Screen
	color  bool
	send   func(tea.Msg)
}

// NewFrameRenderer creates a renderer for g. send receives one frameMsg per
// draw; pass (*tea.Program).Send.
func NewFrameRenderer(g *tetris.Grid, color bool, send func(tea.Msg)) *FrameRenderer {
	cols, rows := FrameSize(g.Width(), g.Height())
	return &FrameRenderer{
		grid:   g,
		screen: core.NewScreen(cols, rows),
		color:  color,
		send:   send,
	}
}

// NewRendererFactory returns a tetris.RendererFactory that refuses to build a
// renderer when the terminal reported by termSize cannot fit the frame.
// The help footer is left out of the check; the model drops it when there is
// no room. A nil termSize skips the check.
func NewRendererFactory(color bool, send func(tea.Msg), termSize func() (int, int, error)) tetris.RendererFactory {
	return func(g *tetris.Grid) (tetris.Renderer, error) {
		if termSize != nil {
			cols, rows, err := termSize()
			if err != nil {
				return nil, fmt.Errorf("tui: terminal size: %w", err)
			}
			needCols, needRows := FrameSize(g.Width(), g.Height())
			if cols < needCols || rows < needRows {
				return nil, fmt.Errorf("tui: %w: need %dx%d, have %dx%d",
					ErrTerminalTooSmall, needCols, needRows, cols, rows)
			}
		}
		return NewFrameRenderer(g, color, send), nil
	}
}

// Draw paints the grid with the active piece overlaid and sends the frame.
func (r *FrameRenderer) Draw(active *tetris.Piece, score int) {
	s := r.screen
	s.Clear()

	box := r.box(r.grid.Height() + chromeRows)
	s.DrawDoubleBox(box)
	s.DrawTextCentered(box.X+1, 1, box.W-2, fmt.Sprintf("Score: %d", score))
	s.DrawSeparator(box, 2)

	for y := range r.grid.Height() {
		for x := range r.grid.Width() {
			ch, tag := r.cellAt(active, x, y)
			px := box.X + 1 + x*blockWidth
			for w := range blockWidth {
				s.SetColored(px+w, 3+y, ch, tag.Color())
			}
		}
	}

	r.send(frameMsg{view: RenderScreen(s, r.color), score: score})
}

// DrawGameOver paints the game-over box with the final score and an exit
// hint below it, and sends it.
func (r *FrameRenderer) DrawGameOver(score int) {
	s := r.screen
	s.Clear()

	box := r.box(7)
	s.DrawDoubleBox(box)
	s.DrawTextCentered(box.X+1, 2, box.W-2, "Game Over")
	s.DrawText(box.X+1, 4, fmt.Sprintf("Score: %d", score))
	hint := exitHint
	if leftPadding+len(hint) > s.Width() {
		hint = exitHintShort
	}
	for i, ch := range hint {
		s.SetColored(leftPadding+i, box.Y+box.H, ch, core.ColorGray)
	}

	r.send(frameMsg{view: RenderScreen(s, r.color), gameOver: true, score: score})
}

// box returns the frame rectangle with the given height.
func (r *FrameRenderer) box(height int) core.Rect {
	return core.NewRect(leftPadding, 0, r.grid.Width()*blockWidth+2, height)
}

// cellAt returns the glyph and tag for grid cell (x, y). The falling piece
// wins over whatever is locked underneath it.
func (r *FrameRenderer) cellAt(active *tetris.Piece, x, y int) (rune, tetris.Tag) {
	if active != nil && active.Occupies(x, y) {
		return blockMoving, active.Tag()
	}
	if tag := r.grid.Get(x, y); tag != tetris.Empty {
		return blockStatic, tag
	}
	return ' ', tetris.Empty
}
