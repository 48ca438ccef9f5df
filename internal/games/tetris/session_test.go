package tetris

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// recordingRenderer counts draw calls and remembers the scores it was shown.
type recordingRenderer struct {
	draws      int
	scores     []int
	gameOvers  int
	finalScore int
}

func (r *recordingRenderer) Draw(_ *Piece, score int) {
	r.draws++
	r.scores = append(r.scores, score)
}

func (r *recordingRenderer) DrawGameOver(score int) {
	r.gameOvers++
	r.finalScore = score
}

func newTestSession(t *testing.T, cfg config.Config, seed int64) (*Session, *recordingRenderer) {
	t.Helper()
	rec := &recordingRenderer{}
	s, err := NewSession(cfg, seed, func(*Grid) (Renderer, error) { return rec, nil })
	require.NoError(t, err)
	return s, rec
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func pressed(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func TestNewSessionSpawnsAtCorner(t *testing.T) {
	s, rec := newTestSession(t, config.Default(), 1)

	require.NotNil(t, s.Active())
	assert.Equal(t, 0, s.Active().X())
	assert.Equal(t, 0, s.Active().Y())
	assert.Equal(t, StateRunning, s.CurrentState())
	assert.Equal(t, core.GameState{}, s.State())
	assert.False(t, s.Done())
	assert.Zero(t, rec.draws, "nothing is drawn before the first tick")
}

func TestNewSessionSpawnsCentered(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Mode = config.SpawnCenter

	s, _ := newTestSession(t, cfg, 1)

	assert.Equal(t, 3, s.Active().X())
}

func TestNewSessionRendererError(t *testing.T) {
	errTooSmall := errors.New("terminal too small")

	s, err := NewSession(config.Default(), 1, func(*Grid) (Renderer, error) {
		return nil, errTooSmall
	})

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errTooSmall)
	assert.Contains(t, err.Error(), "renderer init")
}

func TestRendererSeesSessionGrid(t *testing.T) {
	var seen *Grid
	s, err := NewSession(config.Default(), 1, func(g *Grid) (Renderer, error) {
		seen = g
		return &recordingRenderer{}, nil
	})

	require.NoError(t, err)
	assert.Same(t, s.Grid(), seen)
}

func TestStepGravity(t *testing.T) {
	s, rec := newTestSession(t, config.Default(), 1)

	for range 3 {
		res := s.Step(core.NewInputFrame())
		assert.False(t, res.Locked)
	}
	assert.Equal(t, 0, s.Active().Y())

	s.Step(core.NewInputFrame())
	assert.Equal(t, 1, s.Active().Y())
	assert.Equal(t, 4, rec.draws)
}

func TestStepHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		input    core.InputFrame
		expected int
	}{
		{"no input", core.NewInputFrame(), 4},
		{"left", held(core.ActionLeft), 3},
		{"right", held(core.ActionRight), 5},
		{"right wins over left", held(core.ActionLeft, core.ActionRight), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(t, config.Default(), 1)
			s.active = NewPiece(s.grid, KindBlock, 4, 0)

			s.Step(tc.input)

			assert.Equal(t, tc.expected, s.Active().X())
		})
	}
}

func TestStepHorizontalBlockedByWall(t *testing.T) {
	s, _ := newTestSession(t, config.Default(), 1)
	s.active = NewPiece(s.grid, KindBlock, 0, 0)

	s.Step(held(core.ActionLeft))

	assert.Equal(t, 0, s.Active().X())
}

func TestStepRotateIsLevelTriggered(t *testing.T) {
	s, _ := newTestSession(t, config.Default(), 1)
	s.active = NewPiece(s.grid, KindT, 4, 0)

	s.Step(held(core.ActionRotate))
	assert.Equal(t, 1, s.Active().Rotation())

	s.Step(held(core.ActionRotate))
	assert.Equal(t, 2, s.Active().Rotation())

	s.Step(core.NewInputFrame())
	assert.Equal(t, 2, s.Active().Rotation())
}

func TestHardDropClearsAndScores(t *testing.T) {
	s, rec := newTestSession(t, config.Default(), 1)
	for _, y := range []int{18, 19} {
		for x := range 9 {
			s.grid.Set(x, y, TagGreen)
		}
	}
	// Vertical Line occupies mask column 2, so x=7 drops it into column 9.
	s.active = NewPiece(s.grid, KindLine, 7, 0)

	res := s.Step(pressed(core.ActionDrop))

	assert.True(t, res.Locked)
	assert.Equal(t, 2, res.State.Lines)
	assert.Equal(t, 20, res.State.Score)
	assert.Equal(t, 20, rec.scores[len(rec.scores)-1])

	// The Line's two upper cells shift down into the cleared rows.
	assert.Equal(t, TagCyan, s.grid.Get(9, 18))
	assert.Equal(t, TagCyan, s.grid.Get(9, 19))
	assert.Equal(t, 2, countFilled(s.grid))
}

func TestLockWithoutClearKeepsScore(t *testing.T) {
	s, _ := newTestSession(t, config.Default(), 1)
	s.score = 30
	s.active = NewPiece(s.grid, KindBlock, 0, 0)

	res := s.Step(pressed(core.ActionDrop))

	assert.True(t, res.Locked)
	assert.Equal(t, 30, res.State.Score)
	assert.Equal(t, TagYellow, s.grid.Get(0, 19))
}

func TestPointsPerLineConfigurable(t *testing.T) {
	cfg := config.Default()
	cfg.Scoring.PointsPerLine = 100
	s, _ := newTestSession(t, cfg, 1)
	for x := range 9 {
		s.grid.Set(x, 19, TagGreen)
	}
	s.active = NewPiece(s.grid, KindLine, 7, 0)

	res := s.Step(pressed(core.ActionDrop))

	assert.Equal(t, 100, res.State.Score)
}

func TestGravityLockIgnoresDropSameTick(t *testing.T) {
	s, _ := newTestSession(t, config.Default(), 1)
	s.active = NewPiece(s.grid, KindBlock, 0, 18)
	s.active.y = 18.75 // the next gravity step crosses into the floor

	res := s.Step(pressed(core.ActionDrop))

	assert.True(t, res.Locked)
	assert.Equal(t, 4, countFilled(s.grid), "only the resting block locks this tick")
	require.NotNil(t, s.Active())
	assert.Equal(t, 0, s.Active().Y(), "the new piece is not hard-dropped")
}

func TestDropHeldIsEdgeTriggered(t *testing.T) {
	s, _ := newTestSession(t, config.Default(), 1)
	s.active = NewPiece(s.grid, KindBlock, 4, 0)

	res := s.Step(held(core.ActionDrop))

	assert.False(t, res.Locked, "holding drop without a fresh press does nothing")
	assert.Equal(t, 0, countFilled(s.grid))
}

// blockedSession returns a session whose next lock at the top leaves no room
// to spawn. Column 9 stays open so no row is ever complete.
func blockedSession(t *testing.T) (*Session, *recordingRenderer) {
	t.Helper()
	cfg := config.Default()
	cfg.Timing.FallSpeed = 1
	s, rec := newTestSession(t, cfg, 1)
	for y := 2; y < s.grid.Height(); y++ {
		for x := range 9 {
			s.grid.Set(x, y, TagRed)
		}
	}
	s.active = NewPiece(s.grid, KindBlock, 0, 0)
	return s, rec
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	s, rec := blockedSession(t)

	res := s.Step(core.NewInputFrame())

	assert.True(t, res.Locked)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, StateGameOver, s.CurrentState())
	assert.Nil(t, s.Active())
	assert.True(t, s.Done())
	assert.Equal(t, 0, rec.draws)
	assert.Equal(t, 1, rec.gameOvers)
	assert.Equal(t, res.State.Score, rec.finalScore)
}

func TestGameOverDrawnOnce(t *testing.T) {
	s, rec := blockedSession(t)
	s.Step(core.NewInputFrame())
	snap := s.Snapshot()

	for range 5 {
		res := s.Step(pressed(core.ActionDrop, core.ActionLeft, core.ActionRotate))
		assert.True(t, res.State.GameOver)
		assert.False(t, res.Locked)
	}

	assert.Equal(t, 1, rec.gameOvers)
	assert.Equal(t, 0, rec.draws)
	assert.Equal(t, snap, s.Snapshot(), "steps after game over change nothing")
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestSession(t, config.Default(), 1)
	s.active = NewPiece(s.grid, KindS, 2, 0)

	s.Step(held(core.ActionRotate))
	snap := s.Snapshot()

	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, StateRunning, snap.State)
	require.NotNil(t, snap.Piece)
	assert.Equal(t, PieceSnapshot{Kind: KindS, X: 2, Y: 0, Rotation: 1}, *snap.Piece)
	assert.Equal(t, s.grid.String(), snap.Grid)
}

// randomInput returns a reproducible sequence of input frames.
func randomInput(seed int64, n int) []core.InputFrame {
	rng := rand.New(rand.NewSource(seed))
	frames := make([]core.InputFrame, n)
	for i := range frames {
		f := core.NewInputFrame()
		if rng.Intn(6) == 0 {
			f.Hold(core.ActionRotate)
		}
		switch rng.Intn(4) {
		case 0:
			f.Hold(core.ActionLeft)
		case 1:
			f.Hold(core.ActionRight)
		}
		if rng.Intn(10) == 0 {
			f.Press(core.ActionDrop)
		}
		frames[i] = f
	}
	return frames
}

func TestDeterminism(t *testing.T) {
	frames := randomInput(99, 2000)

	s1, _ := newTestSession(t, config.Default(), 12345)
	s2, _ := newTestSession(t, config.Default(), 12345)

	for i, f := range frames {
		s1.Step(f)
		s2.Step(f)
		require.Equal(t, s1.Snapshot(), s2.Snapshot(), "tick %d", i)
	}
}

func TestSessionInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		s, rec := newTestSession(t, config.Default(), seed)
		prevScore := 0

		for _, f := range randomInput(seed, 5000) {
			res := s.Step(f)

			assert.GreaterOrEqual(t, res.State.Score, prevScore, "score never decreases")
			assert.Zero(t, res.State.Score%10, "score moves in whole lines")
			prevScore = res.State.Score

			for y := range s.grid.Height() {
				require.False(t, s.grid.rowComplete(y), "row %d complete after a step", y)
			}
			if s.Done() {
				break
			}
		}

		assert.LessOrEqual(t, rec.gameOvers, 1)
		assert.Equal(t, s.State().Lines*10, s.State().Score)
	}
}
