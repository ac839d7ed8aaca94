package minimax

import (
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	ScoreWin  = 1
	ScoreLoss = -1
	ScoreTie  = 0

	// switchThreshold - an equal score on the maximizing side replaces the best move
	// when a draw from Rand is above this value.
	switchThreshold = 0.9
)

// Rand - source of uniform values in [0, 1) used to break ties between equally good moves.
type Rand interface {
	Float64() float64
}

// Result - the chosen move for the maximizing side.
type Result struct {
	Move  entity.Cell
	Score int
	// Found is false when the grid had no empty slot.
	Found bool
	// Nodes - positions visited during the search.
	Nodes int
}

type Option func(*Engine)

// WithRand replaces the tie-break source. Tests use it to pin the chosen move.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// Engine runs a full-depth minimax over a 3x3 grid. It holds no per-search state,
// so a single Engine can serve concurrent searches over different grids.
type Engine struct {
	rand Rand
}

func New(opts ...Option) *Engine {
	engine := &Engine{
		rand: newLockedRand(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// BestMove picks a slot for maximizing on grid. The grid is mutated during the search
// and restored before returning. A decided grid yields its score and no move.
func (that *Engine) BestMove(grid *entity.Grid, maximizing, minimizing entity.Mark) Result {
	s := newSearch(that.rand, maximizing, minimizing)

	if outcome := grid.Outcome(); outcome.IsTerminal() {
		return Result{Score: s.terminal(outcome), Nodes: 1}
	}

	result := Result{Score: ScoreLoss - 1}

	for _, cell := range grid.EmptyCells() {
		grid[cell.Row][cell.Col] = maximizing
		score := s.score(grid, false)
		grid[cell.Row][cell.Col] = entity.Empty

		if !result.Found || score > result.Score || (score == result.Score && s.switchTie()) {
			result.Move = cell
			result.Score = score
			result.Found = true
		}
	}

	result.Nodes = s.nodes

	return result
}

type search struct {
	rand       Rand
	maximizing entity.Mark
	minimizing entity.Mark
	nodes      int
}

func newSearch(r Rand, maximizing, minimizing entity.Mark) *search {
	return &search{
		rand:       r,
		maximizing: maximizing,
		minimizing: minimizing,
	}
}

// score evaluates grid from the maximizing side assuming both sides play perfectly.
// maximizingTurn tells whose move it is on grid.
func (that *search) score(grid *entity.Grid, maximizingTurn bool) int {
	that.nodes++

	if outcome := grid.Outcome(); outcome.IsTerminal() {
		return that.terminal(outcome)
	}

	if maximizingTurn {
		best := ScoreLoss - 1
		for _, cell := range grid.EmptyCells() {
			grid[cell.Row][cell.Col] = that.maximizing
			next := that.score(grid, false)
			grid[cell.Row][cell.Col] = entity.Empty

			if next > best || (next == best && that.switchTie()) {
				best = next
			}
		}

		return best
	}

	best := ScoreWin + 1
	for _, cell := range grid.EmptyCells() {
		grid[cell.Row][cell.Col] = that.minimizing
		next := that.score(grid, true)
		grid[cell.Row][cell.Col] = entity.Empty

		if next < best {
			best = next
		}
	}

	return best
}

func (that *search) terminal(outcome entity.Outcome) int {
	switch {
	case outcome.IsTie():
		return ScoreTie
	case outcome.Winner == that.maximizing:
		return ScoreWin
	default:
		return ScoreLoss
	}
}

func (that *search) switchTie() bool {
	return that.rand.Float64() > switchThreshold
}

type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func newLockedRand() *lockedRand {
	return &lockedRand{
		src: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (that *lockedRand) Float64() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.src.Float64()
}
