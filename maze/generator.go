package maze

import (
	"fmt"
	"math/rand"
)

// State is a phase of the generator's state machine.
type State uint8

const (
	Advancing State = iota
	Backtracking
	Done
)

func (s State) String() string {
	switch s {
	case Advancing:
		return "Advancing"
	case Backtracking:
		return "Backtracking"
	case Done:
		return "Done"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Stats counts the work done by a generator run.
type Stats struct {
	WallsRemoved    int // passages carved, w*h-1 once done
	Backtracks      int // times the generator had to scan back for a live cell
	DeadEndsMarked  int // cells added to the dead-end set
	DeadEndsSkipped int // scan steps answered by the dead-end set
	CellsScanned    int // scan steps that recomputed valid moves
}

// Generator carves a perfect maze with randomized iterative backtracking.
// A Generator owns its grid until it reaches Done and must not be shared
// between goroutines.
type Generator struct {
	grid     *Grid
	visited  *VisitTracker
	deadEnds *DeadEndSet
	rng      *rand.Rand
	state    State
	cur      CellPosition
	memo     bool
	stats    Stats
}

// Option configures a Generator.
type Option func(*Generator)

// WithDeadEndMemo turns dead-end memoization on or off. It only affects how
// much work backtracking does, never the maze produced.
func WithDeadEndMemo(enabled bool) Option {
	return func(g *Generator) {
		g.memo = enabled
	}
}

// NewGenerator returns a generator positioned on a random start cell.
func NewGenerator(width, height int, seed int64, opts ...Option) (*Generator, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		grid:     grid,
		visited:  NewVisitTracker(width * height),
		deadEnds: NewDeadEndSet(),
		rng:      rand.New(rand.NewSource(seed)),
		state:    Advancing,
		memo:     true,
	}
	for _, opt := range opts {
		opt(g)
	}

	start := g.rng.Intn(width * height)
	g.cur = CellPosition{X: start % width, Y: start / width}
	g.visited.Visit(g.cur)
	return g, nil
}

// State returns the current phase.
func (g *Generator) State() State {
	return g.state
}

// Current returns the cell being extended. It is meaningless once Done.
func (g *Generator) Current() CellPosition {
	return g.cur
}

// Stats returns the counters accumulated so far.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Step performs a single transition and returns the resulting state.
func (g *Generator) Step() State {
	switch g.state {
	case Advancing:
		moves := ValidMoves(g.grid, g.visited, g.cur)
		if len(moves) == 0 {
			g.state = Backtracking
			break
		}
		g.carve(moves)
	case Backtracking:
		g.backtrack()
	}
	return g.state
}

// Run steps the generator until Done and returns the finished grid.
func (g *Generator) Run() *Grid {
	for g.Step() != Done {
	}
	return g.grid
}

// backtrack scans the visitation order from newest to oldest for a cell that
// can still be extended.
func (g *Generator) backtrack() {
	g.stats.Backtracks++
	for i := g.visited.Len() - 1; i >= 0; i-- {
		c := g.visited.At(i)
		if g.memo && g.deadEnds.Contains(c) {
			g.stats.DeadEndsSkipped++
			continue
		}

		g.stats.CellsScanned++
		moves := ValidMoves(g.grid, g.visited, c)
		if len(moves) > 0 {
			g.carve(moves)
			g.state = Advancing
			return
		}

		if g.memo {
			g.markDeadEnd(c)
		}
	}

	g.finish()
}

// markDeadEnd records c as exhausted. Only visited cells can be dead ends.
func (g *Generator) markDeadEnd(c CellPosition) {
	if !g.visited.Visited(c) {
		panic(fmt.Sprintf("maze: unvisited cell %s marked as dead end", c))
	}
	g.deadEnds.Mark(c)
	g.stats.DeadEndsMarked++
}

// carve opens a uniformly chosen move and makes its target current.
func (g *Generator) carve(moves []Move) {
	m := moves[g.rng.Intn(len(moves))]
	g.grid.removeWall(m.From, m.Direction)
	g.visited.Visit(m.To)
	g.cur = m.To
	g.stats.WallsRemoved++
}

// finish enters Done after confirming the grid is a spanning tree.
func (g *Generator) finish() {
	total := g.grid.width * g.grid.height
	if g.visited.Len() != total {
		panic(fmt.Sprintf("maze: generation ended with %d of %d cells visited", g.visited.Len(), total))
	}
	if err := g.grid.Validate(); err != nil {
		panic(err)
	}
	if open := g.grid.OpenPassages(); open != total-1 {
		panic(fmt.Sprintf("%v: %d passages in a %d cell maze", ErrInvariantBreach, open, total))
	}
	g.state = Done
}

// Generate returns a perfect maze of the given dimensions. The same
// arguments always produce the same maze.
func Generate(width, height int, seed int64) (*Grid, error) {
	g, err := NewGenerator(width, height, seed)
	if err != nil {
		return nil, err
	}
	return g.Run(), nil
}
