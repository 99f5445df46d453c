/*
Package maze generates perfect mazes on rectangular grids.

A perfect maze is a spanning tree over the grid cells: every cell is reachable
from every other one through exactly one path. The maze is stored as a Grid of
per-cell wall sets and is carved with an iterative randomized backtracker that
keeps its own explicit visitation stack, so grid size never affects call depth.

Generation is deterministic for a given width, height and seed.
*/
package maze

import (
	"fmt"
	"math"
)

// MaxCells bounds the number of cells a single grid may hold.
const MaxCells = 1 << 30

// Grid holds the walls of every cell of a width x height maze.
// Walls are only ever removed in reciprocal pairs.
type Grid struct {
	width  int
	height int
	cells  []WallSet // row-major, index y*width+x
}

// NewGrid returns a fully closed grid of the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrConfig, width, height)
	}
	if width > math.MaxInt/height || width*height > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrConfig, width, height, MaxCells)
	}

	cells := make([]WallSet, width*height)
	for i := range cells {
		cells[i] = AllWalls
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p CellPosition) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Walls returns the walls still standing around cell (x, y).
func (g *Grid) Walls(x, y int) (WallSet, error) {
	p := CellPosition{X: x, Y: y}
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.cells[g.index(p)], nil
}

// OpenPassages returns the number of wall pairs that have been removed.
func (g *Grid) OpenPassages() int {
	open := 0
	for i, w := range g.cells {
		// Count each passage once, from its west or north end.
		if !w.Has(East) && (i%g.width) < g.width-1 {
			open++
		}
		if !w.Has(South) && i/g.width < g.height-1 {
			open++
		}
	}
	return open
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]WallSet, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Validate checks that every removed wall has its counterpart removed on the
// neighbouring cell and that the outer boundary is intact.
func (g *Grid) Validate() error {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := CellPosition{X: x, Y: y}
			walls := g.cells[g.index(p)]
			for _, d := range Directions {
				n := p.Neighbor(d)
				if !g.InBounds(n) {
					if !walls.Has(d) {
						return fmt.Errorf("%w: boundary wall %s of %s is open", ErrInvariantBreach, d, p)
					}
					continue
				}
				if walls.Has(d) != g.cells[g.index(n)].Has(d.Opposite()) {
					return fmt.Errorf("%w: wall %s of %s does not match wall %s of %s", ErrInvariantBreach, d, p, d.Opposite(), n)
				}
			}
		}
	}
	return nil
}

// removeWall opens the passage between cell and its neighbour in direction d.
// Both cells must be in bounds and the wall must still be standing on both
// sides; anything else is a bug in the caller.
func (g *Grid) removeWall(cell CellPosition, d Direction) {
	n := cell.Neighbor(d)
	if !g.InBounds(cell) || !g.InBounds(n) {
		panic(fmt.Sprintf("maze: removing wall %s of %s leaves the %dx%d grid", d, cell, g.width, g.height))
	}

	from, to := g.index(cell), g.index(n)
	if !g.cells[from].Has(d) || !g.cells[to].Has(d.Opposite()) {
		panic(fmt.Sprintf("maze: wall %s of %s is already open", d, cell))
	}

	g.cells[from] = g.cells[from].Without(d)
	g.cells[to] = g.cells[to].Without(d.Opposite())
}

func (g *Grid) index(p CellPosition) int {
	return p.Y*g.width + p.X
}
