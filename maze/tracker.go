package maze

import (
	"fmt"

	"github.com/beka-birhanu/backtrack-maze/util/sets"
)

// VisitTracker records which cells have been visited and in what order.
// The order slice and the membership set always hold the same positions.
type VisitTracker struct {
	order   []CellPosition
	members sets.Set[CellPosition]
}

// NewVisitTracker returns an empty tracker sized for capacity cells.
func NewVisitTracker(capacity int) *VisitTracker {
	return &VisitTracker{
		order:   make([]CellPosition, 0, capacity),
		members: sets.New[CellPosition](capacity),
	}
}

// Visit appends p to the visitation order. Visiting a cell twice panics.
func (t *VisitTracker) Visit(p CellPosition) {
	if !t.members.Insert(p) {
		panic(fmt.Sprintf("maze: cell %s visited twice", p))
	}
	t.order = append(t.order, p)
}

// Visited reports whether p has been visited.
func (t *VisitTracker) Visited(p CellPosition) bool {
	return t.members.Contains(p)
}

// Len returns the number of visited cells.
func (t *VisitTracker) Len() int {
	return len(t.order)
}

// At returns the i-th visited cell in discovery order.
func (t *VisitTracker) At(i int) CellPosition {
	return t.order[i]
}

// DeadEndSet holds visited cells known to have no unvisited neighbour.
// Cells are never removed: visited cells stay visited, so a dead end stays dead.
type DeadEndSet struct {
	members sets.Set[CellPosition]
}

// NewDeadEndSet returns an empty set.
func NewDeadEndSet() *DeadEndSet {
	return &DeadEndSet{members: sets.New[CellPosition](0)}
}

func (d *DeadEndSet) Mark(p CellPosition) {
	d.members.Insert(p)
}

func (d *DeadEndSet) Contains(p CellPosition) bool {
	return d.members.Contains(p)
}

func (d *DeadEndSet) Len() int {
	return d.members.Len()
}

// ValidMoves returns the moves from cell into in-bounds cells that have not
// been visited yet, in Directions order.
func ValidMoves(g *Grid, t *VisitTracker, cell CellPosition) []Move {
	var result []Move
	for _, d := range Directions {
		to := cell.Neighbor(d)
		if !g.InBounds(to) || t.Visited(to) {
			continue
		}
		result = append(result, Move{From: cell, To: to, Direction: d})
	}
	return result
}
