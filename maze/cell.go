package maze

import "fmt"

// CellPosition represents the position of a cell in the maze grid.
// X grows east and Y grows south; the origin is the north-west corner.
type CellPosition struct {
	X int // Column index of the cell
	Y int // Row index of the cell
}

// Add returns the component-wise sum of p and other.
func (p CellPosition) Add(other CellPosition) CellPosition {
	return CellPosition{X: p.X + other.X, Y: p.Y + other.Y}
}

// Neighbor returns the position one step away from p in direction d.
// The result may lie outside the grid.
func (p CellPosition) Neighbor(d Direction) CellPosition {
	return p.Add(d.Offset())
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Move represents carving from one cell into an adjacent one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Direction of the move as seen from From
}
