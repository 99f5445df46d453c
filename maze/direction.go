package maze

import "strings"

// Direction identifies one of the four sides of a cell.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in the order used for move selection.
// Changing this order changes the maze produced for a given seed.
var Directions = [...]Direction{North, South, East, West}

var offsets = [...]CellPosition{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
}

var opposites = [...]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
}

var names = [...]string{
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Offset returns the unit step taken when moving in direction d.
func (d Direction) Offset() CellPosition {
	return offsets[d]
}

// Short returns the single letter form used on the wire ("N", "S", "E", "W").
func (d Direction) Short() string {
	return names[d][:1]
}

func (d Direction) String() string {
	if int(d) >= len(names) {
		return "Unknown"
	}
	return names[d]
}

// WallSet is the set of walls still standing around a cell.
type WallSet uint8

// AllWalls is the wall set of a cell that has not been carved yet.
const AllWalls WallSet = 1<<North | 1<<South | 1<<East | 1<<West

// Has reports whether the wall on side d is present.
func (w WallSet) Has(d Direction) bool {
	return w&(1<<d) != 0
}

// Without returns w with the wall on side d removed.
func (w WallSet) Without(d Direction) WallSet {
	return w &^ (1 << d)
}

// Len returns the number of walls standing.
func (w WallSet) Len() int {
	n := 0
	for _, d := range Directions {
		if w.Has(d) {
			n++
		}
	}
	return n
}

// Directions returns the standing walls in Directions order.
func (w WallSet) Directions() []Direction {
	result := make([]Direction, 0, 4)
	for _, d := range Directions {
		if w.Has(d) {
			result = append(result, d)
		}
	}
	return result
}

func (w WallSet) String() string {
	parts := make([]string, 0, 4)
	for _, d := range w.Directions() {
		parts = append(parts, d.Short())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
