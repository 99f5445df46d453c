package maze

import "errors"

var (
	// ErrConfig is returned when a maze is requested with invalid dimensions.
	ErrConfig = errors.New("invalid maze configuration")

	// ErrOutOfBounds is returned when a query addresses a cell outside the grid.
	ErrOutOfBounds = errors.New("cell position out of bounds")

	// ErrInvariantBreach reports a grid whose walls no longer describe a valid maze.
	ErrInvariantBreach = errors.New("maze invariant breached")
)
