package i

import (
	"context"

	"github.com/beka-birhanu/backtrack-maze/maze"
	"github.com/google/uuid"
)

// GeneratedMaze is a finished maze together with the inputs that produced it.
type GeneratedMaze struct {
	ID   uuid.UUID
	Seed int64
	Grid *maze.Grid
}

// MazeGenerator produces perfect mazes on request.
type MazeGenerator interface {
	// Generate builds a width x height maze. Zero dimensions fall back to the
	// service default; a nil seed is replaced by a random one.
	Generate(ctx context.Context, width, height int, seed *int64) (*GeneratedMaze, error)
}
