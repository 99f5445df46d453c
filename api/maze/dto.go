// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/backtrack-maze/maze"
	"github.com/google/uuid"
)

// GenerateRequest holds the query parameters of a generation request.
type GenerateRequest struct {
	Width  int    `form:"width" binding:"omitempty,min=1"`
	Height int    `form:"height" binding:"omitempty,min=1"`
	Seed   *int64 `form:"seed"`
}

// CellRequest addresses a single cell of a deterministic maze.
type CellRequest struct {
	Width  int   `uri:"width" binding:"required,min=1"`
	Height int   `uri:"height" binding:"required,min=1"`
	Seed   int64 `uri:"seed"`
	X      int   `uri:"x" binding:"min=0"`
	Y      int   `uri:"y" binding:"min=0"`
}

// MazeResponse describes a generated maze. Cells is indexed [y][x] and lists
// the walls still standing as "N", "S", "E", "W".
type MazeResponse struct {
	ID       uuid.UUID    `json:"id"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Seed     int64        `json:"seed"`
	Passages int          `json:"passages"`
	Cells    [][][]string `json:"cells"`
}

// CellResponse lists the walls of one cell.
type CellResponse struct {
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Walls []string `json:"walls"`
}

func wallNames(w maze.WallSet) []string {
	names := make([]string, 0, 4)
	for _, d := range w.Directions() {
		names = append(names, d.Short())
	}
	return names
}

func newMazeResponse(id uuid.UUID, seed int64, g *maze.Grid) (*MazeResponse, error) {
	cells := make([][][]string, g.Height())
	for y := range cells {
		cells[y] = make([][]string, g.Width())
		for x := range cells[y] {
			walls, err := g.Walls(x, y)
			if err != nil {
				return nil, err
			}
			cells[y][x] = wallNames(walls)
		}
	}

	return &MazeResponse{
		ID:       id,
		Width:    g.Width(),
		Height:   g.Height(),
		Seed:     seed,
		Passages: g.OpenPassages(),
		Cells:    cells,
	}, nil
}
