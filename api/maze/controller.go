package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/backtrack-maze/maze"
	"github.com/beka-birhanu/backtrack-maze/service"
	"github.com/beka-birhanu/backtrack-maze/service/i"
	"github.com/gin-gonic/gin"
)

// Controller serves maze generation endpoints.
type Controller struct {
	generator i.MazeGenerator
}

// NewController initializes a Controller.
func NewController(g i.MazeGenerator) (*Controller, error) {
	if g == nil {
		return nil, errors.New("maze controller requires a generator")
	}
	return &Controller{generator: g}, nil
}

// Register registers the maze routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", c.generate)
		mazes.GET("/:width/:height/:seed/walls/:x/:y", c.cellWalls)
	}
}

// generate handles maze generation requests.
func (c *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generated, err := c.generator.Generate(ctx.Request.Context(), request.Width, request.Height, request.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response, err := newMazeResponse(generated.ID, generated.Seed, generated.Grid)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// cellWalls returns the walls of one cell of the maze identified by its
// dimensions and seed.
func (c *Controller) cellWalls(ctx *gin.Context) {
	var request CellRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generated, err := c.generator.Generate(ctx.Request.Context(), request.Width, request.Height, &request.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	walls, err := generated.Grid.Walls(request.X, request.Y)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &CellResponse{
		X:     request.X,
		Y:     request.Y,
		Walls: wallNames(walls),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrConfig), errors.Is(err, service.ErrMazeTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, maze.ErrOutOfBounds):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
