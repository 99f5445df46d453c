package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/backtrack-maze/maze"
	"github.com/beka-birhanu/backtrack-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 100
	defaultMazeSize     = 10
)

var (
	ErrMazeTooLarge = errors.New("maze dimensions exceed the configured limit")
)

// Config holds the settings for a MazeService.
type Config struct {
	MaxDimension int      // Largest accepted width or height
	DefaultSize  int      // Width and height used when a request leaves them zero
	Logger       i.Logger // Destination for service logs
}

// MazeService generates mazes for callers that only know dimensions and an
// optional seed.
type MazeService struct {
	maxDimension int
	defaultSize  int
	logger       i.Logger

	seedMu  sync.Mutex
	seedRng *rand.Rand
}

// NewMazeService creates a MazeService, filling unset limits with defaults.
func NewMazeService(c Config) (*MazeService, error) {
	if c.Logger == nil {
		return nil, errors.New("maze service requires a logger")
	}

	if c.MaxDimension <= 0 {
		c.MaxDimension = defaultMaxDimension
	}

	if c.DefaultSize <= 0 {
		c.DefaultSize = min(defaultMazeSize, c.MaxDimension)
	}

	if c.DefaultSize > c.MaxDimension {
		return nil, fmt.Errorf("default maze size %d exceeds max dimension %d", c.DefaultSize, c.MaxDimension)
	}

	return &MazeService{
		maxDimension: c.MaxDimension,
		defaultSize:  c.DefaultSize,
		logger:       c.Logger,
		seedRng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Generate implements i.MazeGenerator.
func (s *MazeService) Generate(ctx context.Context, width, height int, seed *int64) (*i.GeneratedMaze, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if width == 0 {
		width = s.defaultSize
	}
	if height == 0 {
		height = s.defaultSize
	}

	if max(width, height) > s.maxDimension {
		s.logger.Warning(fmt.Sprintf("Rejected %dx%d maze: limit is %d", width, height, s.maxDimension))
		return nil, fmt.Errorf("%w: %dx%d, limit %d", ErrMazeTooLarge, width, height, s.maxDimension)
	}

	var actualSeed int64
	if seed != nil {
		actualSeed = *seed
	} else {
		actualSeed = s.randomSeed()
	}

	grid, err := maze.Generate(width, height, actualSeed)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Generating %dx%d maze: %v", width, height, err))
		return nil, err
	}

	generated := &i.GeneratedMaze{
		ID:   uuid.New(),
		Seed: actualSeed,
		Grid: grid,
	}
	s.logger.Info(fmt.Sprintf("Generated maze %s: %dx%d seed=%d", generated.ID, width, height, actualSeed))
	return generated, nil
}

func (s *MazeService) randomSeed() int64 {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	return s.seedRng.Int63()
}
