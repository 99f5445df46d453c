package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable counts the cells reachable from the origin through open passages.
func reachable(t *testing.T, g *Grid) int {
	t.Helper()
	seen := map[CellPosition]bool{{}: true}
	stack := []CellPosition{{}}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		walls, err := g.Walls(cell.X, cell.Y)
		require.NoError(t, err)
		for _, d := range Directions {
			if walls.Has(d) {
				continue
			}
			n := cell.Neighbor(d)
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(seen)
}

func TestGenerate(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := Generate(0, 4, 1)
		assert.ErrorIs(t, err, ErrConfig)
		_, err = Generate(4, 0, 1)
		assert.ErrorIs(t, err, ErrConfig)
		_, err = Generate(-3, -3, 1)
		assert.ErrorIs(t, err, ErrConfig)
	})

	t.Run("single cell keeps every wall", func(t *testing.T) {
		for _, seed := range []int64{0, 1, 42, -7} {
			g, err := Generate(1, 1, seed)
			require.NoError(t, err)
			walls, err := g.Walls(0, 0)
			require.NoError(t, err)
			assert.Equal(t, AllWalls, walls)
			assert.Equal(t, 0, g.OpenPassages())
		}
	})

	t.Run("two cells are joined east to west", func(t *testing.T) {
		g, err := Generate(2, 1, 42)
		require.NoError(t, err)

		left, err := g.Walls(0, 0)
		require.NoError(t, err)
		right, err := g.Walls(1, 0)
		require.NoError(t, err)

		assert.Equal(t, AllWalls.Without(East), left)
		assert.Equal(t, AllWalls.Without(West), right)
		assert.Equal(t, 1, g.OpenPassages())
	})

	t.Run("produces spanning trees", func(t *testing.T) {
		sizes := [][2]int{{1, 7}, {7, 1}, {2, 2}, {5, 3}, {16, 16}, {40, 25}}
		for _, size := range sizes {
			for seed := int64(0); seed < 5; seed++ {
				g, err := Generate(size[0], size[1], seed)
				require.NoError(t, err)

				cells := size[0] * size[1]
				assert.Equal(t, cells-1, g.OpenPassages(), "size %v seed %d", size, seed)
				assert.Equal(t, cells, reachable(t, g), "size %v seed %d", size, seed)
				assert.NoError(t, g.Validate())
			}
		}
	})

	t.Run("is deterministic for a seed", func(t *testing.T) {
		a, err := Generate(30, 20, 1234)
		require.NoError(t, err)
		b, err := Generate(30, 20, 1234)
		require.NoError(t, err)
		assert.Equal(t, a.cells, b.cells)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		a, err := Generate(30, 20, 1)
		require.NoError(t, err)
		b, err := Generate(30, 20, 2)
		require.NoError(t, err)
		assert.NotEqual(t, a.cells, b.cells)
	})
}

func TestGeneratorDeadEndMemo(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		with, err := NewGenerator(25, 25, seed)
		require.NoError(t, err)
		without, err := NewGenerator(25, 25, seed, WithDeadEndMemo(false))
		require.NoError(t, err)

		assert.Equal(t, with.Run().cells, without.Run().cells, "seed %d", seed)

		assert.Zero(t, without.Stats().DeadEndsMarked)
		assert.Zero(t, without.Stats().DeadEndsSkipped)
		assert.Greater(t, with.Stats().DeadEndsMarked, 0)
		assert.LessOrEqual(t, with.Stats().CellsScanned, without.Stats().CellsScanned)
	}
}

func TestGeneratorStep(t *testing.T) {
	g, err := NewGenerator(4, 4, 9)
	require.NoError(t, err)
	assert.Equal(t, Advancing, g.State())
	assert.Equal(t, 1, g.visited.Len())

	steps := 0
	for g.State() != Done {
		before := g.Stats().WallsRemoved
		state := g.Step()
		after := g.Stats().WallsRemoved
		assert.LessOrEqual(t, after-before, 1)
		if state == Advancing && after > before {
			assert.True(t, g.visited.Visited(g.Current()))
			assert.Equal(t, g.Current(), g.visited.At(g.visited.Len()-1))
		}
		steps++
		require.Less(t, steps, 1000)
	}

	assert.Equal(t, 15, g.Stats().WallsRemoved)
	assert.Equal(t, 16, g.visited.Len())
	assert.Equal(t, Done, g.Step())

	for i := 0; i < g.visited.Len(); i++ {
		assert.True(t, g.deadEnds.Contains(g.visited.At(i)))
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Advancing", Advancing.String())
	assert.Equal(t, "Backtracking", Backtracking.String())
	assert.Equal(t, "Done", Done.String())
	assert.Equal(t, "State(9)", State(9).String())
}

// generatorAt returns a generator whose walk starts at start instead of a
// random cell.
func generatorAt(t *testing.T, width, height int, seed int64, start CellPosition) *Generator {
	t.Helper()
	grid, err := NewGrid(width, height)
	require.NoError(t, err)

	g := &Generator{
		grid:     grid,
		visited:  NewVisitTracker(width * height),
		deadEnds: NewDeadEndSet(),
		rng:      rand.New(rand.NewSource(seed)),
		state:    Advancing,
		cur:      start,
		memo:     true,
	}
	g.visited.Visit(start)
	return g
}

func TestGeneratorDirectionIsUniform(t *testing.T) {
	const runs = 4000
	start := CellPosition{X: 1, Y: 1}
	counts := map[Direction]int{}

	for seed := int64(0); seed < runs; seed++ {
		g := generatorAt(t, 3, 3, seed, start)
		require.Equal(t, Advancing, g.Step())

		moved := false
		for _, d := range Directions {
			if g.Current() == start.Neighbor(d) {
				counts[d]++
				moved = true
			}
		}
		require.True(t, moved, "seed %d", seed)
	}

	// Expected 1000 each; the standard deviation is about 27.
	for _, d := range Directions {
		assert.InDelta(t, runs/4, counts[d], 150, "direction %s", d)
	}
}

func TestGeneratorDeadEndMustBeVisited(t *testing.T) {
	g := generatorAt(t, 3, 3, 1, CellPosition{X: 0, Y: 0})

	assert.Panics(t, func() { g.markDeadEnd(CellPosition{X: 2, Y: 2}) })
	assert.Zero(t, g.deadEnds.Len())

	g.markDeadEnd(CellPosition{X: 0, Y: 0})
	assert.True(t, g.deadEnds.Contains(CellPosition{X: 0, Y: 0}))
	assert.Equal(t, 1, g.Stats().DeadEndsMarked)
}
