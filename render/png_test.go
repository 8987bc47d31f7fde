package render

import (
	"bytes"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/maze-race/maze"
	"github.com/beka-birhanu/maze-race/search"
	"github.com/stretchr/testify/assert"
)

func newTestMaze(t *testing.T, w, h int, seed int64) *maze.Maze {
	t.Helper()
	m, err := maze.New(w, h, rand.New(rand.NewSource(seed)))
	assert.NoError(t, err)
	return m
}

func TestSnapshotLayout(t *testing.T) {
	m := newTestMaze(t, 3, 3, 6)
	panelWidth := m.GridWidth() * cellPixels
	panelHeight := m.GridHeight() * cellPixels

	t.Run("bare maze is a single panel", func(t *testing.T) {
		img := Snapshot(m, nil)
		assert.Equal(t, panelWidth, img.Bounds().Dx())
		assert.Equal(t, labelHeight+panelHeight, img.Bounds().Dy())
	})

	t.Run("one panel per solver", func(t *testing.T) {
		states := map[string]search.StepResult{
			"BFS": {},
			"DFS": {},
		}
		img := Snapshot(m, states)
		assert.Equal(t, 2*panelWidth+panelGap, img.Bounds().Dx())
	})
}

func TestSnapshotCellColors(t *testing.T) {
	m := newTestMaze(t, 3, 3, 6)
	visited := maze.Coordinate{X: 1, Y: 1}
	states := map[string]search.StepResult{
		"BFS": {Visited: map[maze.Coordinate]bool{visited: true}},
	}
	img := Snapshot(m, states)

	centerOf := func(c maze.Coordinate) (int, int) {
		return c.X*cellPixels + cellPixels/2, labelHeight + c.Y*cellPixels + cellPixels/2
	}

	x, y := centerOf(maze.Coordinate{X: 0, Y: 0}) // corner is always a wall
	assert.Equal(t, wallColor, img.RGBAAt(x, y))

	x, y = centerOf(m.Start)
	assert.Equal(t, startColor, img.RGBAAt(x, y))

	x, y = centerOf(m.End)
	assert.Equal(t, goalColor, img.RGBAAt(x, y))

	x, y = centerOf(visited)
	assert.Equal(t, visitedColor, img.RGBAAt(x, y))
}

func TestWritePNGProducesDecodableFile(t *testing.T) {
	m := newTestMaze(t, 2, 2, 9)
	path := filepath.Join(t.TempDir(), "maze.png")

	assert.NoError(t, WritePNG(path, m, nil))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, m.GridWidth()*cellPixels, img.Bounds().Dx())
}
