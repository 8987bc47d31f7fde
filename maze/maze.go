/*
Package maze provides generation of perfect rectangular mazes.

A maze of logical size w x h is carved on a (2w+1) x (2h+1) grid of Wall and
Path cells: odd coordinates are the passage centers of the logical cell
lattice, even coordinates are the wall joints between them. Generation uses
randomized iterative depth-first carving, which produces a spanning tree over
the logical lattice, so exactly one simple path exists between any two
passages. Two distinct boundary openings are then carved and exposed as Start
and End.

The random source is injected so generation is deterministic under a fixed
seed. The returned maze is never mutated after construction.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
)

// carveDirections are the four axis moves between neighboring passage
// centers, two grid units apart.
var carveDirections = []Coordinate{
	{X: 0, Y: -2},
	{X: 0, Y: 2},
	{X: -2, Y: 0},
	{X: 2, Y: 0},
}

// Maze is an immutable carved grid with its two boundary openings.
type Maze struct {
	Width  int          // Logical width in cells (columns)
	Height int          // Logical height in cells (rows)
	Grid   [][]CellType // Grid[y][x], (2*Height+1) rows by (2*Width+1) columns
	Start  Coordinate   // Carved opening in the boundary wall
	End    Coordinate   // Second carved opening, always distinct from Start
}

// New generates a perfect maze of the given logical dimensions using rng as
// the only source of randomness. A nil rng falls back to a clock-seeded one.
func New(width, height int, rng *rand.Rand) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	gridWidth := 2*width + 1
	gridHeight := 2*height + 1
	grid := make([][]CellType, gridHeight)
	for y := range grid {
		grid[y] = make([]CellType, gridWidth)
	}

	m := &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
	}
	m.carve(rng)
	m.openBoundary(rng)
	return m, nil
}

// carve runs the randomized depth-first walk over the logical lattice,
// knocking out the wall joint between each visited pair of cells.
func (m *Maze) carve(rng *rand.Rand) {
	start := Coordinate{
		X: 2*rng.Intn(m.Width) + 1,
		Y: 2*rng.Intn(m.Height) + 1,
	}
	m.Grid[start.Y][start.X] = Path
	stack := []Coordinate{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []Coordinate
		for _, d := range carveDirections {
			next := current.Add(d)
			if next.X > 0 && next.X < m.GridWidth() && next.Y > 0 && next.Y < m.GridHeight() &&
				m.Grid[next.Y][next.X] == Wall {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		joint := Coordinate{X: (current.X + next.X) / 2, Y: (current.Y + next.Y) / 2}
		m.Grid[joint.Y][joint.X] = Path
		m.Grid[next.Y][next.X] = Path
		stack = append(stack, next)
	}
}

// openBoundary carves the two boundary openings and records them as Start
// and End. Single-corridor mazes have too few distinct edge cells for random
// sampling and get deterministic opposite-wall openings instead.
func (m *Maze) openBoundary(rng *rand.Rand) {
	gw, gh := m.GridWidth(), m.GridHeight()

	if m.Width == 1 {
		m.Start = Coordinate{X: 1, Y: 0}
		m.End = Coordinate{X: 1, Y: gh - 1}
		m.Grid[m.Start.Y][m.Start.X] = Path
		m.Grid[m.End.Y][m.End.X] = Path
		return
	}
	if m.Height == 1 {
		m.Start = Coordinate{X: 0, Y: 1}
		m.End = Coordinate{X: gw - 1, Y: 1}
		m.Grid[m.Start.Y][m.Start.X] = Path
		m.Grid[m.End.Y][m.End.X] = Path
		return
	}

	// Passage centers touching each of the four logical edges; the side
	// columns skip the corner cells already collected with the top and
	// bottom rows.
	var edgeCells []Coordinate
	for x := 1; x < gw; x += 2 {
		edgeCells = append(edgeCells, Coordinate{X: x, Y: 1})
		edgeCells = append(edgeCells, Coordinate{X: x, Y: gh - 2})
	}
	for y := 3; y < gh-2; y += 2 {
		edgeCells = append(edgeCells, Coordinate{X: 1, Y: y})
		edgeCells = append(edgeCells, Coordinate{X: gw - 2, Y: y})
	}

	first := rng.Intn(len(edgeCells))
	second := rng.Intn(len(edgeCells) - 1)
	if second >= first {
		second++
	}

	m.Start = m.outerOpening(edgeCells[first])
	m.End = m.outerOpening(edgeCells[second])
	m.Grid[m.Start.Y][m.Start.X] = Path
	m.Grid[m.End.Y][m.End.X] = Path
}

// outerOpening maps an edge passage center to the boundary wall cell one
// step outward, perpendicular to its edge.
func (m *Maze) outerOpening(cell Coordinate) Coordinate {
	switch {
	case cell.Y == 1:
		return Coordinate{X: cell.X, Y: 0}
	case cell.Y == m.GridHeight()-2:
		return Coordinate{X: cell.X, Y: m.GridHeight() - 1}
	case cell.X == 1:
		return Coordinate{X: 0, Y: cell.Y}
	default:
		return Coordinate{X: m.GridWidth() - 1, Y: cell.Y}
	}
}

// GridWidth returns the number of grid columns, walls included.
func (m *Maze) GridWidth() int {
	return 2*m.Width + 1
}

// GridHeight returns the number of grid rows, walls included.
func (m *Maze) GridHeight() int {
	return 2*m.Height + 1
}

// InBound reports whether the coordinate lies inside the grid.
func (m *Maze) InBound(c Coordinate) bool {
	return c.X >= 0 && c.X < m.GridWidth() && c.Y >= 0 && c.Y < m.GridHeight()
}

// IsPath reports whether the coordinate is a carved, walkable cell.
func (m *Maze) IsPath(c Coordinate) bool {
	return m.InBound(c) && m.Grid[c.Y][c.X] == Path
}

// String renders the grid as ASCII art, one character per grid cell.
func (m *Maze) String() string {
	var b strings.Builder
	for y := 0; y < m.GridHeight(); y++ {
		for x := 0; x < m.GridWidth(); x++ {
			c := Coordinate{X: x, Y: y}
			switch {
			case c == m.Start:
				b.WriteByte('S')
			case c == m.End:
				b.WriteByte('E')
			case m.Grid[y][x] == Wall:
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
