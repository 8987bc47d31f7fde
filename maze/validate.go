package maze

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
)

// Validation errors.
var (
	ErrNotPerfect     = errors.New("maze is not a perfect maze")
	ErrBadOpenings    = errors.New("maze boundary openings are invalid")
	ErrMalformedGrid  = errors.New("maze grid has the wrong shape")
	ErrBoundaryBreach = errors.New("maze boundary is carved outside its openings")
)

// Validate checks that the maze is a well-formed perfect maze: every logical
// cell is carved, the carved joints form a spanning tree over the logical
// lattice (w*h-1 joints, single connected component), and the boundary is
// solid except for the two distinct openings. Connectivity is tracked with a
// union-find over the passage centers.
func (m *Maze) Validate() error {
	if m == nil || m.Width <= 0 || m.Height <= 0 {
		return ErrInvalidDimensions
	}
	if len(m.Grid) != m.GridHeight() {
		return ErrMalformedGrid
	}
	for _, row := range m.Grid {
		if len(row) != m.GridWidth() {
			return ErrMalformedGrid
		}
	}

	// Every passage center must be carved.
	cells := make(map[Coordinate]*disjoint.Element, m.Width*m.Height)
	for y := 1; y < m.GridHeight(); y += 2 {
		for x := 1; x < m.GridWidth(); x += 2 {
			c := Coordinate{X: x, Y: y}
			if m.Grid[y][x] != Path {
				return fmt.Errorf("%w: passage center %v is a wall", ErrNotPerfect, c)
			}
			cells[c] = disjoint.NewElement()
		}
	}

	// A perfect maze carves exactly w*h-1 joints, and unioning across them
	// must leave a single component.
	joints := 0
	for y := 1; y < m.GridHeight()-1; y++ {
		for x := 1; x < m.GridWidth()-1; x++ {
			if (x+y)%2 == 0 || m.Grid[y][x] != Path {
				continue // passage center, corner joint, or uncarved
			}
			joints++
			var a, b Coordinate
			if x%2 == 1 { // horizontal joint between vertical neighbors
				a = Coordinate{X: x, Y: y - 1}
				b = Coordinate{X: x, Y: y + 1}
			} else {
				a = Coordinate{X: x - 1, Y: y}
				b = Coordinate{X: x + 1, Y: y}
			}
			disjoint.Union(cells[a], cells[b])
		}
	}
	if joints != m.Width*m.Height-1 {
		return fmt.Errorf("%w: %d carved joints, want %d", ErrNotPerfect, joints, m.Width*m.Height-1)
	}

	root := cells[Coordinate{X: 1, Y: 1}].Find()
	for c, e := range cells {
		if e.Find() != root {
			return fmt.Errorf("%w: cell %v is disconnected", ErrNotPerfect, c)
		}
	}

	return m.validateBoundary()
}

// validateBoundary checks that Start and End are the only two carved cells in
// the outer wall and that each sits next to a passage center.
func (m *Maze) validateBoundary() error {
	if m.Start == m.End || !m.IsPath(m.Start) || !m.IsPath(m.End) {
		return ErrBadOpenings
	}

	onBoundary := func(c Coordinate) bool {
		return c.X == 0 || c.Y == 0 || c.X == m.GridWidth()-1 || c.Y == m.GridHeight()-1
	}
	if !onBoundary(m.Start) || !onBoundary(m.End) {
		return ErrBadOpenings
	}

	hasInnerPassage := func(c Coordinate) bool {
		for _, d := range []Coordinate{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}} {
			n := c.Add(d)
			if m.IsPath(n) && !onBoundary(n) {
				return true
			}
		}
		return false
	}
	if !hasInnerPassage(m.Start) || !hasInnerPassage(m.End) {
		return ErrBadOpenings
	}

	for y := 0; y < m.GridHeight(); y++ {
		for x := 0; x < m.GridWidth(); x++ {
			c := Coordinate{X: x, Y: y}
			if !onBoundary(c) || m.Grid[y][x] != Path {
				continue
			}
			if c != m.Start && c != m.End {
				return ErrBoundaryBreach
			}
		}
	}
	return nil
}
