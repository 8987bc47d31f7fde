/*
Package search implements incremental graph-search engines over a maze grid.

Each engine is a plain state machine: Advance performs one bounded unit of
work (a single queue, stack, or heap expansion) and returns a StepResult
snapshot, so an external ticker can drive the search at any pace without ever
blocking. Once an engine reports Done, further Advance calls re-return the
terminal result unchanged.

Three engines are provided: breadth-first search, depth-first search, and A*
with the Manhattan-distance heuristic. BFS and A* find a shortest path; DFS
does not. Engines are selected by name through a factory map so new
algorithms can be registered without touching their consumers.
*/
package search

import (
	"errors"

	"github.com/beka-birhanu/maze-race/maze"
)

// ErrInvalidNode is returned by engine constructors when the start or end
// coordinate is out of bounds or not a carved cell.
var ErrInvalidNode = errors.New("start or end node is out of bounds or a wall")

// neighborOrder is the expansion order used by BFS and A*.
var neighborOrder = []maze.Coordinate{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// dfsOrder is the fixed preference order for depth-first descent:
// up, right, down, left.
var dfsOrder = []maze.Coordinate{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// StepResult is the visualization-facing snapshot produced by one Advance
// call. Visited only ever grows across steps. ResultPath is nil until the
// goal is reached and stays nil if the search exhausts without finding it.
type StepResult struct {
	Visited      map[maze.Coordinate]bool
	FrontierPath []maze.Coordinate
	Done         bool
	ResultPath   []maze.Coordinate
}

// Solver is the capability interface shared by all search engines.
type Solver interface {
	// Advance performs the engine's next unit of work. After the search
	// finishes it idempotently re-returns the terminal result.
	Advance() StepResult
	// Done reports whether the search has finished, successfully or not.
	Done() bool
	// Result returns the found path from start to end, or nil.
	Result() []maze.Coordinate
}

// Factory builds a Solver for a maze and a pair of endpoints.
type Factory func(m *maze.Maze, start, end maze.Coordinate) (Solver, error)

// DefaultSolvers returns the factory map for the built-in engines, keyed by
// display name. Callers pass it (or their own map) to the coordinator
// explicitly; there is no ambient registry.
func DefaultSolvers() map[string]Factory {
	return map[string]Factory{
		"BFS": func(m *maze.Maze, start, end maze.Coordinate) (Solver, error) {
			return NewBFS(m, start, end)
		},
		"DFS": func(m *maze.Maze, start, end maze.Coordinate) (Solver, error) {
			return NewDFS(m, start, end)
		},
		"A*": func(m *maze.Maze, start, end maze.Coordinate) (Solver, error) {
			return NewAStar(m, start, end)
		},
	}
}

// ShortestPath runs a breadth-first search to completion and returns a
// shortest path from start to end, or nil if end is unreachable. It is the
// batch counterpart of the incremental engines.
func ShortestPath(m *maze.Maze, start, end maze.Coordinate) []maze.Coordinate {
	if err := validateEndpoints(m, start, end); err != nil {
		return nil
	}

	queue := [][]maze.Coordinate{{start}}
	visited := map[maze.Coordinate]bool{start: true}
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		node := path[len(path)-1]
		if node == end {
			return path
		}
		for _, d := range neighborOrder {
			next := node.Add(d)
			if !m.IsPath(next) || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, extendPath(path, next))
		}
	}
	return nil
}

func validateEndpoints(m *maze.Maze, start, end maze.Coordinate) error {
	if m == nil || !m.IsPath(start) || !m.IsPath(end) {
		return ErrInvalidNode
	}
	return nil
}

func manhattan(a, b maze.Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// extendPath copies path and appends next, so queued paths never alias.
func extendPath(path []maze.Coordinate, next maze.Coordinate) []maze.Coordinate {
	extended := make([]maze.Coordinate, len(path), len(path)+1)
	copy(extended, path)
	return append(extended, next)
}

func copyVisited(visited map[maze.Coordinate]bool) map[maze.Coordinate]bool {
	c := make(map[maze.Coordinate]bool, len(visited))
	for k, v := range visited {
		c[k] = v
	}
	return c
}

func copyPath(path []maze.Coordinate) []maze.Coordinate {
	if path == nil {
		return nil
	}
	c := make([]maze.Coordinate, len(path))
	copy(c, path)
	return c
}
