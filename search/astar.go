package search

import (
	"container/heap"

	"github.com/beka-birhanu/maze-race/maze"
)

// AStar explores the maze best-first, ordering the frontier by
// f = g + Manhattan(node, end). Manhattan distance is admissible and
// consistent on a 4-connected uniform-cost grid, so the first expansion of
// the goal carries a shortest path. Superseded heap entries are dropped
// lazily when popped.
type AStar struct {
	m        *maze.Maze
	end      maze.Coordinate
	open     priorityQueue
	gScore   map[maze.Coordinate]int
	visited  map[maze.Coordinate]bool
	terminal *StepResult
}

// NewAStar creates an A* engine seeded with start.
func NewAStar(m *maze.Maze, start, end maze.Coordinate) (*AStar, error) {
	if err := validateEndpoints(m, start, end); err != nil {
		return nil, err
	}

	a := &AStar{
		m:       m,
		end:     end,
		open:    priorityQueue{},
		gScore:  map[maze.Coordinate]int{start: 0},
		visited: map[maze.Coordinate]bool{start: true},
	}
	heap.Init(&a.open)
	heap.Push(&a.open, &pqItem{
		node:   start,
		gScore: 0,
		fCost:  manhattan(start, end),
		path:   []maze.Coordinate{start},
	})
	return a, nil
}

// Advance expands the open node with the lowest f and relaxes its neighbors.
// Visited tracks every node ever placed on the open set.
func (a *AStar) Advance() StepResult {
	if a.terminal != nil {
		return *a.terminal
	}

	// Skip stale entries so one Advance always does one real expansion.
	var current *pqItem
	for a.open.Len() > 0 {
		item := heap.Pop(&a.open).(*pqItem)
		if best, ok := a.gScore[item.node]; ok && item.gScore > best {
			continue
		}
		current = item
		break
	}
	if current == nil {
		a.terminal = &StepResult{Visited: copyVisited(a.visited), Done: true}
		return *a.terminal
	}

	if current.node == a.end {
		a.terminal = &StepResult{
			Visited:      copyVisited(a.visited),
			FrontierPath: current.path,
			Done:         true,
			ResultPath:   current.path,
		}
		return *a.terminal
	}

	for _, d := range neighborOrder {
		next := current.node.Add(d)
		if !a.m.IsPath(next) {
			continue
		}
		tentativeG := current.gScore + 1
		if best, ok := a.gScore[next]; ok && tentativeG >= best {
			continue
		}
		a.gScore[next] = tentativeG
		a.visited[next] = true
		heap.Push(&a.open, &pqItem{
			node:   next,
			gScore: tentativeG,
			fCost:  tentativeG + manhattan(next, a.end),
			path:   extendPath(current.path, next),
		})
	}

	return StepResult{
		Visited:      copyVisited(a.visited),
		FrontierPath: copyPath(current.path),
	}
}

// Done reports whether the search has finished.
func (a *AStar) Done() bool {
	return a.terminal != nil
}

// Result returns the found shortest path, or nil.
func (a *AStar) Result() []maze.Coordinate {
	if a.terminal == nil {
		return nil
	}
	return a.terminal.ResultPath
}
