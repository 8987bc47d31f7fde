package search

import "github.com/beka-birhanu/maze-race/maze"

type bfsEntry struct {
	node maze.Coordinate
	path []maze.Coordinate
}

// BFS explores the maze layer by layer with a FIFO frontier. With uniform
// edge cost the first dequeue of the goal carries a shortest path.
type BFS struct {
	m        *maze.Maze
	end      maze.Coordinate
	queue    []bfsEntry
	visited  map[maze.Coordinate]bool
	terminal *StepResult
}

// NewBFS creates a breadth-first engine seeded with start.
func NewBFS(m *maze.Maze, start, end maze.Coordinate) (*BFS, error) {
	if err := validateEndpoints(m, start, end); err != nil {
		return nil, err
	}
	return &BFS{
		m:       m,
		end:     end,
		queue:   []bfsEntry{{node: start, path: []maze.Coordinate{start}}},
		visited: map[maze.Coordinate]bool{start: true},
	}, nil
}

// Advance dequeues one node and discovers its unvisited neighbors.
func (b *BFS) Advance() StepResult {
	if b.terminal != nil {
		return *b.terminal
	}
	if len(b.queue) == 0 {
		b.terminal = &StepResult{Visited: copyVisited(b.visited), Done: true}
		return *b.terminal
	}

	entry := b.queue[0]
	b.queue = b.queue[1:]

	if entry.node == b.end {
		b.terminal = &StepResult{
			Visited:      copyVisited(b.visited),
			FrontierPath: entry.path,
			Done:         true,
			ResultPath:   entry.path,
		}
		return *b.terminal
	}

	for _, d := range neighborOrder {
		next := entry.node.Add(d)
		if !b.m.IsPath(next) || b.visited[next] {
			continue
		}
		b.visited[next] = true
		b.queue = append(b.queue, bfsEntry{node: next, path: extendPath(entry.path, next)})
	}

	return StepResult{
		Visited:      copyVisited(b.visited),
		FrontierPath: copyPath(entry.path),
	}
}

// Done reports whether the search has finished.
func (b *BFS) Done() bool {
	return b.terminal != nil
}

// Result returns the found path, or nil.
func (b *BFS) Result() []maze.Coordinate {
	if b.terminal == nil {
		return nil
	}
	return b.terminal.ResultPath
}
