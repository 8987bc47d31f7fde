package search

import "github.com/beka-birhanu/maze-race/maze"

// DFS explores the maze depth-first with an explicit stack. The stack always
// holds the simple path from start to the node on top, so backtracking steps
// surface a shortened frontier path. The found path is not guaranteed to be
// shortest.
type DFS struct {
	m        *maze.Maze
	end      maze.Coordinate
	stack    []maze.Coordinate
	visited  map[maze.Coordinate]bool
	terminal *StepResult
}

// NewDFS creates a depth-first engine seeded with start.
func NewDFS(m *maze.Maze, start, end maze.Coordinate) (*DFS, error) {
	if err := validateEndpoints(m, start, end); err != nil {
		return nil, err
	}
	return &DFS{
		m:       m,
		end:     end,
		stack:   []maze.Coordinate{start},
		visited: map[maze.Coordinate]bool{start: true},
	}, nil
}

// Advance descends into the first unvisited neighbor of the stack top, in
// fixed up-right-down-left preference, or backtracks when none is left.
func (d *DFS) Advance() StepResult {
	if d.terminal != nil {
		return *d.terminal
	}
	if len(d.stack) == 0 {
		d.terminal = &StepResult{Visited: copyVisited(d.visited), Done: true}
		return *d.terminal
	}

	top := d.stack[len(d.stack)-1]
	if top == d.end {
		path := copyPath(d.stack)
		d.terminal = &StepResult{
			Visited:      copyVisited(d.visited),
			FrontierPath: path,
			Done:         true,
			ResultPath:   path,
		}
		return *d.terminal
	}

	descended := false
	for _, dir := range dfsOrder {
		next := top.Add(dir)
		if !d.m.IsPath(next) || d.visited[next] {
			continue
		}
		d.visited[next] = true
		d.stack = append(d.stack, next)
		descended = true
		break
	}
	if !descended {
		d.stack = d.stack[:len(d.stack)-1] // dead end, backtrack
	}

	return StepResult{
		Visited:      copyVisited(d.visited),
		FrontierPath: copyPath(d.stack),
	}
}

// Done reports whether the search has finished.
func (d *DFS) Done() bool {
	return d.terminal != nil
}

// Result returns the found path, or nil.
func (d *DFS) Result() []maze.Coordinate {
	if d.terminal == nil {
		return nil
	}
	return d.terminal.ResultPath
}
