package service

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/maze-race/maze"
	"github.com/beka-birhanu/maze-race/search"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const tickLimit = 100000

func newTestManager(t *testing.T) *RaceManager {
	t.Helper()
	rm, err := NewRaceManager(&Config{Logger: log.New(io.Discard, "", 0)})
	assert.NoError(t, err)
	return rm
}

func newTestMaze(t *testing.T, w, h int, seed int64) *maze.Maze {
	t.Helper()
	m, err := maze.New(w, h, rand.New(rand.NewSource(seed)))
	assert.NoError(t, err)
	return m
}

func registerDefaults(t *testing.T, rm *RaceManager) {
	t.Helper()
	factories := search.DefaultSolvers()
	for _, name := range []string{"BFS", "DFS", "A*"} {
		assert.NoError(t, rm.Register(name, factories[name]))
	}
}

func runToCompletion(t *testing.T, rm *RaceManager) {
	t.Helper()
	for i := 0; i < tickLimit; i++ {
		if !rm.IsRunning() {
			return
		}
		rm.Tick()
	}
	t.Fatal("race did not finish within the tick limit")
}

// stubSolver finishes after a fixed number of advances. It lets the
// coordinator tests control completion timing exactly.
type stubSolver struct {
	stepsLeft int
	path      []maze.Coordinate
	terminal  *search.StepResult
}

func (s *stubSolver) Advance() search.StepResult {
	if s.terminal != nil {
		return *s.terminal
	}
	s.stepsLeft--
	if s.stepsLeft <= 0 {
		s.terminal = &search.StepResult{
			Visited:    map[maze.Coordinate]bool{},
			Done:       true,
			ResultPath: s.path,
		}
		return *s.terminal
	}
	return search.StepResult{Visited: map[maze.Coordinate]bool{}}
}

func (s *stubSolver) Done() bool { return s.terminal != nil }

func (s *stubSolver) Result() []maze.Coordinate {
	if s.terminal == nil {
		return nil
	}
	return s.terminal.ResultPath
}

func stubFactory(steps int) search.Factory {
	return func(m *maze.Maze, start, end maze.Coordinate) (search.Solver, error) {
		return &stubSolver{stepsLeft: steps, path: []maze.Coordinate{start, end}}, nil
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	rm := newTestManager(t)
	assert.NoError(t, rm.Register("BFS", stubFactory(1)))
	assert.ErrorIs(t, rm.Register("BFS", stubFactory(1)), ErrDuplicateSolver)
}

func TestStartSingleLifecycle(t *testing.T) {
	rm := newTestManager(t)
	registerDefaults(t, rm)
	m := newTestMaze(t, 6, 6, 1)

	assert.ErrorIs(t, rm.StartSingle("Dijkstra", m), ErrUnknownSolver)

	assert.NoError(t, rm.StartSingle("BFS", m))
	assert.True(t, rm.IsRunning())
	assert.NotEqual(t, uuid.Nil, rm.RaceID())

	assert.ErrorIs(t, rm.StartSingle("DFS", m), ErrAlreadyRunning)
	assert.ErrorIs(t, rm.StartBattle(m), ErrAlreadyRunning)

	runToCompletion(t, rm)

	state, ok := rm.State("BFS")
	assert.True(t, ok)
	assert.True(t, state.Done)
	assert.NotNil(t, state.ResultPath)
	assert.Equal(t, []string{"BFS"}, rm.Standings())

	// Once no engine is active a new race may start without a reset.
	assert.NoError(t, rm.StartSingle("DFS", m))
	runToCompletion(t, rm)
	assert.Equal(t, []string{"DFS"}, rm.Standings())
}

func TestStartBattleRunsAllSolvers(t *testing.T) {
	rm := newTestManager(t)
	registerDefaults(t, rm)
	m := newTestMaze(t, 10, 10, 4)

	assert.NoError(t, rm.StartBattle(m))
	runToCompletion(t, rm)

	standings := rm.Standings()
	assert.Len(t, standings, 3)

	bfsState, ok := rm.State("BFS")
	assert.True(t, ok)
	astarState, ok := rm.State("A*")
	assert.True(t, ok)
	dfsState, ok := rm.State("DFS")
	assert.True(t, ok)

	assert.NotNil(t, bfsState.ResultPath)
	assert.NotNil(t, dfsState.ResultPath)
	assert.NotNil(t, astarState.ResultPath)
	assert.Equal(t, len(bfsState.ResultPath), len(astarState.ResultPath))
}

func TestBattleTieBreakFollowsRegistrationOrder(t *testing.T) {
	rm := newTestManager(t)
	assert.NoError(t, rm.Register("BFS", stubFactory(1)))
	assert.NoError(t, rm.Register("DFS", stubFactory(1)))
	assert.NoError(t, rm.Register("A*", stubFactory(1)))

	m := newTestMaze(t, 3, 3, 8)
	assert.NoError(t, rm.StartBattle(m))

	// All three finish on the same tick; completion resolves in
	// registration order, never "simultaneously".
	rm.Tick()
	assert.False(t, rm.IsRunning())
	assert.Equal(t, []string{"BFS", "DFS", "A*"}, rm.Standings())
}

func TestStartBattleWithNoUsableSolver(t *testing.T) {
	rm := newTestManager(t)
	boom := errors.New("boom")
	assert.NoError(t, rm.Register("BFS", func(m *maze.Maze, start, end maze.Coordinate) (search.Solver, error) {
		return nil, boom
	}))

	m := newTestMaze(t, 3, 3, 8)
	assert.ErrorIs(t, rm.StartBattle(m), ErrNoValidSolvers)
	assert.False(t, rm.IsRunning())
}

func TestStartRejectsInvalidMaze(t *testing.T) {
	rm := newTestManager(t)
	registerDefaults(t, rm)

	m := newTestMaze(t, 4, 4, 2)
	m.Grid[1][1] = maze.Wall // corrupt a passage center

	assert.ErrorIs(t, rm.StartSingle("BFS", m), ErrInvalidMaze)
	assert.ErrorIs(t, rm.StartBattle(m), ErrInvalidMaze)
}

func TestResetDiscardsEverything(t *testing.T) {
	rm := newTestManager(t)
	registerDefaults(t, rm)
	m := newTestMaze(t, 6, 6, 3)

	assert.NoError(t, rm.StartBattle(m))
	rm.Tick()
	rm.Reset()

	assert.False(t, rm.IsRunning())
	assert.Equal(t, uuid.Nil, rm.RaceID())
	_, ok := rm.State("BFS")
	assert.False(t, ok)
	assert.Empty(t, rm.Standings())

	// Registered solvers survive a reset.
	assert.NoError(t, rm.StartSingle("A*", m))
	runToCompletion(t, rm)
	state, ok := rm.State("A*")
	assert.True(t, ok)
	assert.True(t, state.Done)
}
