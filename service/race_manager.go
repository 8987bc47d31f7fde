package service

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/beka-birhanu/maze-race/config"
	"github.com/beka-birhanu/maze-race/maze"
	"github.com/beka-birhanu/maze-race/search"
	"github.com/google/uuid"
)

// Coordinator errors.
var (
	ErrAlreadyRunning  = errors.New("a race is already running; reset first")
	ErrInvalidMaze     = errors.New("maze failed validation")
	ErrUnknownSolver   = errors.New("no solver registered under that name")
	ErrDuplicateSolver = errors.New("solver name already registered")
	ErrNoValidSolvers  = errors.New("no registered solver could start on this maze")
)

// RaceManager drives one or more search engines against a shared read-only
// maze, advancing every active engine by exactly one step per Tick. Engines
// advance in registration order, so simultaneous completions within a tick
// resolve deterministically. Finished engines leave the active set but their
// final state stays readable until Reset.
type RaceManager struct {
	factories map[string]search.Factory
	order     []string // registration order, the tick and tie-break order

	raceID    uuid.UUID
	engines   map[string]search.Solver
	active    []string
	states    map[string]search.StepResult
	standings []string // names in completion order

	logger *log.Logger
	sync.RWMutex
}

// Config carries the RaceManager dependencies.
type Config struct {
	Logger *log.Logger
}

// NewRaceManager creates an empty coordinator. Solvers are attached with
// Register before a race starts.
func NewRaceManager(c *Config) (*RaceManager, error) {
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &RaceManager{
		factories: make(map[string]search.Factory),
		engines:   make(map[string]search.Solver),
		states:    make(map[string]search.StepResult),
		logger:    logger,
	}, nil
}

// Register attaches a solver factory under a display name. Registration
// order is the order engines advance in every tick.
func (r *RaceManager) Register(name string, factory search.Factory) error {
	r.Lock()
	defer r.Unlock()
	if name == "" || factory == nil {
		return ErrUnknownSolver
	}
	if _, ok := r.factories[name]; ok {
		return ErrDuplicateSolver
	}
	r.factories[name] = factory
	r.order = append(r.order, name)
	return nil
}

// StartSingle starts one named engine against the maze.
func (r *RaceManager) StartSingle(name string, m *maze.Maze) error {
	r.Lock()
	defer r.Unlock()
	if len(r.active) > 0 {
		return ErrAlreadyRunning
	}

	factory, ok := r.factories[name]
	if !ok {
		return ErrUnknownSolver
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMaze, err)
	}

	engine, err := factory(m, m.Start, m.End)
	if err != nil {
		return err
	}

	r.clearLocked()
	r.raceID = uuid.New()
	r.engines[name] = engine
	r.active = append(r.active, name)
	r.logger.Printf("%s[INFO]%s race %s: started %s from %v to %v",
		config.LogInfoColor, config.LogColorReset, r.raceID, name, m.Start, m.End)
	return nil
}

// StartBattle starts every registered engine against the same maze. A
// factory that fails is logged and skipped; the battle starts as long as at
// least one engine is valid.
func (r *RaceManager) StartBattle(m *maze.Maze) error {
	r.Lock()
	defer r.Unlock()
	if len(r.active) > 0 {
		return ErrAlreadyRunning
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMaze, err)
	}

	r.clearLocked()
	r.raceID = uuid.New()
	for _, name := range r.order {
		engine, err := r.factories[name](m, m.Start, m.End)
		if err != nil {
			r.logger.Printf("%s[ERROR]%s race %s: solver %s rejected the maze: %v",
				config.LogErrorColor, config.LogColorReset, r.raceID, name, err)
			continue
		}
		r.engines[name] = engine
		r.active = append(r.active, name)
	}
	if len(r.active) == 0 {
		return ErrNoValidSolvers
	}

	r.logger.Printf("%s[INFO]%s race %s: battle started with %d solvers",
		config.LogInfoColor, config.LogColorReset, r.raceID, len(r.active))
	return nil
}

// Tick advances every still-active engine by one step, in registration
// order. Engines that finish are retired from the active set and appended to
// the standings; their final state stays readable.
func (r *RaceManager) Tick() {
	r.Lock()
	defer r.Unlock()

	var stillActive []string
	for _, name := range r.active {
		result := r.engines[name].Advance()
		r.states[name] = result
		if !result.Done {
			stillActive = append(stillActive, name)
			continue
		}
		r.standings = append(r.standings, name)
		if result.ResultPath != nil {
			r.logger.Printf("%s[INFO]%s race %s: %s finished, path length %d, %d cells visited",
				config.LogInfoColor, config.LogColorReset, r.raceID, name, len(result.ResultPath), len(result.Visited))
		} else {
			r.logger.Printf("%s[INFO]%s race %s: %s exhausted without a path",
				config.LogInfoColor, config.LogColorReset, r.raceID, name)
		}
	}
	r.active = stillActive
}

// IsRunning reports whether any engine is still active.
func (r *RaceManager) IsRunning() bool {
	r.RLock()
	defer r.RUnlock()
	return len(r.active) > 0
}

// Reset discards all engine state. Safe to call at any time.
func (r *RaceManager) Reset() {
	r.Lock()
	defer r.Unlock()
	r.clearLocked()
}

// State returns the latest snapshot for a named engine, if it exists.
func (r *RaceManager) State(name string) (search.StepResult, bool) {
	r.RLock()
	defer r.RUnlock()
	s, ok := r.states[name]
	return s, ok
}

// Standings returns solver names in completion order for the current race.
// Which entry counts as the winner is the caller's judgment.
func (r *RaceManager) Standings() []string {
	r.RLock()
	defer r.RUnlock()
	out := make([]string, len(r.standings))
	copy(out, r.standings)
	return out
}

// RaceID identifies the current race for logging and inspection.
func (r *RaceManager) RaceID() uuid.UUID {
	r.RLock()
	defer r.RUnlock()
	return r.raceID
}

func (r *RaceManager) clearLocked() {
	r.engines = make(map[string]search.Solver)
	r.states = make(map[string]search.StepResult)
	r.active = nil
	r.standings = nil
	r.raceID = uuid.Nil
}
