package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/maze-race/config"
	"github.com/beka-birhanu/maze-race/maze"
	"github.com/beka-birhanu/maze-race/render"
	"github.com/beka-birhanu/maze-race/search"
	"github.com/beka-birhanu/maze-race/service"
)

// solverOrder is the registration order, which is also the tick and
// tie-break order in battle mode.
var solverOrder = []string{"BFS", "DFS", "A*"}

// Global variables for dependencies
var (
	appLogger   *log.Logger
	raceLogger  *log.Logger
	generated   *maze.Maze
	raceManager *service.RaceManager
)

func initLoggers() {
	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)
	raceLogger = log.New(os.Stdout, config.ColorCyan+"[RACE] "+config.ColorReset, log.LstdFlags)
}

// clampDimension bounds a requested maze dimension before it reaches the
// generator.
func clampDimension(value, maxValue int) int {
	if value < 1 {
		return 1
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

func initMaze() {
	width := clampDimension(config.Envs.MazeWidth, config.Envs.MaxMazeWidth)
	height := clampDimension(config.Envs.MazeHeight, config.Envs.MaxMazeHeight)

	seed := config.Envs.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var err error
	generated, err = maze.New(width, height, rng)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s generating maze: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s generated %dx%d maze (seed %d), start %v, end %v",
		config.LogInfoColor, config.LogColorReset, width, height, seed, generated.Start, generated.End)
}

func initRaceManager() {
	var err error
	raceManager, err = service.NewRaceManager(&service.Config{Logger: raceLogger})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating race manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	factories := search.DefaultSolvers()
	for _, name := range solverOrder {
		if err := raceManager.Register(name, factories[name]); err != nil {
			appLogger.Printf("%s[ERROR]%s registering solver %s: %v", config.LogErrorColor, config.LogColorReset, name, err)
			os.Exit(1)
		}
	}
	appLogger.Printf("%s[INFO]%s race manager initialized", config.LogInfoColor, config.LogColorReset)
}

func startRace() {
	var err error
	if config.Envs.BattleMode {
		err = raceManager.StartBattle(generated)
	} else {
		err = raceManager.StartSingle(config.Envs.Solver, generated)
	}
	if err != nil {
		appLogger.Printf("%s[ERROR]%s starting race: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}

func main() {
	initLoggers()
	initMaze()
	initRaceManager()
	startRace()

	// The ticker is the only pacing mechanism; every engine does one
	// bounded step per tick.
	delay := config.Envs.StepDelay()
	appLogger.Printf("%s[INFO]%s ticking every %v", config.LogInfoColor, config.LogColorReset, delay)
	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	for raceManager.IsRunning() {
		<-ticker.C
		raceManager.Tick()
	}

	for place, name := range raceManager.Standings() {
		state, _ := raceManager.State(name)
		summary := "no path"
		if state.ResultPath != nil {
			summary = fmt.Sprintf("path length %d", len(state.ResultPath))
		}
		appLogger.Printf("%s[INFO]%s #%d %s: %s, visited %d cells",
			config.LogInfoColor, config.LogColorReset, place+1, name, summary, len(state.Visited))
	}

	if config.Envs.SnapshotPath == "" {
		return
	}
	states := make(map[string]search.StepResult)
	for _, name := range solverOrder {
		if state, ok := raceManager.State(name); ok {
			states[name] = state
		}
	}
	if err := render.WritePNG(config.Envs.SnapshotPath, generated, states); err != nil {
		appLogger.Printf("%s[ERROR]%s writing snapshot: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s snapshot written to %s", config.LogInfoColor, config.LogColorReset, config.Envs.SnapshotPath)
}
