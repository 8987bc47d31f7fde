package config

import (
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Bounds for the speed-to-delay mapping. The exponent makes the linear
// speed control feel perceptually linear.
const (
	MinStepDelay  = 1 * time.Millisecond
	MaxStepDelay  = 500 * time.Millisecond
	delayExponent = 3.0
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth     int     // Logical maze width in cells
	MazeHeight    int     // Logical maze height in cells
	MaxMazeWidth  int     // Upper bound accepted for MazeWidth
	MaxMazeHeight int     // Upper bound accepted for MazeHeight
	Solver        string  // Solver name for single-solve runs
	BattleMode    bool    // Run every registered solver against the same maze
	Speed         float64 // Linear speed control in [0, 1]; 1 is fastest
	Seed          int64   // RNG seed for maze generation; 0 derives one from the clock
	SnapshotPath  string  // Where the final PNG snapshot is written; empty disables it
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeWidth:     getEnvAsIntWithDefault("MAZE_WIDTH", 20),
		MazeHeight:    getEnvAsIntWithDefault("MAZE_HEIGHT", 20),
		MaxMazeWidth:  getEnvAsIntWithDefault("MAX_MAZE_WIDTH", 150),
		MaxMazeHeight: getEnvAsIntWithDefault("MAX_MAZE_HEIGHT", 150),
		Solver:        getEnvWithDefault("SOLVER", "BFS"),
		BattleMode:    getEnvAsBoolWithDefault("BATTLE_MODE", false),
		Speed:         getEnvAsFloatWithDefault("SPEED", 0.5),
		Seed:          int64(getEnvAsIntWithDefault("SEED", 0)),
		SnapshotPath:  getEnvWithDefault("SNAPSHOT_PATH", "maze.png"),
	}
}

// StepDelay maps the linear Speed control to the delay between solver
// ticks: delay = min + (1-speed)^k * (max-min).
func (c Config) StepDelay() time.Duration {
	ratio := math.Min(math.Max(c.Speed, 0), 1)
	mapped := math.Pow(1.0-ratio, delayExponent)
	delay := float64(MinStepDelay) + mapped*float64(MaxStepDelay-MinStepDelay)
	return time.Duration(delay)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves the value of an environment variable as a boolean or logs a fatal error if it cannot be parsed.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves the value of an environment variable as a float or logs a fatal error if it cannot be parsed.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}
