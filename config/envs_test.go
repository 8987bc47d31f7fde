package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepDelayMapping(t *testing.T) {
	t.Run("full speed hits the minimum delay", func(t *testing.T) {
		c := Config{Speed: 1.0}
		assert.Equal(t, MinStepDelay, c.StepDelay())
	})

	t.Run("zero speed hits the maximum delay", func(t *testing.T) {
		c := Config{Speed: 0.0}
		assert.Equal(t, MaxStepDelay, c.StepDelay())
	})

	t.Run("speed outside the range is clamped", func(t *testing.T) {
		assert.Equal(t, MinStepDelay, Config{Speed: 3.5}.StepDelay())
		assert.Equal(t, MaxStepDelay, Config{Speed: -1}.StepDelay())
	})

	t.Run("mapping is monotone decreasing", func(t *testing.T) {
		prev := Config{Speed: 0.0}.StepDelay()
		for speed := 0.1; speed <= 1.0; speed += 0.1 {
			delay := Config{Speed: speed}.StepDelay()
			assert.LessOrEqual(t, delay, prev)
			prev = delay
		}
	})

	t.Run("exponential mapping favors the fast end", func(t *testing.T) {
		// At half speed the cubic mapping sits well below the linear
		// midpoint of the range.
		half := Config{Speed: 0.5}.StepDelay()
		linearMid := MinStepDelay + (MaxStepDelay-MinStepDelay)/2
		assert.Less(t, half, linearMid)
	})
}
