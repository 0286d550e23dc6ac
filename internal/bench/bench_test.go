package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeasureRunsIterations(t *testing.T) {
	calls := 0
	d := Measure(25, func() { calls++ })
	assert.Equal(t, 25, calls)
	assert.GreaterOrEqual(t, d, time.Duration(0))

	calls = 0
	Measure(0, func() { calls++ })
	assert.Equal(t, 1, calls, "non-positive count runs once")
}

func TestUplift(t *testing.T) {
	c := Comparison{Name: "add", Scalar: 400 * time.Millisecond, Vector: 100 * time.Millisecond}
	assert.InDelta(t, 400.0, c.Uplift(), 1e-9)
	assert.InDelta(t, 4.0, c.Speedup(), 1e-9)
	assert.Equal(t, "add: scalar 400ms, vector 100ms, uplift 400.0%", c.String())

	slower := Comparison{Scalar: time.Second, Vector: 2 * time.Second}
	assert.InDelta(t, 50.0, slower.Uplift(), 1e-9)

	assert.Zero(t, Comparison{Scalar: time.Second}.Uplift())
	assert.Zero(t, Comparison{Scalar: time.Second}.Speedup())
}

func TestCompare(t *testing.T) {
	var s, v int
	c := Compare("mul", 3, func() { s++ }, func() { v++ })
	assert.Equal(t, "mul", c.Name)
	assert.Equal(t, 3, s)
	assert.Equal(t, 3, v)
}
