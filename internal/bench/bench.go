// Package bench times scalar and vector kernels against each other.
package bench

import (
	"fmt"
	"time"
)

// Measure runs fn iterations times and returns the total wall time.
// A non-positive iteration count runs fn once.
func Measure(iterations int, fn func()) time.Duration {
	if iterations < 1 {
		iterations = 1
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	return time.Since(start)
}

// Comparison holds the timings of one operation on both paths.
type Comparison struct {
	Name   string
	Scalar time.Duration
	Vector time.Duration
}

// Compare measures scalar and vector with the same iteration count.
func Compare(name string, iterations int, scalar, vector func()) Comparison {
	return Comparison{
		Name:   name,
		Scalar: Measure(iterations, scalar),
		Vector: Measure(iterations, vector),
	}
}

// Uplift returns scalar time as a percentage of vector time. 100 means no
// change; 400 means the vector path is four times faster. Returns 0 when the
// vector time is zero.
func (c Comparison) Uplift() float64 {
	if c.Vector <= 0 {
		return 0
	}
	return float64(c.Scalar) / float64(c.Vector) * 100
}

// Speedup returns scalar/vector, or 0 when the vector time is zero.
func (c Comparison) Speedup() float64 {
	return c.Uplift() / 100
}

// String returns a one-line summary.
func (c Comparison) String() string {
	return fmt.Sprintf("%s: scalar %v, vector %v, uplift %.1f%%", c.Name, c.Scalar, c.Vector, c.Uplift())
}
