// Package signal generates deterministic float32 input sequences for the
// benchmark harness, the verifier, and tests.
package signal

import (
	"math"
	"math/rand"
)

// Ramp returns n values start, start+1, start+2, ... (std::iota semantics).
func Ramp(start float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = start + float32(i)
	}
	return out
}

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// Noise generates white noise in [-amplitude, amplitude) with a fixed seed for
// reproducibility.
func Noise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Const generates a constant-valued sequence.
func Const(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.
func Ones(n int) []float32 {
	return Const(1, n)
}

// Zeros returns a zeroed slice of length n.
func Zeros(n int) []float32 {
	return make([]float32, n)
}
