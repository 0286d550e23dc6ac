// Package lane provides the fixed-width lane group used by the vectorized
// kernels.
//
// A Group models one SIMD register of W float32 lanes (W = 4 for SSE/NEON,
// W = 8 for AVX2). Groups are plain values; they are assembled from caller
// sequences for a single multiply/reduce step and never outlive it.
//
// Functions in this package panic on programmer errors (invalid widths,
// mismatched group widths, short loads). Argument validation for callers
// happens in the public kernel packages.
package lane

import "strconv"

// MaxWidth is the largest supported lane width.
const MaxWidth = 8

// Width is the number of float32 lanes processed by one vector operation.
type Width int

const (
	// Width4 matches 128-bit registers (SSE2, NEON).
	Width4 Width = 4

	// Width8 matches 256-bit registers (AVX2).
	Width8 Width = 8
)

// Valid reports whether w is a supported lane width.
func (w Width) Valid() bool {
	return w == Width4 || w == Width8
}

// String returns a short label such as "x4".
func (w Width) String() string {
	return "x" + strconv.Itoa(int(w))
}

// Floor returns the largest multiple of w that is <= n, i.e. the number of
// elements covered by whole lane groups.
func (w Width) Floor(n int) int {
	return (n / int(w)) * int(w)
}

// Group is one lane group: W active lanes, inactive lanes always zero.
type Group struct {
	w Width
	v [MaxWidth]float32
}

func mustValid(w Width) {
	if !w.Valid() {
		panic("lane: invalid width " + strconv.Itoa(int(w)))
	}
}

// Zero returns a group of width w with all lanes zero.
func Zero(w Width) Group {
	mustValid(w)
	return Group{w: w}
}

// Load fills all w lanes from src. Panics if len(src) < w.
func Load(w Width, src []float32) Group {
	mustValid(w)
	if len(src) < int(w) {
		panic("lane: short load")
	}
	g := Group{w: w}
	copy(g.v[:w], src[:w])
	return g
}

// LoadPartial fills the first min(len(src), w) lanes from src and zero-pads
// the rest, so padded lanes contribute nothing to products or sums.
func LoadPartial(w Width, src []float32) Group {
	mustValid(w)
	g := Group{w: w}
	copy(g.v[:w], src)
	return g
}

// Width returns the group's lane width.
func (g Group) Width() Width { return g.w }

// Lane returns the value of lane i.
func (g Group) Lane(i int) float32 { return g.v[i] }

// Set assigns lane i. Used to synthesize groups from strided data.
func (g *Group) Set(i int, x float32) {
	if i < 0 || i >= int(g.w) {
		panic("lane: lane index out of range")
	}
	g.v[i] = x
}

// Store writes all w lanes to dst. Panics if len(dst) < w.
func (g Group) Store(dst []float32) {
	if len(dst) < int(g.w) {
		panic("lane: short store")
	}
	copy(dst[:g.w], g.v[:g.w])
}

// StorePartial writes the first min(len(dst), w) lanes and returns how many
// were written.
func (g Group) StorePartial(dst []float32) int {
	return copy(dst, g.v[:g.w])
}

func (g Group) check(o Group) {
	if g.w != o.w {
		panic("lane: width mismatch")
	}
}

// Add returns the lanewise sum g + o.
func (g Group) Add(o Group) Group {
	g.check(o)
	for i := 0; i < int(g.w); i++ {
		g.v[i] += o.v[i]
	}
	return g
}

// Sub returns the lanewise difference g - o.
func (g Group) Sub(o Group) Group {
	g.check(o)
	for i := 0; i < int(g.w); i++ {
		g.v[i] -= o.v[i]
	}
	return g
}

// Mul returns the lanewise product g * o.
func (g Group) Mul(o Group) Group {
	g.check(o)
	for i := 0; i < int(g.w); i++ {
		g.v[i] *= o.v[i]
	}
	return g
}

// Div returns the lanewise quotient g / o with IEEE-754 semantics.
func (g Group) Div(o Group) Group {
	g.check(o)
	for i := 0; i < int(g.w); i++ {
		g.v[i] /= o.v[i]
	}
	return g
}

// ReduceSum horizontally reduces the group to a scalar.
//
// The reduction folds the upper half onto the lower half until one lane is
// left, the same shape as extract-high/add sequences on SSE, AVX and NEON.
func (g Group) ReduceSum() float32 {
	v := g.v
	for half := int(g.w) / 2; half > 0; half /= 2 {
		for i := 0; i < half; i++ {
			v[i] += v[i+half]
		}
	}
	return v[0]
}
