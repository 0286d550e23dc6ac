package lane

// Dot returns Σ a[i]*b[i] computed group by group.
//
// Consecutive pairs are batched into groups of w lanes. Each full group is
// multiplied lanewise and horizontally reduced, and the reduced scalar is added
// to the running total. A trailing partial group of 1..w-1 pairs is zero-padded
// in every remaining lane and flushed the same way, so its contribution is
// never dropped.
//
// Panics if len(a) != len(b).
func Dot(w Width, a, b []float32) float32 {
	mustValid(w)
	if len(a) != len(b) {
		panic("lane: dot length mismatch")
	}

	n := len(a)
	full := w.Floor(n)

	var sum float32
	for i := 0; i < full; i += int(w) {
		p := Load(w, a[i:]).Mul(Load(w, b[i:]))
		sum += p.ReduceSum()
	}

	if full < n {
		p := LoadPartial(w, a[full:]).Mul(LoadPartial(w, b[full:]))
		sum += p.ReduceSum()
	}

	return sum
}
