package kernel

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetSelectedForTest() {
	selected = Backend{}
	selectedOnce = sync.Once{}
}

func TestLookupForceGenericIsScalar(t *testing.T) {
	b, err := Lookup(cpu.Features{ForceGeneric: true, Architecture: runtime.GOARCH})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Name != "generic" {
		t.Fatalf("expected generic backend, got %q", b.Name)
	}
	if b.Vectorized() {
		t.Fatalf("generic backend should be scalar, width %d", b.Width)
	}
	if b.String() != "generic/scalar" {
		t.Fatalf("String() = %q", b.String())
	}
}

func TestSelectedHonorsForcedFeatures(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true, Architecture: runtime.GOARCH})
	defer cpu.ResetDetection()

	resetSelectedForTest()
	defer resetSelectedForTest()

	if got := Selected(); got.Name != "generic" {
		t.Fatalf("Selected() = %q, want generic", got.Name)
	}
}

func TestSelectedIsStable(t *testing.T) {
	resetSelectedForTest()
	defer resetSelectedForTest()

	first := Selected()
	if first.Name == "" {
		t.Fatal("Selected returned empty backend")
	}
	if first.Vectorized() && !first.Width.Valid() {
		t.Fatalf("selected backend has invalid width %d", first.Width)
	}
	if again := Selected(); again != first {
		t.Fatalf("Selected changed between calls: %v then %v", first, again)
	}
}

func TestCheckWidth(t *testing.T) {
	for _, w := range []Width{Width4, Width8} {
		if err := CheckWidth(w); err != nil {
			t.Errorf("CheckWidth(%d) = %v", w, err)
		}
	}
	for _, w := range []Width{0, 2, 16} {
		err := CheckWidth(w)
		if !errors.Is(err, ErrInvalidWidth) || !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("CheckWidth(%d) = %v, want ErrInvalidWidth", w, err)
		}
	}
}

func TestInvalidWrapsRoot(t *testing.T) {
	err := Invalid("conv", "empty input")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument in chain, got %v", err)
	}
	if got, want := err.Error(), "conv: empty input: kernel: invalid argument"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestBackendsIncludesGeneric(t *testing.T) {
	found := false
	for _, b := range Backends() {
		if b.Name == "generic" {
			found = true
			if b.Vectorized() {
				t.Fatal("generic backend should be scalar")
			}
		}
	}
	if !found {
		t.Fatal("generic backend not registered")
	}
}
