//go:build amd64 && !purego

package sse2

import (
	"testing"

	"github.com/cwbudde/algo-kernels/internal/arch/registry"
	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestRegisteredWithFourLanes(t *testing.T) {
	entry := registry.Global.Lookup(cpu.Features{HasSSE2: true, Architecture: "amd64"})
	if entry == nil || entry.Name != "sse2" {
		t.Fatalf("expected sse2 entry, got %#v", entry)
	}
	if entry.LaneWidth != lane.Width4 {
		t.Fatalf("expected %v lanes, got %v", lane.Width4, entry.LaneWidth)
	}
}
