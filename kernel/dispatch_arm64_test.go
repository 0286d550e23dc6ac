//go:build arm64 && !purego

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestLookup_ARM64Modes(t *testing.T) {
	tests := []struct {
		name      string
		features  cpu.Features
		wantName  string
		wantWidth Width
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "arm64",
			},
			wantName: "generic",
		},
		{
			name: "neon",
			features: cpu.Features{
				HasNEON:      true,
				Architecture: "arm64",
			},
			wantName:  "neon",
			wantWidth: Width4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()

			resetSelectedForTest()
			defer resetSelectedForTest()

			b := Selected()
			if b.Name != tt.wantName || b.Width != tt.wantWidth {
				t.Fatalf("expected %s/%d, got %s/%d", tt.wantName, tt.wantWidth, b.Name, b.Width)
			}
		})
	}
}
