package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-kernels/internal/config"
	"github.com/cwbudde/algo-kernels/internal/signal"
	"github.com/cwbudde/algo-kernels/internal/verify"
	"github.com/cwbudde/algo-kernels/kernel/elementwise"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// heading prints a section heading: the title-cased title, then detail.
func heading(w io.Writer, title, detail string) {
	if detail == "" {
		fmt.Fprintf(w, "\n%s\n", titleCaser.String(title))
		return
	}
	fmt.Fprintf(w, "\n%s %s\n", titleCaser.String(title), detail)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// parseFamilies returns the requested families in first-seen order, or all
// families when none are named.
func parseFamilies(args []string) ([]string, error) {
	if len(args) == 0 {
		return verify.Families(), nil
	}

	names := lo.Uniq(lo.Map(args, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	}))
	for _, name := range names {
		if !lo.Contains(verify.Families(), name) {
			return nil, fmt.Errorf("unknown family %q (want one of: %s)",
				name, strings.Join(verify.Families(), ", "))
		}
	}
	return names, nil
}

// tensorOps are the elementwise ops that have a tensor counterpart.
var tensorOps = lo.Filter(elementwise.Ops(), func(op elementwise.Op, _ int) bool {
	return op != elementwise.Div
})

const (
	sineRate   = 48000.0
	sineBaseHz = 997.0
	sineStepHz = 131.0
)

// input returns n seeded samples in [-1, 1] of the configured bench shape.
// offset picks a distinct sequence for the second operand.
func input(bc config.BenchConfig, offset int64, n int) []float32 {
	seed := bc.Seed + offset
	if bc.Shape == "sine" {
		return signal.Sine(sineBaseHz+sineStepHz*float64(seed), sineRate, 1, n)
	}
	return signal.Noise(seed, 1, n)
}
