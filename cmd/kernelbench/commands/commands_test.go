package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-kernels/internal/config"
	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-kernels/kernel/conv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree with small workloads and no config file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("KERNELBENCH_LOGGING_CONSOLE", "false")
	t.Setenv("KERNELBENCH_BENCH_ITERATIONS", "1")
	t.Setenv("KERNELBENCH_BENCH_ELEMENTWISE_LEN", "257")
	t.Setenv("KERNELBENCH_BENCH_SIGNAL_LEN", "100")
	t.Setenv("KERNELBENCH_BENCH_RESPONSE_LEN", "9")

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := execute(root)
	return buf.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend:")
	assert.Contains(t, out, "Registered Backends")
	assert.Contains(t, out, "generic")
}

func TestInfoForceGeneric(t *testing.T) {
	out, err := run(t, "info", "--generic")
	require.NoError(t, err)
	assert.Contains(t, out, "generic/scalar")
	assert.Regexp(t, `Default path:\s+scalar`, out)
}

func TestInvalidWidthFlag(t *testing.T) {
	_, err := run(t, "info", "--width", "6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kernel.lane_width")
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo", "--width", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "Elementwise (n=9, vector/x4)")
	assert.Contains(t, out, "Tensor A x A (vector/x4)")
	assert.Contains(t, out, "Conv (x=16, h=4, vector/x4)")

	// First row of the ramp matrix squared, printed for both paths.
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("[30 40 50 60]")))
}

func TestBenchSingleFamily(t *testing.T) {
	out, err := run(t, "bench", "conv", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Conv (x=100, h=9")
	assert.Contains(t, out, "full")
	assert.Contains(t, out, "%")
	assert.NotContains(t, out, "Elementwise")
}

func TestBenchAllFamilies(t *testing.T) {
	out, err := run(t, "bench", "--width", "8")
	require.NoError(t, err)
	for _, want := range []string{"Elementwise", "Tensor", "Conv", "add", "sub", "mul", "div"} {
		assert.Contains(t, out, want)
	}
}

func TestBenchUnknownFamily(t *testing.T) {
	_, err := run(t, "bench", "fft")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown family "fft"`)
}

func TestVerifyPasses(t *testing.T) {
	for _, width := range []string{"4", "8"} {
		out, err := run(t, "verify", "--width", width)
		require.NoError(t, err, out)
		assert.Contains(t, out, "checks within")
		assert.NotContains(t, out, "FAIL")
	}
}

func TestVerifyFailsAboveTolerance(t *testing.T) {
	out, err := run(t, "verify", "elementwise", "--tolerance", "1e-30")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errToleranceExceeded))
	assert.Contains(t, out, "FAIL")
}

func TestVerifySineShape(t *testing.T) {
	t.Setenv("KERNELBENCH_BENCH_SHAPE", "sine")
	out, err := run(t, "verify", "--width", "8")
	require.NoError(t, err, out)
	assert.Contains(t, out, "checks within")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.log")
	t.Setenv("KERNELBENCH_LOGGING_FILE", path)

	_, err := run(t, "bench", "conv", "--generic")
	require.NoError(t, err)
	_, err = run(t, "verify", "elementwise", "--tolerance", "1e-30")
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	log := string(data)
	assert.Contains(t, log, "kernels selected: backend=generic")
	assert.Contains(t, log, "has no lane groups")
	assert.Contains(t, log, "verification failed")
	assert.NotContains(t, log, "benchmarking conv", "debug lines need --verbose")
}

func TestInput(t *testing.T) {
	bc := config.DefaultConfig().Bench
	a, b := input(bc, 0, 64), input(bc, 1, 64)
	assert.NotEqual(t, a, b)

	bc.Shape = "sine"
	s := input(bc, 0, 64)
	assert.Zero(t, s[0])
	for _, v := range s {
		assert.LessOrEqual(t, v, float32(1))
		assert.GreaterOrEqual(t, v, float32(-1))
	}
	assert.Equal(t, s, input(bc, 0, 64), "same seed, same sequence")
}

func TestParseFamilies(t *testing.T) {
	all, err := parseFamilies(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"elementwise", "tensor", "conv"}, all)

	got, err := parseFamilies([]string{"Conv", "tensor", "conv"})
	require.NoError(t, err)
	assert.Equal(t, []string{"conv", "tensor"}, got)
}

func TestSelectKernels(t *testing.T) {
	ks, err := selectKernels(config.KernelConfig{ForceGeneric: true})
	require.NoError(t, err)
	assert.Equal(t, "generic", ks.backend.Name)
	assert.False(t, ks.vectorized)
	assert.Equal(t, kernel.Width4, ks.width, "vector side still exists for comparisons")
	assert.Equal(t, conv.Scalar{}, ks.selected().conv)

	ks, err = selectKernels(config.KernelConfig{ForceGeneric: true, LaneWidth: 8})
	require.NoError(t, err)
	assert.True(t, ks.vectorized)
	assert.Equal(t, kernel.Width8, ks.width)
	assert.Equal(t, "vector/x8", ks.selected().conv.Name())
}
