package conv

import "fmt"

// Mode specifies the output mode for ConvolveMode.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(x)+len(h)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as x, centered.
	ModeSame

	// ModeValid returns only the portion where the inputs fully overlap,
	// with length max(l1, l2) - min(l1, l2) + 1.
	ModeValid
)

// String returns "full", "same", or "valid".
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ConvolveMode convolves x and h with k and trims the result to mode.
// The returned slice shares storage with the full result.
func ConvolveMode(k Kernel, x, h []float32, mode Mode) ([]float32, error) {
	full, err := convolveWith(k, x, h)
	if err != nil {
		return nil, err
	}
	return trimToMode(full, len(x), len(h), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float32, lenX, lenH int, mode Mode) []float32 {
	switch mode {
	case ModeSame:
		start := (lenH - 1) / 2
		return full[start : start+lenX]
	case ModeValid:
		if lenX >= lenH {
			return full[lenH-1 : lenX]
		}
		return full[lenX-1 : lenH]
	default:
		return full
	}
}
