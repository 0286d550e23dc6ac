package kernel

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of all precondition errors returned by the
// kernel families. Match it with errors.Is.
var ErrInvalidArgument = errors.New("kernel: invalid argument")

// ErrInvalidWidth is returned when a vector kernel is built with an
// unsupported lane width.
var ErrInvalidWidth = fmt.Errorf("%w: lane width must be 4 or 8", ErrInvalidArgument)

// ErrNoBackend is returned by Lookup when no registered backend matches.
var ErrNoBackend = errors.New("kernel: no backend registered")

// Invalid returns a package-prefixed precondition error wrapping
// ErrInvalidArgument.
func Invalid(pkg, msg string) error {
	return fmt.Errorf("%s: %s: %w", pkg, msg, ErrInvalidArgument)
}
