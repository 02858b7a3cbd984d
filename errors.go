package rngkit

import (
	"errors"
	"fmt"
)

// Standard rngkit Error Types
//
// These errors follow Go 1.13+ error wrapping conventions and can be
// checked using errors.Is() and errors.As(). All errors are local and
// non-fatal: the failing call returns a typed error and the caller
// decides whether to retry with different input. Nothing in this
// package retries internally.
//
// Design rationale:
// - Use sentinel errors for the small, closed set of expected failures
// - All errors are safe for wrapping with fmt.Errorf("%w", err)

// Sentinel errors for generator and assessor misuse
var (
	// ErrInvalidArgument indicates a caller-supplied argument is outside the
	// operation's domain: a non-positive bound to NextInt, a negative count
	// to NextBytes, or a non-positive bucket count for the chi-square test.
	ErrInvalidArgument = errors.New("rngkit: invalid argument")

	// ErrEmptyInput indicates a statistical function was called with a
	// zero-length sequence. Mean, variance and the goodness-of-fit tests
	// are undefined over nothing.
	ErrEmptyInput = errors.New("rngkit: empty input sequence")

	// ErrDegenerateInput indicates the input sequence is statistically
	// degenerate for the requested test, e.g. a runs test over data whose
	// run-count variance is zero because every value falls on one side of
	// the median. The chi-square range degeneracy (min == max) is NOT an
	// error; it is handled by substituting a unit range.
	ErrDegenerateInput = errors.New("rngkit: degenerate input sequence")

	// ErrUnknownVariant indicates a Variant value outside the closed set
	// accepted by New and NewSeeded.
	ErrUnknownVariant = errors.New("rngkit: unknown generator variant")
)

// wrapInvalidArgument wraps ErrInvalidArgument with the offending call detail.
func wrapInvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// wrapDegenerateInput wraps ErrDegenerateInput with the detected degeneracy.
func wrapDegenerateInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDegenerateInput, fmt.Sprintf(format, args...))
}

// IsInvalidArgument reports whether err is, or wraps, ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsEmptyInput reports whether err is, or wraps, ErrEmptyInput.
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

// IsDegenerateInput reports whether err is, or wraps, ErrDegenerateInput.
func IsDegenerateInput(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}
