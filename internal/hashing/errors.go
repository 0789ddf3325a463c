package hashing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedAlgorithm is matched by errors returned for names the
	// registry does not hold.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

	// ErrMissingPrimitive is matched by errors returned when no provider
	// can supply an algorithm at load time.
	ErrMissingPrimitive = errors.New("missing hash primitive")
)

// UnsupportedAlgorithmError reports a factory call for an unregistered name.
type UnsupportedAlgorithmError struct {
	Algorithm string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedAlgorithm, e.Algorithm)
}

func (e *UnsupportedAlgorithmError) Is(target error) bool {
	return target == ErrUnsupportedAlgorithm
}

// MissingPrimitiveError reports that every provider was asked for an
// algorithm and none had it.
type MissingPrimitiveError struct {
	Algorithm string
	Tried     []string
}

func (e *MissingPrimitiveError) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("%s: %q (no providers registered)", ErrMissingPrimitive, e.Algorithm)
	}
	return fmt.Sprintf("%s: %q (tried %s)", ErrMissingPrimitive, e.Algorithm, strings.Join(e.Tried, ", "))
}

func (e *MissingPrimitiveError) Is(target error) bool {
	return target == ErrMissingPrimitive
}
