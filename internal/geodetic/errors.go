package geodetic

import (
	"errors"
	"fmt"
)

// Sentinel errors for the geodetic package. Typed errors below unwrap to them,
// so callers can test with errors.Is.
var (
	ErrMalformedCoordinate = errors.New("malformed sexagesimal coordinate")
	ErrInvalidEllipsoid    = errors.New("invalid ellipsoid parameters")
)

// ParseError reports a sexagesimal string that does not match the expected grammar.
type ParseError struct {
	Field  string // Field is the coordinate that failed: "latitude" or "longitude".
	Value  string // Value is the offending input.
	Reason string // Reason describes what was wrong with the input.
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedCoordinate
}

// ConfigError reports an ellipsoid that cannot be used for the transform.
type ConfigError struct {
	A, B   float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid ellipsoid (a=%g, b=%g): %s", e.A, e.B, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidEllipsoid
}
