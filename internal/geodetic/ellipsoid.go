package geodetic

import "math"

// Ellipsoid is a reference ellipsoid defined by its semi-axes in meters.
type Ellipsoid struct {
	A float64 // A is the semi-major axis.
	B float64 // B is the semi-minor axis.
}

// WGS84 holds the semi-axes the ground-truth tooling has always used.
var WGS84 = Ellipsoid{
	A: 6378137.0,
	B: 6356752.3142,
}

// E2 returns the first eccentricity squared, 1 - (b/a)^2.
func (e Ellipsoid) E2() float64 {
	r := e.B / e.A

	return 1 - r*r
}

// Validate checks that 0 < b < a.
func (e Ellipsoid) Validate() error {
	switch {
	case math.IsNaN(e.A) || math.IsNaN(e.B) || math.IsInf(e.A, 0) || math.IsInf(e.B, 0):
		return &ConfigError{A: e.A, B: e.B, Reason: "semi-axes must be finite"}
	case e.B <= 0:
		return &ConfigError{A: e.A, B: e.B, Reason: "semi-minor axis must be positive"}
	case e.B >= e.A:
		return &ConfigError{A: e.A, B: e.B, Reason: "semi-minor axis must be smaller than semi-major axis"}
	}

	return nil
}
