package geodetic

import (
	"fmt"
	"math"

	"github.com/UnknownOlympus/groundtruth/internal/models"
)

// AltitudeMode selects how the reference altitude enters the ECEF computation.
type AltitudeMode int

const (
	// AltitudeMeters uses the reference altitude as meters.
	AltitudeMeters AltitudeMode = iota
	// AltitudeLegacyScaled multiplies the reference altitude by π/180 before use,
	// while the target altitude stays in meters. Historical fixtures depend on it.
	AltitudeLegacyScaled
)

func (m AltitudeMode) String() string {
	if m == AltitudeLegacyScaled {
		return "legacy-scaled"
	}

	return "meters"
}

// Options groups the two compatibility switches of the transform.
type Options struct {
	Hemisphere HemisphereMode
	Altitude   AltitudeMode
}

// CorrectedOptions applies hemisphere signs and treats every altitude as meters.
func CorrectedOptions() Options {
	return Options{Hemisphere: HemisphereSigned, Altitude: AltitudeMeters}
}

// LegacyOptions reproduces the numbers of the historical fixture files.
func LegacyOptions() Options {
	return Options{Hemisphere: HemisphereIgnored, Altitude: AltitudeLegacyScaled}
}

// Reference origins used by the ground-truth tooling.
var (
	// DefaultReference is the survey origin in northern Utah (MSL altitude).
	DefaultReference = models.ReferencePoint{
		Latitude:  "N41-50-5.778",
		Longitude: "W111-54-34.854",
		Altitude:  1410.102336,
	}
	// FixtureReference is the origin the fixture files were generated against.
	FixtureReference = models.ReferencePoint{
		Latitude:  "N38-09-01.50",
		Longitude: "W076-25-29.70",
		Altitude:  6.7056,
	}
)

// pi is a variable so that π/180 is computed in float64 arithmetic at run time,
// matching the factor the fixtures were produced with.
var pi = math.Pi

// Converter transforms geodetic positions into NED offsets from a fixed reference.
// It is immutable once built and may be shared between goroutines.
type Converter struct {
	reference models.ReferencePoint
	ellipsoid Ellipsoid
	opts      Options

	origin   models.LatLon
	degToRad float64
	e2       float64
	chi      float64

	sinLat, cosLat float64
	sinLon, cosLon float64

	xr, yr, zr float64
}

// NewConverter validates the ellipsoid, parses the reference point and precomputes
// the reference ECEF position.
func NewConverter(ref models.ReferencePoint, ell Ellipsoid, opts Options) (*Converter, error) {
	if err := ell.Validate(); err != nil {
		return nil, err
	}

	origin, err := ParseLatLon(ref.Latitude, ref.Longitude, opts.Hemisphere)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reference point: %w", err)
	}

	conv := &Converter{
		reference: ref,
		ellipsoid: ell,
		opts:      opts,
		origin:    origin,
		degToRad:  pi / 180.0,
		e2:        ell.E2(),
	}

	latRad := origin.Latitude * conv.degToRad
	lonRad := origin.Longitude * conv.degToRad
	altitude := ref.Altitude
	if opts.Altitude == AltitudeLegacyScaled {
		altitude *= conv.degToRad
	}

	conv.sinLat, conv.cosLat = math.Sin(latRad), math.Cos(latRad)
	conv.sinLon, conv.cosLon = math.Sin(lonRad), math.Cos(lonRad)
	conv.chi = math.Sqrt(1 - float64(conv.e2*conv.sinLat*conv.sinLat))
	conv.xr, conv.yr, conv.zr = conv.ecef(conv.sinLat, conv.cosLat, conv.sinLon, conv.cosLon, altitude)

	return conv, nil
}

// Reference returns the reference point the converter was built with.
func (c *Converter) Reference() models.ReferencePoint {
	return c.reference
}

// Origin returns the reference point in decimal degrees.
func (c *Converter) Origin() models.LatLon {
	return c.origin
}

// Options returns the compatibility options of the converter.
func (c *Converter) Options() Options {
	return c.opts
}

// Convert returns the NED offset of point (decimal degrees) at altitude (meters)
// from the reference point. The radius of curvature computed at the reference
// latitude is reused for the target.
func (c *Converter) Convert(point models.LatLon, altitude float64) models.NED {
	latRad := point.Latitude * c.degToRad
	lonRad := point.Longitude * c.degToRad

	x, y, z := c.ecef(math.Sin(latRad), math.Cos(latRad), math.Sin(lonRad), math.Cos(lonRad), altitude)

	dx := x - c.xr
	dy := y - c.yr
	dz := z - c.zr

	// The float64 conversions forbid fused multiply-add so results are identical on every platform.
	ned := models.NED{
		North: float64(-c.sinLat*c.cosLon*dx) + float64(-c.sinLat*c.sinLon*dy) + float64(c.cosLat*dz),
		East:  float64(c.sinLon*dx) - float64(c.cosLon*dy),
		Down:  float64(-c.cosLat*c.cosLon*dx) + float64(-c.cosLat*c.sinLon*dy) + float64(-c.sinLat*dz),
	}

	// The east row above points east only for unsigned western longitudes.
	// With signed longitudes the regular row is used.
	if c.opts.Hemisphere == HemisphereSigned {
		ned.East = float64(-c.sinLon*dx) + float64(c.cosLon*dy)
	}

	return ned
}

// ConvertSexagesimal parses lat and lon with the converter's hemisphere mode and converts them.
func (c *Converter) ConvertSexagesimal(lat, lon string, altitude float64) (models.NED, error) {
	point, err := ParseLatLon(lat, lon, c.opts.Hemisphere)
	if err != nil {
		return models.NED{}, err
	}

	return c.Convert(point, altitude), nil
}

func (c *Converter) ecef(sinLat, cosLat, sinLon, cosLon, altitude float64) (float64, float64, float64) {
	a := c.ellipsoid.A
	n := float64(a/c.chi) + altitude
	m := float64(a*(1-c.e2)/c.chi) + altitude

	return n * cosLat * cosLon, n * cosLat * sinLon, m * sinLat
}

// Convert is a one-shot helper building a Converter for a single transform.
func Convert(
	point models.LatLon,
	altitude float64,
	ref models.ReferencePoint,
	ell Ellipsoid,
	opts Options,
) (models.NED, error) {
	conv, err := NewConverter(ref, ell, opts)
	if err != nil {
		return models.NED{}, err
	}

	return conv.Convert(point, altitude), nil
}
