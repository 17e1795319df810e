package geodetic

import (
	"regexp"
	"strconv"

	"github.com/UnknownOlympus/groundtruth/internal/models"
)

// HemisphereMode selects how the hemisphere letter of a coordinate is applied.
type HemisphereMode int

const (
	// HemisphereIgnored validates the letter but returns the unsigned magnitude.
	// This is how the historical fixtures were generated.
	HemisphereIgnored HemisphereMode = iota
	// HemisphereSigned negates southern latitudes and western longitudes.
	HemisphereSigned
)

func (m HemisphereMode) String() string {
	if m == HemisphereSigned {
		return "signed"
	}

	return "ignored"
}

const (
	minutesPerDegree = 60.0
	secondsPerDegree = 3600.0
)

var (
	latitudePattern  = regexp.MustCompile(`^([NS])(\d{2})-(\d{2})-(\d{1,2}(?:\.\d{1,3})?)$`)
	longitudePattern = regexp.MustCompile(`^([EW])(\d{3})-(\d{2})-(\d{1,2}(?:\.\d{1,3})?)$`)
)

// Angle is a parsed sexagesimal coordinate.
type Angle struct {
	Hemisphere byte
	Degrees    float64
	Minutes    float64
	Seconds    float64
}

// Decimal returns degrees + minutes/60 + seconds/3600 without applying the hemisphere.
func (a Angle) Decimal() float64 {
	return a.Degrees + a.Minutes/minutesPerDegree + a.Seconds/secondsPerDegree
}

// Signed returns the decimal value, negative for the S and W hemispheres.
func (a Angle) Signed() float64 {
	if a.Hemisphere == 'S' || a.Hemisphere == 'W' {
		return -a.Decimal()
	}

	return a.Decimal()
}

// Value returns the decimal value according to mode.
func (a Angle) Value(mode HemisphereMode) float64 {
	if mode == HemisphereSigned {
		return a.Signed()
	}

	return a.Decimal()
}

// ParseLatitude parses a latitude of the form N38-09-01.50.
func ParseLatitude(s string) (Angle, error) {
	return parseAngle("latitude", latitudePattern, "<N|S>DD-MM-SS.sss", s)
}

// ParseLongitude parses a longitude of the form W076-25-29.70.
func ParseLongitude(s string) (Angle, error) {
	return parseAngle("longitude", longitudePattern, "<E|W>DDD-MM-SS.sss", s)
}

// ParseLatLon parses both coordinates and converts them to decimal degrees.
func ParseLatLon(lat, lon string, mode HemisphereMode) (models.LatLon, error) {
	latAngle, err := ParseLatitude(lat)
	if err != nil {
		return models.LatLon{}, err
	}

	lonAngle, err := ParseLongitude(lon)
	if err != nil {
		return models.LatLon{}, err
	}

	return models.LatLon{
		Latitude:  latAngle.Value(mode),
		Longitude: lonAngle.Value(mode),
	}, nil
}

func parseAngle(field string, pattern *regexp.Regexp, layout, s string) (Angle, error) {
	match := pattern.FindStringSubmatch(s)
	if match == nil {
		return Angle{}, &ParseError{Field: field, Value: s, Reason: "expected " + layout}
	}

	var (
		angle Angle
		err   error
	)
	angle.Hemisphere = match[1][0]
	if angle.Degrees, err = strconv.ParseFloat(match[2], 64); err != nil {
		return Angle{}, &ParseError{Field: field, Value: s, Reason: "invalid degrees"}
	}
	if angle.Minutes, err = strconv.ParseFloat(match[3], 64); err != nil {
		return Angle{}, &ParseError{Field: field, Value: s, Reason: "invalid minutes"}
	}
	if angle.Seconds, err = strconv.ParseFloat(match[4], 64); err != nil {
		return Angle{}, &ParseError{Field: field, Value: s, Reason: "invalid seconds"}
	}

	return angle, nil
}
