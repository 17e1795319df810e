package geodetic

import "strconv"

// FixtureDigits is the number of significant digits fixture values are written with.
const FixtureDigits = 6

// RoundSignificant rounds v to the given number of significant digits (not decimal
// places) by formatting it in %g style and parsing it back.
func RoundSignificant(v float64, digits int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)
	if err != nil {
		return v
	}

	return rounded
}

// Round6 rounds v to six significant digits.
func Round6(v float64) float64 {
	return RoundSignificant(v, FixtureDigits)
}
