package geodetic_test

import (
	"testing"

	"github.com/UnknownOlympus/groundtruth/internal/geodetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatitude(t *testing.T) {
	t.Parallel()

	t.Run("fixture form", func(t *testing.T) {
		t.Parallel()
		angle, err := geodetic.ParseLatitude("N38-09-01.50")

		require.NoError(t, err)
		assert.Equal(t, byte('N'), angle.Hemisphere)
		assert.InDelta(t, 38.0, angle.Degrees, 0)
		assert.InDelta(t, 9.0, angle.Minutes, 0)
		assert.InDelta(t, 1.5, angle.Seconds, 0)
		assert.InDelta(t, 38.150416666666665, angle.Decimal(), 1e-12)
	})

	t.Run("single digit seconds", func(t *testing.T) {
		t.Parallel()
		angle, err := geodetic.ParseLatitude("N41-50-5.778")

		require.NoError(t, err)
		assert.InDelta(t, 41+50.0/60+5.778/3600, angle.Decimal(), 1e-12)
	})

	t.Run("southern hemisphere", func(t *testing.T) {
		t.Parallel()
		angle, err := geodetic.ParseLatitude("S33-52-00.00")

		require.NoError(t, err)
		assert.Positive(t, angle.Decimal())
		assert.InDelta(t, -angle.Decimal(), angle.Signed(), 0)
		assert.InDelta(t, angle.Decimal(), angle.Value(geodetic.HemisphereIgnored), 0)
		assert.InDelta(t, angle.Signed(), angle.Value(geodetic.HemisphereSigned), 0)
	})

	malformed := map[string]string{
		"empty":                "",
		"too short":            "N38-09",
		"three degree digits":  "N038-09-01.50",
		"longitude hemisphere": "E38-09-01.50",
		"lower case":           "n38-09-01.50",
		"letters in minutes":   "N38-0a-01.50",
		"missing separator":    "N3809-01.50",
		"trailing garbage":     "N38-09-01.50x",
		"too many decimals":    "N38-09-01.5000",
		"three digit seconds":  "N38-09-101.5",
	}
	for name, input := range malformed {
		t.Run("malformed "+name, func(t *testing.T) {
			t.Parallel()
			_, err := geodetic.ParseLatitude(input)

			require.Error(t, err)
			require.ErrorIs(t, err, geodetic.ErrMalformedCoordinate)

			var perr *geodetic.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "latitude", perr.Field)
			assert.Equal(t, input, perr.Value)
		})
	}
}

func TestParseLongitude(t *testing.T) {
	t.Parallel()

	t.Run("fixture form", func(t *testing.T) {
		t.Parallel()
		angle, err := geodetic.ParseLongitude("W076-25-29.70")

		require.NoError(t, err)
		assert.Equal(t, byte('W'), angle.Hemisphere)
		assert.InDelta(t, 76+25.0/60+29.7/3600, angle.Decimal(), 1e-12)
		assert.Negative(t, angle.Signed())
	})

	t.Run("two degree digits are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := geodetic.ParseLongitude("W76-25-29.70")

		var perr *geodetic.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "longitude", perr.Field)
		assert.Contains(t, err.Error(), "<E|W>DDD-MM-SS.sss")
	})

	t.Run("latitude hemisphere is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := geodetic.ParseLongitude("N076-25-29.70")

		require.ErrorIs(t, err, geodetic.ErrMalformedCoordinate)
	})
}

func TestParseLatLon(t *testing.T) {
	t.Parallel()

	t.Run("ignored hemisphere keeps magnitudes", func(t *testing.T) {
		t.Parallel()
		point, err := geodetic.ParseLatLon("S38-09-01.50", "W076-25-29.70", geodetic.HemisphereIgnored)

		require.NoError(t, err)
		assert.InDelta(t, 38.150416666666665, point.Latitude, 1e-12)
		assert.InDelta(t, 76.42491666666666, point.Longitude, 1e-12)
	})

	t.Run("signed hemisphere negates south and west", func(t *testing.T) {
		t.Parallel()
		point, err := geodetic.ParseLatLon("S38-09-01.50", "W076-25-29.70", geodetic.HemisphereSigned)

		require.NoError(t, err)
		assert.InDelta(t, -38.150416666666665, point.Latitude, 1e-12)
		assert.InDelta(t, -76.42491666666666, point.Longitude, 1e-12)
	})

	t.Run("latitude error wins", func(t *testing.T) {
		t.Parallel()
		_, err := geodetic.ParseLatLon("bad", "also bad", geodetic.HemisphereSigned)

		var perr *geodetic.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "latitude", perr.Field)
	})

	t.Run("longitude error", func(t *testing.T) {
		t.Parallel()
		_, err := geodetic.ParseLatLon("N38-09-01.50", "W076-25", geodetic.HemisphereSigned)

		var perr *geodetic.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "longitude", perr.Field)
	})
}
