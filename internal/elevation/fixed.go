package elevation

import (
	"context"

	"github.com/UnknownOlympus/groundtruth/internal/models"
)

// FixedProvider answers every lookup with the same altitude.
type FixedProvider struct {
	altitude float64
}

// NewFixedProvider returns a provider that always reports altitude.
func NewFixedProvider(altitude float64) *FixedProvider {
	return &FixedProvider{altitude: altitude}
}

// Elevation returns the configured altitude.
func (fp *FixedProvider) Elevation(_ context.Context, _ models.LatLon) (float64, error) {
	return fp.altitude, nil
}
