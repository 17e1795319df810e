package elevation

import (
	"context"

	"github.com/UnknownOlympus/groundtruth/internal/models"
)

// Provider is an interface that defines a method for looking up terrain altitude.
// The Elevation method takes a context and a signed decimal position as input,
// and returns the altitude in meters above mean sea level and an error if any occurs.
type Provider interface {
	Elevation(ctx context.Context, point models.LatLon) (float64, error)
}
