package elevation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/groundtruth/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for Google Maps API
// and a logger for logging purposes. It is used to interact with the
// Google Maps elevation service.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Elevation(ctx context.Context, r *maps.ElevationRequest) ([]maps.ElevationResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewGoogleProvider initializes a new GoogleProvider with the given client and logger.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Elevation returns the terrain altitude at point using the Google Maps Elevation API.
func (gp *GoogleProvider) Elevation(ctx context.Context, point models.LatLon) (float64, error) {
	gp.log.DebugContext(ctx, "Elevation lookup using Google Maps", "lat", point.Latitude, "lon", point.Longitude)

	req := maps.ElevationRequest{
		Locations: []maps.LatLng{{Lat: point.Latitude, Lng: point.Longitude}},
	}
	results, err := gp.client.Elevation(ctx, &req)
	if err != nil {
		return 0, fmt.Errorf("failed to look up elevation: %w", err)
	}

	if len(results) == 0 {
		return 0, ErrEmptyResponse
	}

	return results[0].Elevation, nil
}
