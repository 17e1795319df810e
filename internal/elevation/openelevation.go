package elevation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/UnknownOlympus/groundtruth/internal/models"
	"golang.org/x/time/rate"
)

// OpenElevationBaseURL -- Open-Elevation lookup endpoint.
const OpenElevationBaseURL = "https://api.open-elevation.com/api/v1/lookup"

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenElevationProvider implements the Provider interface using the Open-Elevation API.
type OpenElevationProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the lookup endpoint
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
}

// Common errors for the Open-Elevation provider.
var (
	ErrOpenElevationEmptyResponse = errors.New("open-elevation API returned empty response")
)

type openElevationResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Elevation float64 `json:"elevation"`
	} `json:"results"`
}

// NewOpenElevationProvider creates a new Open-Elevation provider.
func NewOpenElevationProvider(rateLimit int, log *slog.Logger) *OpenElevationProvider {
	const timeout = 10

	return &OpenElevationProvider{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL: OpenElevationBaseURL,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewOpenElevationProviderWithClient allows injecting a custom HTTP client and limiter.
func NewOpenElevationProviderWithClient(
	client HTTPClient,
	limiter *rate.Limiter,
	log *slog.Logger,
) *OpenElevationProvider {
	return &OpenElevationProvider{
		client:  client,
		baseURL: OpenElevationBaseURL,
		log:     log,
		limiter: limiter,
	}
}

// Elevation returns the terrain altitude at point using the Open-Elevation API.
func (op *OpenElevationProvider) Elevation(ctx context.Context, point models.LatLon) (float64, error) {
	if err := op.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit exceeded: %w", err)
	}

	op.log.DebugContext(ctx, "Elevation lookup using Open-Elevation", "lat", point.Latitude, "lon", point.Longitude)

	reqURL, err := url.Parse(op.baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("locations",
		strconv.FormatFloat(point.Latitude, 'f', -1, 64)+","+strconv.FormatFloat(point.Longitude, 'f', -1, 64))
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := op.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute elevation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		op.log.ErrorContext(ctx, "Open-Elevation API error", "status", resp.StatusCode, "body", string(body))
		return 0, fmt.Errorf("open-elevation API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	var result openElevationResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to decode open-elevation response: %w", err)
	}

	if len(result.Results) == 0 {
		return 0, ErrOpenElevationEmptyResponse
	}

	return result.Results[0].Elevation, nil
}
