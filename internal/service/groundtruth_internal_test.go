package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/UnknownOlympus/groundtruth/internal/geodetic"
	"github.com/UnknownOlympus/groundtruth/internal/metrics"
	"github.com/UnknownOlympus/groundtruth/internal/models"
	"github.com/UnknownOlympus/groundtruth/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessFixes(t *testing.T) {
	mockRepo := mocks.NewInterface(t)
	mockProvider := mocks.NewProvider(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	reg := prometheus.NewRegistry()
	metrics := metrics.NewMetrics(reg)
	ctx := t.Context()

	converter, err := geodetic.NewConverter(geodetic.FixtureReference, geodetic.WGS84, geodetic.CorrectedOptions())
	require.NoError(t, err)

	service := NewGroundTruthService(logger, mockRepo, converter, mockProvider, "fixed", metrics, 2, 1*time.Second)

	lat, lon := "N38-09-56.86", "W076-26-39.05"
	signed, err := geodetic.ParseLatLon(lat, lon, geodetic.HemisphereSigned)
	require.NoError(t, err)

	t.Run("successfull processing with recorded altitude", func(t *testing.T) {
		altitude := 12.5
		sampleFixes := []models.Fix{{ID: 1, Latitude: lat, Longitude: lon, Altitude: &altitude}}
		expected, err := converter.ConvertSexagesimal(lat, lon, altitude)
		require.NoError(t, err)

		mockRepo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		mockRepo.On("UpdateFixNED", ctx, 1, altitude, expected).Return(nil).Once()

		service.processFixes(ctx)

		mockRepo.AssertExpectations(t)
		mockProvider.AssertNotCalled(t, "Elevation", mock.Anything, mock.Anything)
	})

	t.Run("successfull processing with looked up altitude", func(t *testing.T) {
		sampleFixes := []models.Fix{{ID: 2, Latitude: lat, Longitude: lon}}
		expected, err := converter.ConvertSexagesimal(lat, lon, 7)
		require.NoError(t, err)

		mockRepo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		mockProvider.On("Elevation", ctx, signed).Return(7.0, nil).Once()
		mockRepo.On("UpdateFixNED", ctx, 2, 7.0, expected).Return(nil).Once()

		service.processFixes(ctx)

		mockRepo.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
		assert.Less(t, signed.Longitude, 0.0, "elevation lookups use signed longitudes")
	})

	t.Run("fetch fixes return error", func(t *testing.T) {
		mockRepo.On("FetchPendingFixes", ctx, 100).Return(nil, assert.AnError).Once()

		service.processFixes(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("fetch fixes return empty list", func(t *testing.T) {
		mockRepo.On("FetchPendingFixes", ctx, 100).Return([]models.Fix{}, nil).Once()

		service.processFixes(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("elevation provider returns error", func(t *testing.T) {
		sampleFixes := []models.Fix{{ID: 3, Latitude: lat, Longitude: lon}}
		lookupErr := errors.New("elevation lookup failed")
		before := testutil.ToFloat64(metrics.ElevationErrors)

		mockRepo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		mockProvider.On("Elevation", ctx, signed).Return(0.0, lookupErr).Once()
		mockRepo.On("IncrementFailureCount", ctx, 3, "failed to resolve altitude: elevation lookup failed").
			Return(nil).Once()

		service.processFixes(ctx)

		mockRepo.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
		assert.InDelta(t, before+1, testutil.ToFloat64(metrics.ElevationErrors), 0)
	})

	t.Run("malformed coordinate", func(t *testing.T) {
		altitude := 1.0
		sampleFixes := []models.Fix{{ID: 4, Latitude: "38.15", Longitude: lon, Altitude: &altitude}}
		isParseErr := mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, `failed to parse latitude "38.15"`)
		})

		mockRepo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		mockRepo.On("IncrementFailureCount", ctx, 4, isParseErr).Return(nil).Once()

		service.processFixes(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("error to increment failure count", func(t *testing.T) {
		sampleFixes := []models.Fix{{ID: 5, Latitude: lat, Longitude: "E076"}}

		mockRepo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		mockRepo.On("IncrementFailureCount", ctx, 5, mock.AnythingOfType("string")).Return(assert.AnError).Once()

		service.processFixes(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("error to update fix", func(t *testing.T) {
		altitude := 6.7056
		sampleFixes := []models.Fix{{ID: 6, Latitude: lat, Longitude: lon, Altitude: &altitude}}
		expected, err := converter.ConvertSexagesimal(lat, lon, altitude)
		require.NoError(t, err)

		mockRepo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		mockRepo.On("UpdateFixNED", ctx, 6, altitude, expected).Return(assert.AnError).Once()

		service.processFixes(ctx)

		mockRepo.AssertExpectations(t)
	})

	t.Run("processed counters", func(t *testing.T) {
		assert.InDelta(t, 3, testutil.ToFloat64(metrics.FixesProcessed.WithLabelValues("success")), 0)
		assert.InDelta(t, 3, testutil.ToFloat64(metrics.FixesProcessed.WithLabelValues("failure")), 0)
		assert.InDelta(t, 0, testutil.ToFloat64(metrics.ActiveWorkers), 0)
	})

	t.Run("start context cancelled", func(t *testing.T) {
		tctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		service.Run(tctx)
	})
}
