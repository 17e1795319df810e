package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/groundtruth/internal/elevation"
	"github.com/UnknownOlympus/groundtruth/internal/geodetic"
	"github.com/UnknownOlympus/groundtruth/internal/metrics"
	"github.com/UnknownOlympus/groundtruth/internal/models"
	"github.com/UnknownOlympus/groundtruth/internal/repository"
)

// fetchLimit is the maximum number of fixes handled per poll.
const fetchLimit = 100

// GroundTruthService converts recorded fixes into NED offsets from the configured
// reference point, looking up missing altitudes with an elevation provider.
type GroundTruthService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for data repository access
	converter    *geodetic.Converter  // Shared converter bound to the reference point
	provider     elevation.Provider   // Elevation provider for fixes without altitude
	providerName string               // Name of the provider for metrics labeling
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval for polling pending fixes
}

// NewGroundTruthService creates a new instance of GroundTruthService.
func NewGroundTruthService(
	log *slog.Logger,
	repo repository.Interface,
	converter *geodetic.Converter,
	provider elevation.Provider,
	providerName string,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
) *GroundTruthService {
	return &GroundTruthService{
		log:          log,
		repo:         repo,
		converter:    converter,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
	}
}

// Run starts the service, which periodically polls for fixes without a NED offset.
// It returns when the context is cancelled.
func (gs *GroundTruthService) Run(ctx context.Context) {
	ticker := time.NewTicker(gs.pollInterval)
	defer ticker.Stop()

	gs.log.InfoContext(ctx, "Ground truth service started...", "reference", gs.converter.Reference())

	for {
		select {
		case <-ctx.Done():
			gs.log.InfoContext(ctx, "Ground truth service stopped.")
			return
		case <-ticker.C:
			gs.log.InfoContext(ctx, "Polling for new fixes to convert...")
			gs.processFixes(ctx)
		}
	}
}

// processFixes fetches pending fixes, fans them out to a worker pool and waits
// for the batch to finish.
func (gs *GroundTruthService) processFixes(ctx context.Context) {
	fixes, err := gs.repo.FetchPendingFixes(ctx, fetchLimit)
	if err != nil {
		gs.log.ErrorContext(ctx, "Failed to fetch fixes", "error", err)
		return
	}
	if len(fixes) == 0 {
		gs.log.InfoContext(ctx, "No fixes to process.")
		return
	}

	gs.log.InfoContext(
		ctx,
		"Found fixes to process. Starting worker pool.",
		"jobs",
		len(fixes),
		"num_workers",
		gs.numWorkers,
	)

	jobs := make(chan models.Fix, len(fixes))
	var wgr sync.WaitGroup

	for i := 1; i <= gs.numWorkers; i++ {
		wgr.Add(1)
		go gs.worker(ctx, i, &wgr, jobs)
	}

	for _, fix := range fixes {
		jobs <- fix
	}
	close(jobs)

	wgr.Wait()
	gs.log.InfoContext(ctx, "Processing batch finished")
}

func (gs *GroundTruthService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Fix) {
	defer wg.Done()
	for fix := range jobs {
		gs.metrics.ActiveWorkers.Inc()
		gs.log.DebugContext(ctx, "Processing fix", "worker", idx, "fix", fix.ID)

		altitude, ned, err := gs.convert(ctx, fix)
		if err != nil {
			gs.log.ErrorContext(ctx, "Failed to convert fix", "worker", idx, "fix", fix.ID, "error", err)
			gs.metrics.FixesProcessed.WithLabelValues("failure").Inc()

			if err = gs.repo.IncrementFailureCount(ctx, fix.ID, err.Error()); err != nil {
				gs.log.ErrorContext(
					ctx,
					"Could not update failure count for fix",
					"worker", idx,
					"fix", fix.ID,
					"error", err,
				)
			}
			gs.metrics.ActiveWorkers.Dec()
			continue
		}

		gs.metrics.FixesProcessed.WithLabelValues("success").Inc()

		if err = gs.repo.UpdateFixNED(ctx, fix.ID, altitude, ned); err != nil {
			gs.log.ErrorContext(
				ctx,
				"Failed to store NED offset for fix",
				"worker", idx,
				"fix", fix.ID,
				"error", err,
			)
		} else {
			gs.log.DebugContext(ctx, "Worker successfully processed the fix", "worker", idx, "fix", fix.ID,
				"north", ned.North, "east", ned.East, "down", ned.Down)
		}

		gs.metrics.ActiveWorkers.Dec()
	}
}

// convert resolves the altitude of the fix and returns it with the NED offset.
func (gs *GroundTruthService) convert(ctx context.Context, fix models.Fix) (float64, models.NED, error) {
	var altitude float64
	if fix.Altitude != nil {
		altitude = *fix.Altitude
	} else {
		// elevation services need the true signed position regardless of the converter mode
		point, err := geodetic.ParseLatLon(fix.Latitude, fix.Longitude, geodetic.HemisphereSigned)
		if err != nil {
			return 0, models.NED{}, err
		}

		startTime := time.Now()
		altitude, err = gs.provider.Elevation(ctx, point)
		gs.metrics.ElevationSeconds.WithLabelValues(gs.providerName).Observe(time.Since(startTime).Seconds())
		if err != nil {
			gs.metrics.ElevationErrors.Inc()
			return 0, models.NED{}, fmt.Errorf("failed to resolve altitude: %w", err)
		}
	}

	startTime := time.Now()
	ned, err := gs.converter.ConvertSexagesimal(fix.Latitude, fix.Longitude, altitude)
	gs.metrics.ConversionSeconds.Observe(time.Since(startTime).Seconds())
	if err != nil {
		return 0, models.NED{}, err
	}

	return altitude, ned, nil
}
