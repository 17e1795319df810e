package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/groundtruth/internal/models"
)

// MaxConversionAttempts is the number of failed conversions after which a fix is no longer fetched.
const MaxConversionAttempts = 5

// FetchPendingFixes retrieves a list of fixes that have no NED offset yet.
// It returns fixes that have a NULL north component and fewer than MaxConversionAttempts
// failed conversions. The results are ordered by recording time and limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of fixes to retrieve.
//
// Returns:
// - A slice of models.Fix containing the fixes that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchPendingFixes(ctx context.Context, limit int) ([]models.Fix, error) {
	var fixes []models.Fix
	query := `
		SELECT fix_id, latitude, longitude, altitude
		FROM public.fixes
		WHERE
			north IS NULL
			AND conversion_attempts < $1
		ORDER BY recorded_at ASC
		LIMIT $2;
	`

	rows, err := r.db.Query(ctx, query, MaxConversionAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending fixes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fix models.Fix
		if errScan := rows.Scan(&fix.ID, &fix.Latitude, &fix.Longitude, &fix.Altitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan pending fix: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new fix without ground truth has been received.",
			"ID", fix.ID, "latitude", fix.Latitude, "longitude", fix.Longitude)
		fixes = append(fixes, fix)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return fixes, nil
}

// UpdateFixNED stores the altitude used for the conversion and the resulting NED offset
// of the fix identified by fixID. It clears the conversion_error field.
func (r *Repository) UpdateFixNED(ctx context.Context, fixID int, altitude float64, ned models.NED) error {
	query := `
		UPDATE fixes
		SET
			altitude = $1,
			north = $2,
			east = $3,
			down = $4,
			conversion_error = NULL
		WHERE
			fix_id = $5;
	`

	_, err := r.db.Exec(ctx, query, altitude, ned.North, ned.East, ned.Down, fixID)
	if err != nil {
		return fmt.Errorf("failed to update fix ground truth: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the conversion attempt count for the fix
// identified by fixID and records the associated error message.
func (r *Repository) IncrementFailureCount(ctx context.Context, fixID int, errMsg string) error {
	query := `
		UPDATE fixes
		SET
			conversion_attempts = conversion_attempts + 1,
			conversion_error = $1
		WHERE fix_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, fixID)
	if err != nil {
		return fmt.Errorf("failed to update conversion error and number of attempts: %w", err)
	}

	return nil
}
