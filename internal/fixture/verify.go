package fixture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/groundtruth/internal/geodetic"
	"github.com/hashicorp/go-multierror"
)

// ErrMismatch is wrapped by every ValidationError.
var ErrMismatch = errors.New("ground truth mismatch")

// ValidationError reports a case whose rounded result differs from its expectation.
type ValidationError struct {
	Index    int     // Index is the 1-based case number.
	Field    string  // Field is "north" or "east".
	Expected float64 // Expected is the value from the fixture.
	Actual   float64 // Actual is the converted value after rounding.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("test %d failed: %s expected %g, got %g", e.Index, e.Field, e.Expected, e.Actual)
}

func (e *ValidationError) Unwrap() error {
	return ErrMismatch
}

// CaseError attaches a case index to a conversion failure.
type CaseError struct {
	Index int
	Err   error
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("test %d failed: %v", e.Index, e.Err)
}

func (e *CaseError) Unwrap() error {
	return e.Err
}

// Report summarizes a verification run.
type Report struct {
	Total    int
	Passed   int
	Failures []error
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return len(r.Failures) == 0 && r.Passed == r.Total
}

// Verifier converts fixture cases and compares them with their expectations.
type Verifier struct {
	Converter *geodetic.Converter
	Altitude  float64      // Altitude every case is converted at.
	FailFast  bool         // FailFast stops at the first failing case.
	Logger    *slog.Logger // Logger for per-case diagnostics.
}

// Verify checks every case. The returned error aggregates all failures (or only the
// first one with FailFast) and is nil when the report is clean.
func (v *Verifier) Verify(ctx context.Context, cases []Case) (Report, error) {
	var (
		report = Report{Total: len(cases)}
		result *multierror.Error
	)

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("verification interrupted: %w", err)
		}

		errs := v.check(c)
		if len(errs) == 0 {
			report.Passed++
			continue
		}

		for _, err := range errs {
			v.Logger.DebugContext(ctx, "Fixture case failed", "case", c.Index, "error", err)
		}
		report.Failures = append(report.Failures, errs...)
		result = multierror.Append(result, errs...)

		if v.FailFast {
			break
		}
	}

	v.Logger.InfoContext(ctx, "Fixture verification finished",
		"total", report.Total, "passed", report.Passed, "failures", len(report.Failures))

	return report, result.ErrorOrNil()
}

func (v *Verifier) check(c Case) []error {
	ned, err := v.Converter.ConvertSexagesimal(c.Latitude, c.Longitude, v.Altitude)
	if err != nil {
		return []error{&CaseError{Index: c.Index, Err: err}}
	}

	var errs []error
	if north := geodetic.Round6(ned.North); north != c.North {
		errs = append(errs, &ValidationError{Index: c.Index, Field: "north", Expected: c.North, Actual: north})
	}
	if east := geodetic.Round6(ned.East); east != c.East {
		errs = append(errs, &ValidationError{Index: c.Index, Field: "east", Expected: c.East, Actual: east})
	}

	return errs
}
