package main

import (
	"errors"
	"fmt"

	"github.com/UnknownOlympus/groundtruth/internal/fixture"
	"github.com/UnknownOlympus/groundtruth/internal/geodetic"
	"github.com/urfave/cli/v2"
)

var errVerificationFailed = errors.New("fixture verification failed")

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "check a fixture of positions against its expected north and east offsets",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:     "input",
				Usage:    "file with whitespace separated LAT LON pairs",
				Required: true,
			},
			&cli.PathFlag{
				Name:     "expected",
				Usage:    "file with whitespace separated NORTH EAST pairs",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "origin",
				Usage: "reference point: default, fixture or config",
				Value: originFixture,
			},
			&cli.Float64Flag{
				Name:  "altitude",
				Usage: "altitude of every fixture position in meters (defaults to the reference altitude)",
			},
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "stop at the first failing case",
			},
			&cli.BoolFlag{
				Name:  "corrected",
				Usage: "apply hemisphere signs and metric altitudes instead of the legacy behavior",
			},
		},
		Action: verify,
	}
}

func verify(c *cli.Context) error {
	logger := setupLogger(c.String("env"))

	ref, _, err := loadOrigin(c.String("origin"))
	if err != nil {
		return err
	}

	opts := geodetic.LegacyOptions()
	if c.Bool("corrected") {
		opts = geodetic.CorrectedOptions()
	}

	converter, err := geodetic.NewConverter(ref, geodetic.WGS84, opts)
	if err != nil {
		return err
	}

	cases, err := fixture.ReadFiles(c.Path("input"), c.Path("expected"))
	if err != nil {
		return err
	}

	altitude := ref.Altitude
	if c.IsSet("altitude") {
		altitude = c.Float64("altitude")
	}

	verifier := &fixture.Verifier{
		Converter: converter,
		Altitude:  altitude,
		FailFast:  c.Bool("fail-fast"),
		Logger:    logger,
	}

	report, err := verifier.Verify(c.Context, cases)
	if err != nil && report.Failures == nil {
		return err
	}

	out := c.App.Writer
	reported := make(map[int]bool)
	for _, failure := range report.Failures {
		index := failedCase(failure)
		if reported[index] {
			continue
		}
		reported[index] = true
		fmt.Fprintf(out, "Test %d failed\n", index)
		logger.DebugContext(c.Context, "Fixture failure detail", "case", index, "error", failure)
	}

	if !report.OK() {
		return fmt.Errorf("%w: %d of %d cases passed", errVerificationFailed, report.Passed, report.Total)
	}

	fmt.Fprintln(out, "All tests passed")

	return nil
}

// failedCase extracts the case index from a verification failure.
func failedCase(err error) int {
	var validationErr *fixture.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Index
	}

	var caseErr *fixture.CaseError
	if errors.As(err, &caseErr) {
		return caseErr.Index
	}

	return 0
}
