package main

import (
	"fmt"
	"strconv"

	"github.com/UnknownOlympus/groundtruth/internal/geodetic"
	"github.com/urfave/cli/v2"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "print the NED offset of a single position",
		ArgsUsage: "LAT LON ALT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "origin",
				Usage: "reference point: default, fixture or config",
				Value: originConfig,
			},
			&cli.BoolFlag{
				Name:  "legacy",
				Usage: "ignore hemisphere letters and scale the reference altitude like the historical tools",
			},
			&cli.BoolFlag{
				Name:  "geodesic",
				Usage: "also print the ellipsoidal surface range and bearing from the reference point",
			},
		},
		Action: convert,
	}
}

func convert(c *cli.Context) error {
	if c.NArg() != 3 {
		return fmt.Errorf("usage: %s %s %s", c.App.Name, c.Command.Name, c.Command.ArgsUsage)
	}
	lat, lon := c.Args().Get(0), c.Args().Get(1)

	altitude, err := strconv.ParseFloat(c.Args().Get(2), 64)
	if err != nil {
		return fmt.Errorf("failed to parse altitude %q: %w", c.Args().Get(2), err)
	}

	ref, opts, err := loadOrigin(c.String("origin"))
	if err != nil {
		return err
	}
	if c.Bool("legacy") {
		opts = geodetic.LegacyOptions()
	}

	converter, err := geodetic.NewConverter(ref, geodetic.WGS84, opts)
	if err != nil {
		return err
	}

	ned, err := converter.ConvertSexagesimal(lat, lon, altitude)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "N: %s\nE: %s\nD: %s\n", formatFixture(ned.North), formatFixture(ned.East), formatFixture(ned.Down))

	if c.Bool("geodesic") {
		from, err := geodetic.ParseLatLon(ref.Latitude, ref.Longitude, geodetic.HemisphereSigned)
		if err != nil {
			return err
		}
		to, err := geodetic.ParseLatLon(lat, lon, geodetic.HemisphereSigned)
		if err != nil {
			return err
		}

		distance, bearing := geodetic.SurfaceRange(from, to)
		fmt.Fprintf(out, "Range: %s m\nBearing: %s deg\n", formatFixture(distance), formatFixture(bearing))
	}

	return nil
}

// formatFixture prints v with the precision of the fixture files.
func formatFixture(v float64) string {
	return strconv.FormatFloat(v, 'g', geodetic.FixtureDigits, 64)
}
