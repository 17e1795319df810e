package main

import (
	"fmt"

	"github.com/UnknownOlympus/groundtruth/internal/config"
	"github.com/UnknownOlympus/groundtruth/internal/geodetic"
	"github.com/UnknownOlympus/groundtruth/internal/models"
)

// Reference origins selectable with --origin.
const (
	originDefault = "default"
	originFixture = "fixture"
	originConfig  = "config"
)

// loadOrigin resolves an --origin value into a reference point and the conversion
// options that go with it. Presets use the corrected options; the configured origin
// uses the configured mode.
func loadOrigin(origin string) (models.ReferencePoint, geodetic.Options, error) {
	switch origin {
	case originDefault:
		return geodetic.DefaultReference, geodetic.CorrectedOptions(), nil
	case originFixture:
		return geodetic.FixtureReference, geodetic.CorrectedOptions(), nil
	case originConfig:
		cfg := config.MustLoad()
		return cfg.Reference, cfg.ConverterOptions(), nil
	default:
		return models.ReferencePoint{}, geodetic.Options{},
			fmt.Errorf("unknown origin %q, must be %s, %s or %s", origin, originDefault, originFixture, originConfig)
	}
}
