package geodetic

import (
	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
	"github.com/UnknownOlympus/groundtruth/internal/models"
)

var globe = ellipsoid.Init(
	"WGS84",
	ellipsoid.Degrees,
	ellipsoid.Meter,
	ellipsoid.LongitudeIsSymmetric,
	ellipsoid.BearingNotSymmetric,
)

// SurfaceRange returns the ellipsoidal distance in meters and the initial bearing
// in degrees from one signed decimal position to another.
func SurfaceRange(from, to models.LatLon) (float64, float64) {
	return globe.To(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}
