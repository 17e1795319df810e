package models

// LatLon represents a geographical point in decimal degrees.
type LatLon struct {
	Latitude  float64 // Latitude of the geographical point.
	Longitude float64 // Longitude of the geographical point.
}

// NED is an offset in meters in the local North-East-Down frame of a reference point.
// Down is positive below the reference altitude: a point 10 m above it has Down = -10.
type NED struct {
	North float64
	East  float64
	Down  float64
}

// ReferencePoint is the origin of the local frame. Latitude and longitude are
// sexagesimal strings such as "N38-09-01.50" and "W076-25-29.70"; altitude is in meters MSL.
type ReferencePoint struct {
	Latitude  string  `mapstructure:"latitude"  yaml:"latitude"`
	Longitude string  `mapstructure:"longitude" yaml:"longitude"`
	Altitude  float64 `mapstructure:"altitude"  yaml:"altitude"`
}
