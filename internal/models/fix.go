package models

// Fix is a recorded GPS fix waiting for its ground-truth NED offset.
type Fix struct {
	ID        int      // ID is the unique identifier for the fix.
	Latitude  string   // Latitude in sexagesimal form.
	Longitude string   // Longitude in sexagesimal form.
	Altitude  *float64 // Altitude in meters MSL, nil when it has to be looked up.
}
