// Package hotel loads the bundled hotel presentation resource.
//
// Every loader here is best-effort: a missing, unreadable, or malformed
// resource never surfaces an error to the caller. Loaders return a fully
// populated record built from the fallback literals below instead, so the
// app always has something to render.
package hotel

// Config is the hotel marketing record shown on the Home screen.
// It is read-only after loading; screens re-load rather than mutate.
type Config struct {
	Name               string
	Description        string
	Amenities          []string
	LocationLabel      string
	BackgroundColorHex string
}

// Location is the map variant of the record.
type Location struct {
	Latitude   float64
	Longitude  float64
	MarkerName string
}

// Fallback literals substituted whenever the resource cannot be decoded.
const (
	DefaultName          = "Default Hotel"
	DefaultLocationLabel = "Unknown Location"
	DefaultMarkerName    = "Fallback Location"
	DefaultColorHex      = "#1e1e2e"

	DefaultLatitude  = 37.3349
	DefaultLongitude = -122.0090
)

// DefaultConfig returns the fallback marketing record.
func DefaultConfig() Config {
	return Config{
		Name:               DefaultName,
		Description:        "",
		Amenities:          nil,
		LocationLabel:      DefaultLocationLabel,
		BackgroundColorHex: DefaultColorHex,
	}
}

// DefaultLocation returns the fallback map record.
func DefaultLocation() Location {
	return Location{
		Latitude:   DefaultLatitude,
		Longitude:  DefaultLongitude,
		MarkerName: DefaultMarkerName,
	}
}
