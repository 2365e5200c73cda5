package hotel

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// document mirrors the TOML resource. Pointer fields distinguish a missing
// key from a zero value, so a half-written resource falls back as a whole
// rather than producing a mixed record.
type document struct {
	Name        *string   `toml:"hotelName"`
	Description *string   `toml:"hotelDescription"`
	Amenities   *[]string `toml:"amenities"`
	Location    *string   `toml:"hotelLocation"`
	Latitude    *float64  `toml:"latitude"`
	Longitude   *float64  `toml:"longitude"`
	MarkerName  *string   `toml:"markerName"`
	Color       *string   `toml:"backgroundColor"`
}

func decode(path string) (document, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("resource", path).Msg("hotel resource unreadable")
		return document{}, false
	}
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		log.Debug().Err(err).Str("resource", path).Msg("hotel resource undecodable")
		return document{}, false
	}
	return doc, true
}

// Load reads the marketing record from the resource at path. Any failure,
// including a single missing required key, yields DefaultConfig.
func Load(path string) Config {
	doc, ok := decode(path)
	if !ok || doc.Name == nil || doc.Description == nil || doc.Amenities == nil || doc.Location == nil {
		return DefaultConfig()
	}
	colorHex := DefaultColorHex
	if doc.Color != nil {
		if _, valid := ParseHex(*doc.Color); valid {
			colorHex = *doc.Color
		}
	}
	return Config{
		Name:               *doc.Name,
		Description:        *doc.Description,
		Amenities:          *doc.Amenities,
		LocationLabel:      *doc.Location,
		BackgroundColorHex: colorHex,
	}
}

// LoadLocation reads the map record from the resource at path. Both
// coordinates are required; a missing markerName leaves the field empty so
// the view can substitute its own label.
func LoadLocation(path string) Location {
	doc, ok := decode(path)
	if !ok || doc.Latitude == nil || doc.Longitude == nil {
		return DefaultLocation()
	}
	marker := ""
	if doc.MarkerName != nil {
		marker = *doc.MarkerName
	}
	return Location{
		Latitude:   *doc.Latitude,
		Longitude:  *doc.Longitude,
		MarkerName: marker,
	}
}

// LoadColor reads a single hex-encoded color field from the resource at
// path, falling back to the default theme color on any failure.
func LoadColor(path, key string) Color {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("resource", path).Msg("color resource unreadable")
		return DefaultColor()
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		log.Debug().Err(err).Str("resource", path).Msg("color resource undecodable")
		return DefaultColor()
	}
	value, ok := raw[key].(string)
	if !ok {
		return DefaultColor()
	}
	return HexToColor(value)
}
