package hotel

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const fullResource = `
hotelName = "Seaside Inn"
hotelDescription = "A small inn by the sea."
amenities = ["WiFi", "Pool"]
hotelLocation = "1 Beach Road"
latitude = -33.8688
longitude = 151.2093
markerName = "Seaside Inn"
backgroundColor = "#1f6f8b"
`

func writeResource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write resource: %v", err)
	}
	return path
}

func TestLoadRoundTrip(t *testing.T) {
	path := writeResource(t, fullResource)
	got := Load(path)
	want := Config{
		Name:               "Seaside Inn",
		Description:        "A small inn by the sea.",
		Amenities:          []string{"WiFi", "Pool"},
		LocationLabel:      "1 Beach Road",
		BackgroundColorHex: "#1f6f8b",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadMissingKeyFallsBackWhole(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no name", `
hotelDescription = "x"
amenities = []
hotelLocation = "y"
`},
		{"no description", `
hotelName = "x"
amenities = []
hotelLocation = "y"
`},
		{"no amenities", `
hotelName = "x"
hotelDescription = "d"
hotelLocation = "y"
`},
		{"no location", `
hotelName = "x"
hotelDescription = "d"
amenities = []
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Load(writeResource(t, tt.content))
			if !reflect.DeepEqual(got, DefaultConfig()) {
				t.Errorf("Load = %+v, want full default record", got)
			}
		})
	}
}

func TestLoadAbsentFile(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("Load = %+v, want default record", got)
	}
}

func TestLoadMalformedResource(t *testing.T) {
	got := Load(writeResource(t, `this is not valid toml [[[`))
	if !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("Load = %+v, want default record", got)
	}
}

func TestLoadWrongFieldType(t *testing.T) {
	got := Load(writeResource(t, `
hotelName = "x"
hotelDescription = "d"
amenities = "WiFi"
hotelLocation = "y"
`))
	if !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("Load = %+v, want default record", got)
	}
}

func TestLoadInvalidColorDefaultsPerField(t *testing.T) {
	got := Load(writeResource(t, `
hotelName = "x"
hotelDescription = "d"
amenities = ["WiFi"]
hotelLocation = "y"
backgroundColor = "not-a-color"
`))
	if got.Name != "x" {
		t.Errorf("name = %q, want %q", got.Name, "x")
	}
	if got.BackgroundColorHex != DefaultColorHex {
		t.Errorf("color = %q, want default %q", got.BackgroundColorHex, DefaultColorHex)
	}
}

func TestLoadLocationRoundTrip(t *testing.T) {
	got := LoadLocation(writeResource(t, fullResource))
	want := Location{Latitude: -33.8688, Longitude: 151.2093, MarkerName: "Seaside Inn"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadLocation = %+v, want %+v", got, want)
	}
}

func TestLoadLocationMissingCoordinateFallsBack(t *testing.T) {
	got := LoadLocation(writeResource(t, `
latitude = 1.0
markerName = "x"
`))
	if !reflect.DeepEqual(got, DefaultLocation()) {
		t.Errorf("LoadLocation = %+v, want fallback %+v", got, DefaultLocation())
	}
}

func TestLoadLocationOptionalMarkerName(t *testing.T) {
	got := LoadLocation(writeResource(t, `
latitude = 1.5
longitude = 2.5
`))
	if got.Latitude != 1.5 || got.Longitude != 2.5 {
		t.Errorf("coordinates = (%v, %v), want (1.5, 2.5)", got.Latitude, got.Longitude)
	}
	if got.MarkerName != "" {
		t.Errorf("markerName = %q, want empty", got.MarkerName)
	}
}

func TestLoadColor(t *testing.T) {
	path := writeResource(t, fullResource)
	got := LoadColor(path, "backgroundColor")
	want := HexToColor("#1f6f8b")
	if got != want {
		t.Errorf("LoadColor = %+v, want %+v", got, want)
	}
}

func TestLoadColorMissingKey(t *testing.T) {
	path := writeResource(t, fullResource)
	if got := LoadColor(path, "accentColor"); got != DefaultColor() {
		t.Errorf("LoadColor = %+v, want default", got)
	}
}

func TestLoadColorAbsentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	if got := LoadColor(path, "backgroundColor"); got != DefaultColor() {
		t.Errorf("LoadColor = %+v, want default", got)
	}
}

func TestLoadRereadsEveryCall(t *testing.T) {
	path := writeResource(t, fullResource)
	if got := Load(path); got.Name != "Seaside Inn" {
		t.Fatalf("first load name = %q", got.Name)
	}
	if err := os.WriteFile(path, []byte(`broken`), 0o644); err != nil {
		t.Fatalf("rewrite resource: %v", err)
	}
	if got := Load(path); !reflect.DeepEqual(got, DefaultConfig()) {
		t.Errorf("second load = %+v, want default record after rewrite", got)
	}
}
