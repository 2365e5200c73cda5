package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ivek1337/swiftlabel/internal/hotel"
	"github.com/ivek1337/swiftlabel/internal/widgets"
)

// LocationTab shows the hotel coordinate pinned on a character-cell map.
type LocationTab struct{}

func (t *LocationTab) ID() string    { return "location" }
func (t *LocationTab) Title() string { return "Location" }

func (t *LocationTab) Build(m *Model) widgets.Widget {
	return locationWidget{m: m}
}

type locationWidget struct {
	m *Model
}

func (w locationWidget) Render(width, height int) string {
	m := w.m
	accent := m.accent.Lipgloss()

	marker := m.location.MarkerName
	if marker == "" {
		marker = m.hotel.LocationLabel
	}
	info := strings.Join([]string{
		titleStyle.Render(marker),
		mutedStyle.Render(m.hotel.LocationLabel),
		"",
		fmt.Sprintf("Lat  %9.4f", m.location.Latitude),
		fmt.Sprintf("Lon  %9.4f", m.location.Longitude),
	}, "\n")

	stack := widgets.HStack{
		Widgets: []widgets.Widget{
			mapPane{loc: m.location, marker: marker, accent: accent},
			widgets.Pane{Title: "Marker", Content: info, Accent: accent},
		},
		Ratios: []float64{0.64, 0.36},
		Gap:    1,
	}
	return stack.Render(width, height)
}

type mapPane struct {
	loc    hotel.Location
	marker string
	accent lipgloss.Color
}

func (p mapPane) Render(width, height int) string {
	grid := renderGrid(max(1, width-4), max(1, height-2), p.loc.Latitude, p.loc.Longitude, p.marker)
	return widgets.Pane{Title: "Map", Content: grid, Accent: p.accent}.Render(width, height)
}

// renderGrid draws a dotted graticule with the projected pin and its label.
func renderGrid(width, height int, lat, lon float64, label string) string {
	x, y := project(lat, lon, width, height)
	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for col := 0; col < width; col++ {
			switch {
			case row%2 == 0 && col%4 == 0:
				b.WriteRune('·')
			default:
				b.WriteRune(' ')
			}
		}
		line := b.String()
		if row == y {
			tag := " " + ansi.Truncate(label, max(0, width-x-2), "…")
			if strings.TrimSpace(tag) == "" || x+1+len([]rune(tag)) > width {
				tag = ""
			}
			plain := []rune(line)
			left := string(plain[:x])
			right := ""
			if rest := x + 1 + len([]rune(tag)); rest < len(plain) {
				right = string(plain[rest:])
			}
			line = left + pinStyle.Render("◉") + mutedStyle.Render(tag) + right
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// project maps a coordinate onto a width x height grid using an
// equirectangular projection. Out-of-range coordinates clamp to the edges.
func project(lat, lon float64, width, height int) (x, y int) {
	lat = clamp(lat, -90, 90)
	lon = clamp(lon, -180, 180)
	x = int(math.Round((lon + 180) / 360 * float64(width-1)))
	y = int(math.Round((90 - lat) / 180 * float64(height-1)))
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
