package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ivek1337/swiftlabel/internal/layout"
	"github.com/ivek1337/swiftlabel/internal/widgets"
)

// Amenity chips carry one cell of horizontal padding on each side and one
// cell of spacing between chips; the flow engine works in those terms.
const (
	chipPadding = 2
	chipSpacing = 1
)

// HomeTab is the landing screen: name, location, description, amenities.
type HomeTab struct{}

func (t *HomeTab) ID() string    { return "home" }
func (t *HomeTab) Title() string { return "Home" }

func (t *HomeTab) Build(m *Model) widgets.Widget {
	return homeWidget{m: m}
}

type homeWidget struct {
	m *Model
}

func (w homeWidget) Render(width, height int) string {
	m := w.m
	accent := m.accent.Lipgloss()
	// Pane frame: two border columns plus two padding columns.
	contentWidth := max(1, width-4)

	banner := strings.Join([]string{
		titleStyle.Render(m.hotel.Name),
		mutedStyle.Render(m.hotel.LocationLabel),
	}, "\n")

	about := ansi.Wrap(m.hotel.Description, contentWidth, "")
	if strings.TrimSpace(m.hotel.Description) == "" {
		about = mutedStyle.Render("No description available.")
	}

	stack := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Pane{Title: "Hotel", Content: banner, Accent: accent},
			widgets.Pane{Title: "About", Content: about, Accent: accent},
			widgets.Pane{Title: "Amenities", Content: renderChips(m.hotel.Amenities, contentWidth, m), Accent: accent},
		},
		Ratios: []float64{0.25, 0.45, 0.3},
	}
	return stack.Render(width, height)
}

// renderChips packs amenity labels into rows at the current content width
// and draws each label as a padded chip on the theme background.
func renderChips(labels []string, width int, m *Model) string {
	if len(labels) == 0 {
		return mutedStyle.Render("No amenities listed.")
	}
	style := chipStyle.Background(m.accent.Lipgloss())
	rows := layout.Rows(labels, float64(width), chipPadding, chipSpacing, layout.CellMeasure)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			cells = append(cells, style.Render(label))
		}
		lines = append(lines, strings.Join(cells, strings.Repeat(" ", chipSpacing)))
	}
	return strings.Join(lines, "\n")
}
