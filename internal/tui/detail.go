package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderDetail builds the modal info screen: the full description plus the
// complete amenity list, dismissed with esc.
func (m *Model) renderDetail() string {
	width := min(56, max(24, m.width-16))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.hotel.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.hotel.LocationLabel))
	b.WriteString("\n\n")
	if strings.TrimSpace(m.hotel.Description) == "" {
		b.WriteString(mutedStyle.Render("No description available."))
	} else {
		b.WriteString(ansi.Wrap(m.hotel.Description, width, ""))
	}
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Amenities"))
	if len(m.hotel.Amenities) == 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("None listed."))
	} else {
		for _, amenity := range m.hotel.Amenities {
			b.WriteString("\n• ")
			b.WriteString(ansi.Truncate(amenity, width-2, "…"))
		}
	}
	return b.String()
}
