package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup composites popup, wrapped in a rounded card, centered over
// base. Both canvases are normalized to width x height first.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)

	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, line := range cardLines {
		if w := ansi.StringWidth(line); w > cardWidth {
			cardWidth = w
		}
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)

	baseLines := canvas(base, width, height)
	for i, line := range cardLines {
		row := y + i
		if row >= height {
			break
		}
		left := ansi.Truncate(baseLines[row], x, "")
		right := dropColumns(baseLines[row], x+cardWidth)
		baseLines[row] = padRight(left+padRight(line, cardWidth)+right, width)
	}
	return strings.Join(baseLines, "\n")
}

func canvas(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return lines
}

// dropColumns removes the first cols display columns from s, keeping any
// ANSI-styled remainder intact.
func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}
