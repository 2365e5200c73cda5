package widgets

import (
	"math"
	"strings"
)

// VStack renders widgets top to bottom, splitting the height by Ratios
// (evenly when Ratios is absent) with Gap blank lines between widgets.
type VStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, v.Gap*(len(v.Widgets)-1))
	heights := split(max(1, height-gapTotal), len(v.Widgets), v.Ratios)
	parts := make([]string, 0, len(v.Widgets)*2)
	for i, w := range v.Widgets {
		parts = append(parts, w.Render(width, max(1, heights[i])))
		if i < len(v.Widgets)-1 && v.Gap > 0 {
			parts = append(parts, strings.TrimRight(strings.Repeat("\n", v.Gap), "\n"))
		}
	}
	return strings.Join(parts, "\n")
}

// HStack renders widgets left to right, splitting the width by Ratios with
// Gap columns of spaces between widgets.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := split(max(1, width-gapTotal), len(h.Widgets), h.Ratios)

	columns := make([][]string, len(h.Widgets))
	tallest := 0
	for i, w := range h.Widgets {
		columns[i] = strings.Split(w.Render(max(1, widths[i]), height), "\n")
		if len(columns[i]) > tallest {
			tallest = len(columns[i])
		}
	}
	gap := strings.Repeat(" ", h.Gap)
	lines := make([]string, 0, tallest)
	for row := 0; row < tallest; row++ {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if row < len(col) {
				cells[i] = padRight(col[row], widths[i])
			} else {
				cells[i] = strings.Repeat(" ", widths[i])
			}
		}
		lines = append(lines, strings.Join(cells, gap))
	}
	return strings.Join(lines, "\n")
}

// split divides total cells among n slots. Slots get equal shares unless
// ratios supplies one weight per slot; leftovers go to the leading slots.
func split(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r > 0 {
			sum += r
		} else {
			sum++
		}
	}
	used := 0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		out[i] = int(math.Floor(r / sum * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}
