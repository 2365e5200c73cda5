// Package layout packs short text labels into width-constrained rows.
package layout

import "github.com/charmbracelet/x/ansi"

// Row is one visual line of packed labels, in input order.
type Row []string

// MeasureFunc reports the rendered width of a label.
type MeasureFunc func(string) float64

// CellMeasure measures a label in terminal cells, ignoring ANSI sequences.
func CellMeasure(s string) float64 {
	return float64(ansi.StringWidth(s))
}

// Rows partitions items into rows so that no row's total width exceeds
// maxWidth. The pass is greedy and first-fit: each item is measured, padded
// by itemPadding, and appended to the current row unless doing so (plus the
// inter-item spacing) would overflow, in which case a new row starts with
// that item. Input order is preserved and an item wider than maxWidth still
// gets a row of its own. The final row is always emitted, so empty input
// yields exactly one empty row.
//
// Pure function; a nil measure defaults to CellMeasure.
func Rows(items []string, maxWidth, itemPadding, spacing float64, measure MeasureFunc) []Row {
	if measure == nil {
		measure = CellMeasure
	}
	rows := []Row{{}}
	width := 0.0
	for _, item := range items {
		itemWidth := measure(item) + itemPadding
		last := len(rows) - 1
		if width+itemWidth+spacing > maxWidth && len(rows[last]) > 0 {
			rows = append(rows, Row{item})
			width = itemWidth
			continue
		}
		rows[last] = append(rows[last], item)
		width += itemWidth + spacing
	}
	return rows
}
