package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Widget is anything that can draw itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Pane draws a titled rounded-border box. The title sits in the top border.
type Pane struct {
	Title   string
	Content string
	Accent  lipgloss.Color
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	accent := p.Accent
	if accent == "" {
		accent = lipgloss.Color("#6c7086")
	}
	borderStyle := lipgloss.NewStyle().Foreground(accent)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := ""
	if strings.TrimSpace(p.Title) != "" {
		titleText = " " + ansi.Truncate(p.Title, max(1, innerWidth-2), "…") + " "
	}
	titleW := ansi.StringWidth(titleText)
	dashes := innerWidth - titleW
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	side := borderStyle.Render("│")
	contentLines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], contentWidth, "…")
		}
		rows = append(rows, side+" "+padRight(line, contentWidth)+" "+side)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
