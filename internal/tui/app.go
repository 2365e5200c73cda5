// Package tui composes the hotel resource into the presentation screens.
//
// Allowed here:
// - model routing, key handling, tab and modal policy, screen rendering
//
// Not allowed here:
// - resource decoding (internal/hotel) or raw drawing primitives (widgets)
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ivek1337/swiftlabel/internal/config"
	"github.com/ivek1337/swiftlabel/internal/hotel"
	"github.com/ivek1337/swiftlabel/internal/widgets"
)

// Tab is one top-level destination in the header bar.
type Tab interface {
	ID() string
	Title() string
	Build(m *Model) widgets.Widget
}

const (
	tabHomeID     = "home"
	tabLocationID = "location"
)

// Model is the Bubble Tea model for the whole app.
type Model struct {
	settings   config.Settings
	width      int
	height     int
	tabs       []Tab
	activeTab  int
	showDetail bool
	status     string
	keys       keyMap

	hotel    hotel.Config
	location hotel.Location
	accent   hotel.Color
}

func New(settings config.Settings) *Model {
	return &Model{
		settings: settings,
		tabs:     []Tab{&HomeTab{}, &LocationTab{}},
		keys:     newKeyMap(),
		status:   "Loading hotel resource",
		width:    100,
		height:   32,
		hotel:    hotel.DefaultConfig(),
		location: hotel.DefaultLocation(),
		accent:   hotel.DefaultColor(),
	}
}

// resourceMsg carries a fresh read of every typed view of the resource.
type resourceMsg struct {
	cfg    hotel.Config
	loc    hotel.Location
	accent hotel.Color
}

// loadCmd re-reads the resource. Screens never cache it: every activation
// reloads so edits to the file show up on the next tab switch.
func (m *Model) loadCmd() tea.Cmd {
	path := m.settings.Resource.Path
	return func() tea.Msg {
		return resourceMsg{
			cfg:    hotel.Load(path),
			loc:    hotel.LoadLocation(path),
			accent: hotel.LoadColor(path, "backgroundColor"),
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case resourceMsg:
		m.hotel = msg.cfg
		m.location = msg.loc
		m.accent = msg.accent
		if !m.showDetail {
			m.status = "Showing " + m.hotel.Name
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showDetail {
		switch msg.String() {
		case "esc":
			m.showDetail = false
			m.status = "Showing " + m.hotel.Name
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1":
		return m, m.switchTab(tabHomeID)
	case "2":
		return m, m.switchTab(tabLocationID)
	case "tab":
		return m, m.switchTab(m.tabs[(m.activeTab+1)%len(m.tabs)].ID())
	case "enter":
		if m.activeTabID() == tabHomeID {
			m.showDetail = true
			m.status = "Hotel details"
			return m, m.loadCmd()
		}
	}
	return m, nil
}

// switchTab activates the tab with the given id and triggers the
// screen-activation reload of the resource. Unknown ids are ignored.
func (m *Model) switchTab(id string) tea.Cmd {
	for i, t := range m.tabs {
		if t.ID() != id {
			continue
		}
		m.activeTab = i
		m.showDetail = false
		m.status = "Opened " + t.Title()
		return m.loadCmd()
	}
	return nil
}

func (m *Model) activeTabID() string {
	return m.tabs[m.activeTab].ID()
}

func (m *Model) View() string {
	header := m.renderHeader()
	status := renderBar(statusBarStyle, max(1, m.width), m.status, colorSurface)
	footer := renderHelp(m.helpBindings(), m.width)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	var body string
	if bodyHeight > 0 {
		body = m.tabs[m.activeTab].Build(m).Render(max(1, m.width-2), bodyHeight)
		if m.showDetail {
			body = widgets.RenderPopup(body, m.renderDetail(), m.width-2, bodyHeight)
		}
		body = fitHeight(body, bodyHeight)
	}
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m *Model) renderHeader() string {
	tabs := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Title())
		if i == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render("swiftlabel")
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
