package hotel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is an RGB triple with channels normalized to the 0..1 range.
type Color struct {
	R, G, B float64
}

// ParseHex parses a "#RRGGBB" string (the leading # and narrower forms are
// accepted) into a Color and reports whether the input was valid.
func ParseHex(s string) (Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" || len(s) > 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, true
}

// HexToColor parses s, substituting the default theme color when invalid.
func HexToColor(s string) Color {
	if c, ok := ParseHex(s); ok {
		return c
	}
	return DefaultColor()
}

// DefaultColor returns the fallback theme color.
func DefaultColor() Color {
	c, _ := ParseHex(DefaultColorHex)
	return c
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// Lipgloss converts the color for use in terminal styles.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
