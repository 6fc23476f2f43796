package calendar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      = ac("240", "243")
	colorDisabledFg = ac("250", "239")
	colorAccent     = ac("27", "62")
	colorAccentFg   = ac("255", "235")
	colorCursorBg   = ac("#e9e9e9", "#262626")
	colorToday      = ac("130", "214")
)

// Styles holds the cell styles of the grid. The zero value renders plain
// text.
type Styles struct {
	Title    lipgloss.Style
	Nav      lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Outside  lipgloss.Style
	Disabled lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Cursor   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Nav:      lipgloss.NewStyle().Foreground(colorAccent),
		Header:   faintIfDark(lipgloss.NewStyle().Foreground(colorMuted)),
		Cell:     lipgloss.NewStyle(),
		Outside:  faintIfDark(lipgloss.NewStyle().Foreground(colorMuted)),
		Disabled: lipgloss.NewStyle().Foreground(colorDisabledFg).Strikethrough(true),
		Selected: lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentFg).Bold(true),
		Today:    lipgloss.NewStyle().Foreground(colorToday).Underline(true),
		Cursor:   lipgloss.NewStyle().Background(colorCursorBg).Bold(true),
	}
}

func sprintf(format string, args ...any) string { return fmt.Sprintf(format, args...) }
