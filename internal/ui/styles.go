package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"localsearch/internal/config"
)

// Built-in scheme used when the config theme leaves a slot empty.
const (
	defaultBackground = "#181818"
	defaultForeground = "#bbbbbb"
	defaultIdle       = "#141414"
	defaultHovered    = "#1e1e1e"
	defaultClicked    = "#282828"
)

// Styles holds the lipgloss styles derived from the configured theme.
type Styles struct {
	Title          lipgloss.Style
	Summary        lipgloss.Style
	QueryBox       lipgloss.Style
	QueryFocused   lipgloss.Style
	Result         lipgloss.Style
	ResultSelected lipgloss.Style
	Status         lipgloss.Style
}

// NewStyles builds the style set from theme, falling back to the built-in
// scheme for unset colors.
func NewStyles(theme config.Theme) Styles {
	fg := colorOr(theme.Foreground, defaultForeground)
	idle := colorOr(theme.Idle, defaultIdle)
	hovered := colorOr(theme.Hovered, defaultHovered)
	clicked := colorOr(theme.Clicked, defaultClicked)

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(fg),
		Summary: lipgloss.NewStyle().Faint(true).Foreground(fg),
		QueryBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Background(idle).
			Foreground(fg),
		QueryFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Background(hovered).
			Foreground(fg),
		Result: lipgloss.NewStyle().
			Padding(0, 1).
			Background(idle).
			Foreground(fg),
		ResultSelected: lipgloss.NewStyle().
			Padding(0, 1).
			Background(clicked).
			Foreground(fg).
			Bold(true),
		Status: lipgloss.NewStyle().Faint(true).Foreground(fg),
	}
}

// colorOr converts a config color to a lipgloss color, or falls back.
func colorOr(c *config.Color, fallback string) lipgloss.Color {
	if c == nil {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
