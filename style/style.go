// Package style provides small lipgloss render helpers for CLI output.
package style

import (
	"github.com/anisan-cli/anistream/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer applying the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Tag renders s as a padded block, used for quality labels.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s) }
}

// Quality picks a tag color by rank: full HD and above green, HD yellow, the rest gray.
func Quality(rank int) func(string) string {
	switch {
	case rank >= 1080:
		return Tag(color.Black, color.Green)
	case rank >= 720:
		return Tag(color.Black, color.Yellow)
	default:
		return Tag(color.White, color.Gray)
	}
}
