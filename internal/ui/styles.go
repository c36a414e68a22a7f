package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Surface     lipgloss.Style
	SurfaceHot  lipgloss.Style
	SurfaceHint lipgloss.Style
	Zone        lipgloss.Style
	Track       lipgloss.Style
	Thumb       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	LogBox      lipgloss.Style
	Help        lipgloss.Style
	ActionSlide lipgloss.Style
	ActionTouch lipgloss.Style
	ActionMove  lipgloss.Style
	ActionCancl lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Surface: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		SurfaceHot: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")),
		SurfaceHint: lipgloss.NewStyle().Faint(true).Italic(true),
		Zone:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Track:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Thumb:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		LogBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Faint(true),
		ActionSlide: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		ActionTouch: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		ActionMove:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		ActionCancl: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

// ActionColor returns the style used for an action name in the log.
func (s *Styles) ActionColor(name string) lipgloss.Style {
	switch {
	case len(name) >= 5 && name[:5] == "slide":
		return s.ActionSlide
	case len(name) >= 5 && name[:5] == "touch":
		return s.ActionTouch
	case len(name) >= 4 && name[:4] == "move":
		return s.ActionMove
	default:
		return s.ActionCancl
	}
}
