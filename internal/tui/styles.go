package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskboard/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Status colors
	New        lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
	Derived    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	New:        lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Done:       lipgloss.Color("#00B894"), // Green
	Derived:    lipgloss.Color("#636E72"), // Gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Item list
	ItemID             lipgloss.Style
	ItemKind           lipgloss.Style
	ItemTitle          lipgloss.Style
	ItemDesc           lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Status badges
	StatusNew        lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style
	StatusDerived    lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style

	// Detail view
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailDesc  lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		ItemID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ItemKind: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		ItemTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ItemDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		StatusNew: lipgloss.NewStyle().
			Foreground(Colors.New),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		StatusDerived: lipgloss.NewStyle().
			Foreground(Colors.Derived),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(10),

		DetailDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusNew:
		return s.StatusNew
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusDone:
		return s.StatusDone
	default:
		return s.StatusDerived
	}
}

// StatusIcon returns an icon for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusNew:
		return "○"
	case domain.StatusInProgress:
		return "●"
	case domain.StatusDone:
		return "✓"
	default:
		return "?"
	}
}

// StatusText returns a fixed-width label for a given status.
func StatusText(status domain.Status) string {
	switch status {
	case domain.StatusNew:
		return "new"
	case domain.StatusInProgress:
		return "doing"
	case domain.StatusDone:
		return "done"
	default:
		return "n/a"
	}
}

// nextStatus returns the status that follows s: NEW, IN_PROGRESS, DONE, then NEW again.
func nextStatus(s domain.Status) domain.Status {
	switch s {
	case domain.StatusNew:
		return domain.StatusInProgress
	case domain.StatusInProgress:
		return domain.StatusDone
	default:
		return domain.StatusNew
	}
}
