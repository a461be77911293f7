// Package tui provides the terminal user interface for taskboard.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal     Mode = iota // Default navigation mode
	ModeFilter                 // Text filtering mode
	ModeConfirm                // Confirmation dialog mode
	ModeInputTitle             // Name input mode (for new task)
	ModeHelp                   // Help overlay mode
	ModeDetail                 // Item detail view mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFilter:
		return "filter"
	case ModeConfirm:
		return "confirm"
	case ModeInputTitle:
		return "input_title"
	case ModeHelp:
		return "help"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeFilter, ModeInputTitle:
		return true
	case ModeNormal, ModeConfirm, ModeHelp, ModeDetail:
		return false
	}
	return false
}

// ListView selects which items the main list shows.
type ListView int

const (
	ViewAll         ListView = iota // Every item, ascending ID
	ViewPrioritized                 // Scheduled items by start time
	ViewHistory                     // Recently viewed, most recent first
)

// String returns the header label of the view.
func (v ListView) String() string {
	switch v {
	case ViewAll:
		return "All items"
	case ViewPrioritized:
		return "By start time"
	case ViewHistory:
		return "Recently viewed"
	}
	return ""
}

// Next returns the view that follows v in the cycle.
func (v ListView) Next() ListView {
	switch v {
	case ViewAll:
		return ViewPrioritized
	case ViewPrioritized:
		return ViewHistory
	case ViewHistory:
		return ViewAll
	}
	return ViewAll
}
