package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeNormal, ModeFilter, ModeConfirm, ModeInputTitle:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main item list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeFilter {
		b.WriteString(m.styles.InputPrompt.Render("Filter: "))
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	} else if m.filterInput.Value() != "" {
		b.WriteString(m.styles.Footer.Render("Filtered: "+m.filterInput.Value()) + "\n\n")
	}

	if len(m.itemList.Items()) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.itemList.View())
	}

	switch m.mode {
	case ModeNormal, ModeFilter, ModeHelp, ModeDetail:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeInputTitle:
		b.WriteString("\n")
		b.WriteString(m.viewTitleInput())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the view name and the item count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render(m.view.String())

	countText := fmt.Sprintf("showing %d of %d items", len(m.itemList.Items()), len(m.items))
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	headerWidth := max(m.width-6, 40)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(rightText), 1)

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewEmptyState renders the message shown when the list is empty.
func (m *Model) viewEmptyState() string {
	switch {
	case m.filterInput.Value() != "":
		return m.styles.Footer.Render("No items match the filter.")
	case m.view == ViewHistory:
		return m.styles.Footer.Render("No items viewed yet. Press enter on an item to open it.")
	case m.view == ViewPrioritized:
		return m.styles.Footer.Render("No scheduled items.")
	default:
		return m.styles.Footer.Render("No items yet. Press n to create a task.")
	}
}

// viewConfirmDialog renders the delete confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	titleStyle := m.styles.DialogTitle.Foreground(Colors.Error)

	title := titleStyle.Render(fmt.Sprintf("Delete item #%d?", m.confirmItemID))
	prompt := "This action cannot be undone. Subtasks of an epic are deleted too."
	buttons := lipgloss.JoinHorizontal(lipgloss.Left,
		m.styles.InputPrompt.Render("[ y ] Confirm"), "  ", m.styles.Footer.Render("[ n ] Cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt, "", buttons)
	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewTitleInput renders the new task dialog.
func (m *Model) viewTitleInput() string {
	title := m.styles.DialogTitle.Render("◆ New Task")
	label := m.styles.InputPrompt.Render("Name")
	hint := m.styles.Footer.Render("enter create  esc cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", label, m.titleInput.View(), "", hint)
	return m.styles.Dialog.Render(content)
}

// viewFooter renders the short key help.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeNormal:
		m.help.ShowAll = false
		return m.help.View(m.keys)
	case ModeFilter:
		return m.styles.Footer.Render("enter apply · esc cancel")
	case ModeConfirm, ModeInputTitle, ModeHelp, ModeDetail:
		// Hints are shown in the dialogs/views themselves
		return ""
	}
	return ""
}

// viewHelp renders the full key help.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	m.help.ShowAll = true
	content := m.help.View(m.keys)
	m.help.ShowAll = false

	return m.styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content))
}

// viewDetail renders the item detail view.
func (m *Model) viewDetail() string {
	hint := m.styles.Footer.Render("↑/↓ scroll  esc back")
	return lipgloss.JoinVertical(lipgloss.Left, m.detailViewport.View(), "", hint)
}
