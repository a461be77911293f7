package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// prefixWidth is the width of the indicator, ID, status and kind columns.
const prefixWidth = 24

type itemEntry struct {
	view shared.ItemView
}

func (e itemEntry) FilterValue() string {
	return e.view.Item.Title()
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncate shortens s to at most width cells, ending with "...".
func truncate(s string, width int) string {
	if width < 10 {
		width = 10
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// pad right-fills s with spaces up to width cells.
func pad(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// scheduleText describes the time frame of an item, or "unscheduled".
func scheduleText(item domain.Item) string {
	start := item.ScheduledStart()
	if domain.IsUnscheduled(start) {
		return "unscheduled"
	}
	return fmt.Sprintf("%s  %s", domain.FormatDateTime(start), domain.FormatPeriod(item.ScheduledDuration()))
}

type itemDelegate struct {
	styles Styles
}

func newItemDelegate(styles Styles) itemDelegate {
	return itemDelegate{styles: styles}
}

func (d itemDelegate) Height() int {
	return 2
}

func (d itemDelegate) Spacing() int {
	return 1
}

func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	entry, ok := li.(itemEntry)
	if !ok {
		return
	}
	item := entry.view.Item
	status := entry.view.Status
	selected := index == m.Index()
	listWidth := m.Width()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	idStr := fmt.Sprintf("%3d", item.ItemID())
	statusText := fmt.Sprintf("%-5s", StatusText(status))
	kindText := fmt.Sprintf("%-4s", item.Kind().Display())
	title := truncate(item.Title(), listWidth-prefixWidth-2)

	indicator := d.styles.SelectionIndicator.Bold(selected).Render(indicatorChar)
	idPart := d.styles.ItemID.Bold(selected).Render(idStr)
	iconPart := d.styles.StatusStyle(status).Bold(selected).Render(StatusIcon(status))
	textPart := d.styles.StatusStyle(status).Bold(selected).Render(statusText)
	kindPart := d.styles.ItemKind.Render(kindText)
	titlePart := d.styles.ItemTitle.Bold(selected).Render(title)

	line := "  " + indicator + " " + idPart + "  " + iconPart + " " + textPart + "  " + kindPart + "  " + titlePart
	_, _ = fmt.Fprintln(w, pad(line, listWidth))

	detail := scheduleText(item)
	if entry.view.EpicID > 0 {
		detail += fmt.Sprintf("  epic #%d", entry.view.EpicID)
	}
	if desc := item.Summary(); desc != "" {
		detail += "  " + escapeNewlines(desc)
	}
	descLine := strings.Repeat(" ", prefixWidth) + truncate(detail, listWidth-prefixWidth-2)
	_, _ = fmt.Fprint(w, d.styles.ItemDesc.Render(pad(descLine, listWidth)))
}
