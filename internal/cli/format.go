package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// Status colours.
var (
	statusNewStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	statusInProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	statusDoneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

// printer renders items for the terminal.
type printer struct {
	color bool
}

func newPrinter(cfg *domain.Config) printer {
	return printer{color: cfg == nil || cfg.UI.ColorEnabled()}
}

func (p printer) status(s domain.Status) string {
	text := string(s)
	if !p.color {
		return text
	}
	switch s {
	case domain.StatusNew:
		return statusNewStyle.Render(text)
	case domain.StatusInProgress:
		return statusInProgressStyle.Render(text)
	case domain.StatusDone:
		return statusDoneStyle.Render(text)
	default:
		return text
	}
}

// table writes the items as a table with one row per item.
func (p printer) table(w io.Writer, items []shared.ItemView) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"ID", "Type", "Name", "Status", "Start", "Duration", "Epic"})
	for _, v := range items {
		epic := ""
		if v.EpicID > 0 {
			epic = strconv.Itoa(v.EpicID)
		}
		tw.AppendRow(table.Row{
			v.Item.ItemID(),
			v.Item.Kind().Display(),
			v.Item.Title(),
			p.status(v.Status),
			formatStart(v.Item.ScheduledStart()),
			formatDuration(v.Item.ScheduledDuration()),
			epic,
		})
	}
	tw.Render()
}

// details writes a single item and, for epics, its subtasks.
func (p printer) details(w io.Writer, v shared.ItemView, subs []shared.ItemView) {
	item := v.Item
	_, _ = fmt.Fprintf(w, "# %s %d: %s\n\n", capitalize(item.Kind().Display()), item.ItemID(), item.Title())
	if item.Summary() != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", item.Summary())
	}
	_, _ = fmt.Fprintf(w, "Status: %s\n", p.status(v.Status))
	_, _ = fmt.Fprintf(w, "Start: %s\n", formatStart(item.ScheduledStart()))
	_, _ = fmt.Fprintf(w, "Duration: %s\n", formatDuration(item.ScheduledDuration()))
	if !domain.IsUnscheduled(item.ScheduledStart()) {
		_, _ = fmt.Fprintf(w, "End: %s\n", domain.FormatDateTime(item.EndTime()))
	}
	if v.EpicID > 0 {
		_, _ = fmt.Fprintf(w, "Epic: #%d\n", v.EpicID)
	}

	if item.Kind() != domain.KindEpic {
		return
	}
	if len(subs) == 0 {
		_, _ = fmt.Fprintln(w, "\nSubtasks: none")
		return
	}
	_, _ = fmt.Fprintln(w, "\nSubtasks:")
	for _, sub := range subs {
		_, _ = fmt.Fprintf(w, "  #%d [%s] %s\n", sub.Item.ItemID(), p.status(sub.Status), sub.Item.Title())
	}
}

func formatStart(t time.Time) string {
	if domain.IsUnscheduled(t) {
		return "-"
	}
	return domain.FormatDateTime(t)
}

// formatDuration formats a duration as hours and minutes, e.g. 1h30m.
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// parseItemID parses an item ID argument. A leading # is allowed.
func parseItemID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid item ID %q", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("item ID must be positive: %d", id)
	}
	return id, nil
}
