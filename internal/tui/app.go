package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// errDerivedStatus is shown when the status of an epic is cycled.
var errDerivedStatus = errors.New("epic status is derived from its subtasks")

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	detail    *usecase.ShowItemOutput
	err       error

	// State (slices - contain pointers)
	items []shared.ItemView

	// Components (structs with pointers)
	keys           KeyMap
	styles         Styles
	help           help.Model
	itemList       list.Model
	detailViewport viewport.Model

	// Input state (large structs)
	titleInput  textinput.Model
	filterInput textinput.Model

	// Numeric state (smaller types last)
	mode          Mode
	view          ListView
	width         int
	height        int
	confirmItemID int
}

// New creates a new TUI Model with the given container. The container's
// store must be open.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task name"
	ti.CharLimit = 200

	fi := textinput.New()
	fi.Placeholder = "Filter items..."
	fi.CharLimit = 100

	styles := DefaultStyles()
	itemList := list.New([]list.Item{}, newItemDelegate(styles), 0, 0)
	itemList.SetShowTitle(false)
	itemList.SetShowStatusBar(false)
	itemList.SetShowHelp(false)
	itemList.SetShowPagination(false)
	itemList.SetFilteringEnabled(false)
	itemList.DisableQuitKeybindings()

	return &Model{
		container:   c,
		mode:        ModeNormal,
		view:        ViewAll,
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		itemList:    itemList,
		titleInput:  ti,
		filterInput: fi,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadItems()
}

// loadItems returns a command that loads the items of the current view.
func (m *Model) loadItems() tea.Cmd {
	view := m.view
	return func() tea.Msg {
		ctx := context.Background()
		var items []shared.ItemView
		switch view {
		case ViewAll, ViewPrioritized:
			out, err := m.container.ListItemsUseCase().Execute(ctx, usecase.ListItemsInput{Prioritized: view == ViewPrioritized})
			if err != nil {
				return MsgError{Err: err}
			}
			items = out.Items
		case ViewHistory:
			out, err := m.container.ShowHistoryUseCase().Execute(ctx, usecase.ShowHistoryInput{})
			if err != nil {
				return MsgError{Err: err}
			}
			items = out.Items
		}
		return MsgItemsLoaded{Items: items, View: view}
	}
}

// showItem returns a command that opens an item. Opening records history.
func (m *Model) showItem(id int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ShowItemUseCase().Execute(context.Background(), usecase.ShowItemInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgItemShown{Detail: out}
	}
}

// createTask returns a command that creates a new unscheduled task.
func (m *Model) createTask(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.NewItemUseCase().Execute(context.Background(), usecase.NewItemInput{Name: name})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgItemCreated{ID: out.ID}
	}
}

// deleteItem returns a command that deletes an item.
func (m *Model) deleteItem(id int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteItemUseCase().Execute(context.Background(), usecase.DeleteItemInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgItemDeleted{ID: id, Deleted: out.Deleted}
	}
}

// setStatus returns a command that changes the status of a task or subtask.
func (m *Model) setStatus(id int, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.EditItemUseCase().Execute(context.Background(), usecase.EditItemInput{ID: id, Status: &status})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatusChanged{ID: id}
	}
}

// SelectedItem returns the currently selected item, or false if none.
func (m *Model) SelectedItem() (shared.ItemView, bool) {
	entry, ok := m.itemList.SelectedItem().(itemEntry)
	if !ok {
		return shared.ItemView{}, false
	}
	return entry.view, true
}

// visibleItems returns the loaded items that match the filter.
func (m *Model) visibleItems() []shared.ItemView {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		return m.items
	}

	filtered := make([]shared.ItemView, 0, len(m.items))
	for _, v := range m.items {
		if strings.Contains(strings.ToLower(v.Item.Title()), query) ||
			strings.Contains(strings.ToLower(v.Item.Summary()), query) ||
			strings.Contains(strings.ToLower(string(v.Status)), query) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// updateItemList refreshes the list component from the visible items.
func (m *Model) updateItemList() {
	visible := m.visibleItems()
	entries := make([]list.Item, 0, len(visible))
	for _, v := range visible {
		entries = append(entries, itemEntry{view: v})
	}
	m.itemList.SetItems(entries)
}

// updateLayoutSizes resizes the components after a window change.
func (m *Model) updateLayoutSizes() {
	width := max(m.width-6, 20)
	height := max(m.height-10, 3)
	m.itemList.SetSize(width, height)
	m.detailViewport.Width = width
	m.detailViewport.Height = height
	if m.detail != nil {
		m.detailViewport.SetContent(m.detailContent())
	}
}

// openDetail switches to the detail view for the shown item.
func (m *Model) openDetail(detail *usecase.ShowItemOutput) {
	m.detail = detail
	m.mode = ModeDetail
	m.detailViewport = viewport.New(max(m.width-6, 20), max(m.height-10, 3))
	m.detailViewport.SetContent(m.detailContent())
}

// detailContent renders the shown item for the detail viewport.
func (m *Model) detailContent() string {
	if m.detail == nil {
		return "No item selected"
	}
	v := m.detail.Item
	item := v.Item

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(m.styles.DetailLabel.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.DetailTitle.Render(fmt.Sprintf("%s #%d", item.Kind().Display(), item.ItemID())))
	b.WriteString("\n")
	b.WriteString(m.styles.ItemTitle.Bold(true).Render(item.Title()))
	b.WriteString("\n\n")

	row("Status", m.styles.StatusStyle(v.Status).Render(string(v.Status)))
	if start := item.ScheduledStart(); domain.IsUnscheduled(start) {
		row("Start", "unscheduled")
	} else {
		row("Start", domain.FormatDateTime(start))
		row("End", domain.FormatDateTime(item.EndTime()))
	}
	row("Duration", domain.FormatPeriod(item.ScheduledDuration()))
	if v.EpicID > 0 {
		row("Epic", fmt.Sprintf("#%d", v.EpicID))
	}

	if item.Summary() != "" {
		b.WriteString(m.styles.DetailDesc.Render(item.Summary()))
		b.WriteString("\n")
	}

	if item.Kind() == domain.KindEpic {
		b.WriteString("\n")
		b.WriteString(m.styles.DetailLabel.Render("Subtasks"))
		b.WriteString("\n")
		if len(m.detail.SubTasks) == 0 {
			b.WriteString("  none\n")
		}
		for _, sub := range m.detail.SubTasks {
			fmt.Fprintf(&b, "  %s #%d %s\n",
				m.styles.StatusStyle(sub.Status).Render(StatusIcon(sub.Status)),
				sub.Item.ItemID(),
				sub.Item.Title())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
