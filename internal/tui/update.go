package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskboard/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgItemsLoaded:
		// Drop results of a view that is no longer shown
		if msg.View != m.view {
			return m, nil
		}
		m.items = msg.Items
		m.updateItemList()
		return m, nil

	case MsgItemShown:
		m.openDetail(msg.Detail)
		return m, nil

	case MsgItemCreated:
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.titleInput.Blur()
		return m, m.loadItems()

	case MsgItemDeleted:
		m.mode = ModeNormal
		m.confirmItemID = 0
		return m, m.loadItems()

	case MsgStatusChanged:
		return m, m.loadItems()

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		m.confirmItemID = 0
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeFilter:
		return m.handleFilterMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeInputTitle:
		return m.handleInputTitleMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.itemList, cmd = m.itemList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		m.itemList.Paginator.PrevPage()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.itemList.Paginator.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		v, ok := m.SelectedItem()
		if !ok {
			return m, nil
		}
		return m, m.showItem(v.Item.ItemID())

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.titleInput.Reset()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		v, ok := m.SelectedItem()
		if !ok {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmItemID = v.Item.ItemID()
		return m, nil

	case key.Matches(msg, m.keys.NextStatus):
		v, ok := m.SelectedItem()
		if !ok {
			return m, nil
		}
		if v.Item.Kind() == domain.KindEpic {
			m.err = errDerivedStatus
			return m, nil
		}
		return m, m.setStatus(v.Item.ItemID(), nextStatus(v.Status))

	case key.Matches(msg, m.keys.SwitchView):
		m.view = m.view.Next()
		m.items = nil
		m.updateItemList()
		return m, m.loadItems()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadItems()

	case key.Matches(msg, m.keys.Filter):
		m.mode = ModeFilter
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.filterInput.Value() != "" {
			m.filterInput.Reset()
			m.updateItemList()
		}
		return m, nil
	}

	return m, nil
}

// handleFilterMode handles keys in filter mode.
func (m *Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.updateItemList()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = ModeNormal
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.updateItemList()
	return m, cmd
}

// handleConfirmMode handles keys in confirm mode.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmItemID = 0
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m, m.deleteItem(m.confirmItemID)
	}

	return m, nil
}

// handleInputTitleMode handles keys in name input mode.
func (m *Model) handleInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.titleInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		name := strings.TrimSpace(m.titleInput.Value())
		if name == "" {
			return m, nil
		}
		return m, m.createTask(name)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// handleDetailMode handles keys in the detail view. Leaving it reloads the
// list, since opening the item changed the history.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		m.detail = nil
		return m, m.loadItems()
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}
