package tui

import (
	"github.com/runoshun/taskboard/internal/usecase"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgItemsLoaded is sent when the list for a view is loaded.
type MsgItemsLoaded struct {
	Items []shared.ItemView
	View  ListView
}

func (MsgItemsLoaded) sealed() {}

// MsgItemShown is sent when an item has been opened. Opening records history.
type MsgItemShown struct {
	Detail *usecase.ShowItemOutput
}

func (MsgItemShown) sealed() {}

// MsgItemCreated is sent when a new task is created.
type MsgItemCreated struct {
	ID int
}

func (MsgItemCreated) sealed() {}

// MsgItemDeleted is sent when an item is deleted.
type MsgItemDeleted struct {
	ID      int
	Deleted int
}

func (MsgItemDeleted) sealed() {}

// MsgStatusChanged is sent when a task or subtask status is updated.
type MsgStatusChanged struct {
	ID int
}

func (MsgStatusChanged) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
