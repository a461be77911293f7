package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrRejected       = errors.New("rejected")
	ErrDuplicateID    = fmt.Errorf("%w: id already exists", ErrRejected)
	ErrNotFound       = fmt.Errorf("%w: not found", ErrRejected)
	ErrTimeConflict   = fmt.Errorf("%w: time frame overlaps a scheduled item", ErrRejected)
	ErrNilItem        = fmt.Errorf("%w: item is nil", ErrRejected)
	ErrInvalidID      = fmt.Errorf("%w: id must be positive", ErrRejected)
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidKind    = errors.New("invalid item type")
	ErrInvalidTime    = errors.New("invalid date-time")
	ErrInvalidPeriod  = errors.New("invalid duration")
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrSeparator      = errors.New("name and description cannot contain commas or line breaks")
	ErrEpicNotFound   = errors.New("epic not found")
	ErrNotInitialized = errors.New("taskboard not initialized (run 'taskboard init' first)")
	ErrConfigExists   = errors.New("config file already exists")
	ErrEmptyDraftFile = errors.New("draft file is empty")
	ErrNoDrafts       = errors.New("no items in draft file")

	// ErrFormat marks a backing file that cannot be loaded at all.
	ErrFormat        = errors.New("invalid store file")
	ErrEmptyFile     = fmt.Errorf("%w: file is empty", ErrFormat)
	ErrInvalidHeader = fmt.Errorf("%w: unexpected header", ErrFormat)
)
