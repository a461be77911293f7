package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/runoshun/taskboard/internal/domain"
)

// ErrNoLogFile is returned when nothing has been logged yet.
var ErrNoLogFile = errors.New("no log file")

// ShowLogsInput contains the parameters for showing the log file.
type ShowLogsInput struct {
	ItemID int // Only entries for this item (0 = all)
	Lines  int // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing the log file.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Selected log lines
}

// ShowLogs is the use case for viewing the log file.
type ShowLogs struct {
	dataDir string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(dataDir string) *ShowLogs {
	return &ShowLogs{dataDir: dataDir}
}

// Execute reads and returns the log content.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	logPath := domain.LogPath(uc.dataDir)

	content, err := os.ReadFile(logPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoLogFile, logPath)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if in.ItemID > 0 {
		label := "[" + domain.ItemLabel(in.ItemID) + "]"
		filtered := lines[:0]
		for _, line := range lines {
			if strings.Contains(line, label) {
				filtered = append(filtered, line)
			}
		}
		lines = filtered
	}
	if in.Lines > 0 && len(lines) > in.Lines {
		lines = lines[len(lines)-in.Lines:]
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: strings.Join(lines, "\n"),
	}, nil
}
