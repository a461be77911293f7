// Package cli provides the command-line interface for taskboard.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupItem  = "item"
	groupView  = "view"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskboard.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Single-user task tracker",
		Long: `taskboard tracks tasks, epics and the subtasks that make them up.

Scheduled tasks and subtasks may not overlap in time. An epic's status and
time frame are derived from its subtasks. Items are stored in
.taskboard/tasks.csv at the project root.

Run without a command to open the interactive browser.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if dir != "" {
				if err := c.Rebase(dir, cmd.ErrOrStderr()); err != nil {
					return err
				}
			}

			if c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVarP(&dir, "dir", "C", "", "Run as if started in this directory")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupItem, Title: "Item Management:"},
		&cobra.Group{ID: groupView, Title: "Viewing:"},
	)

	setup := []*cobra.Command{
		newInitCommand(c),
		newConfigCommand(c),
		newLogsCommand(c),
	}
	items := []*cobra.Command{
		newNewCommand(c),
		newEditCommand(c),
		newRmCommand(c),
		newClearSubsCommand(c),
		newImportCommand(c),
	}
	views := []*cobra.Command{
		newListCommand(c),
		newShowCommand(c),
		newSubsCommand(c),
		newHistoryCommand(c),
		newTUICommand(c),
	}

	for _, cmd := range setup {
		cmd.GroupID = groupSetup
		root.AddCommand(cmd)
	}
	for _, cmd := range items {
		cmd.GroupID = groupItem
		root.AddCommand(cmd)
	}
	for _, cmd := range views {
		cmd.GroupID = groupView
		root.AddCommand(cmd)
	}

	return root
}
