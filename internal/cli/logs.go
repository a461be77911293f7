package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/usecase"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Item  string
		Lines int
	}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the log file",
		Long: `Show .taskboard/logs/taskboard.log.

Examples:
  taskboard logs -n 20
  taskboard logs --item 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ShowLogsInput{Lines: opts.Lines}
			if opts.Item != "" {
				id, err := parseItemID(opts.Item)
				if err != nil {
					return err
				}
				input.ItemID = id
			}

			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), input)
			if errors.Is(err, usecase.ErrNoLogFile) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No logs yet.")
				return nil
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Item, "item", "", "Only entries of this item")
	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", 0, "Show the last n lines")

	return cmd
}
