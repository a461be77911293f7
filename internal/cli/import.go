package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/infra/draftfile"
	"github.com/runoshun/taskboard/internal/usecase"
)

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		DryRun bool
	}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create items from a YAML file",
		Long: `Create items in bulk from a YAML file.

File format:
  items:
    - kind: epic
      name: Release
      subtasks:
        - name: Build
          start: 2024-03-01T09:00
          duration: 30m
    - name: Write notes
      status: in_progress
    - kind: sub
      epic: 4
      name: Follow up

Every item is validated before anything is created. Creation stops at the
first rejected item; items created before it are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := draftfile.ParseFile(args[0])
			if err != nil {
				return err
			}

			if err := openStore(c); err != nil {
				return err
			}
			out, err := c.ImportItemsUseCase().Execute(cmd.Context(), usecase.ImportItemsInput{
				Drafts: drafts,
				DryRun: opts.DryRun,
			})
			if out != nil {
				writeImported(cmd.OutOrStdout(), out.Items, opts.DryRun)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Validate and print the plan without creating items")

	return cmd
}

func writeImported(w io.Writer, items []usecase.ImportedItem, dryRun bool) {
	for _, item := range items {
		parent := ""
		if item.EpicID > 0 {
			parent = fmt.Sprintf(" (epic #%d)", item.EpicID)
		}
		if dryRun {
			_, _ = fmt.Fprintf(w, "Would create %s %q%s\n", item.Kind.Display(), item.Name, parent)
			continue
		}
		_, _ = fmt.Fprintf(w, "Created %s #%d %q%s\n", item.Kind.Display(), item.ID, item.Name, parent)
	}
	if dryRun {
		_, _ = fmt.Fprintf(w, "%d items would be created\n", len(items))
	}
}
