package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// openStore loads the project store into the container.
func openStore(c *app.Container) error {
	if c == nil {
		return domain.ErrNotInitialized
	}
	_, err := c.OpenStore()
	return err
}

// newNewCommand creates the new command.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name        string
		Description string
		Status      string
		Start       string
		Duration    string
		EpicID      int
		AsEpic      bool
	}

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a task, subtask or epic",
		Long: `Create a new item.

Without --epic or --as-epic a plain task is created. A scheduled item
(--start) is rejected when its time frame overlaps another scheduled
task or subtask.

Examples:
  # Create a plain task
  taskboard new --name "Write notes"

  # Create a scheduled task
  taskboard new --name "Review" --start 2024-03-01T09:00 --duration 30m

  # Create an epic, then a subtask under it
  taskboard new --name "Release" --as-epic
  taskboard new --name "Build" --epic 1 --duration PT1H`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Name == "" && len(args) == 1 {
				opts.Name = args[0]
			}
			if opts.Name == "" {
				return fmt.Errorf("required flag(s) \"name\" not set")
			}
			if opts.AsEpic && opts.EpicID > 0 {
				return errors.New("--as-epic and --epic cannot be used together")
			}

			input := usecase.NewItemInput{
				Name:        opts.Name,
				Description: opts.Description,
				Kind:        domain.KindTask,
				EpicID:      opts.EpicID,
			}
			switch {
			case opts.AsEpic:
				input.Kind = domain.KindEpic
			case opts.EpicID > 0:
				input.Kind = domain.KindSubTask
			}
			if opts.Status != "" {
				st, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				input.Status = st
			}
			if opts.Start != "" {
				start, err := domain.ParseDateTime(opts.Start)
				if err != nil {
					return err
				}
				input.Start = start
			}
			d, err := domain.ParseFlexiblePeriod(opts.Duration)
			if err != nil {
				return err
			}
			input.Duration = d

			if err := openStore(c); err != nil {
				return err
			}
			out, err := c.NewItemUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s #%d\n", out.Kind.Display(), out.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Item name (required)")
	cmd.Flags().StringVar(&opts.Description, "desc", "", "Item description")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Initial status: new, in_progress or done")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Start time (2006-01-02T15:04)")
	cmd.Flags().StringVar(&opts.Duration, "duration", "", "Duration (30m, 1h30m or PT1H30M)")
	cmd.Flags().IntVar(&opts.EpicID, "epic", 0, "Parent epic ID (creates a subtask)")
	cmd.Flags().BoolVar(&opts.AsEpic, "as-epic", false, "Create an epic")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Kind        string
		Prioritized bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items",
		Long: `List items in ascending ID order.

With --prioritized only scheduled tasks and subtasks are listed, ordered
by start time. Listing does not change the view history.

Examples:
  taskboard list
  taskboard list --kind epic
  taskboard list --prioritized`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListItemsInput{Prioritized: opts.Prioritized}
			if opts.Kind != "" {
				kind, err := domain.ParseKindName(opts.Kind)
				if err != nil {
					return err
				}
				input.Kind = kind
			}

			if err := openStore(c); err != nil {
				return err
			}
			out, err := c.ListItemsUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if len(out.Items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No items found.")
				return nil
			}
			newPrinter(c.AppConfig).table(cmd.OutOrStdout(), out.Items)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", "", "Filter by kind: task, sub or epic")
	cmd.Flags().BoolVarP(&opts.Prioritized, "prioritized", "p", false, "Scheduled items by start time")

	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		JSON bool
	}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display item details",
		Long: `Display an item. Epics also list their subtasks.

Showing an item records it in the view history.

Examples:
  taskboard show 3
  taskboard show 3 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			if err := openStore(c); err != nil {
				return err
			}
			out, err := c.ShowItemUseCase().Execute(cmd.Context(), usecase.ShowItemInput{ID: id})
			if err != nil {
				return err
			}

			if opts.JSON {
				type jsonItem struct {
					Start       *time.Time    `json:"start,omitempty"`
					Name        string        `json:"name"`
					Description string        `json:"description"`
					Kind        string        `json:"kind"`
					Status      domain.Status `json:"status"`
					SubTasks    []int         `json:"subtasks,omitempty"`
					Duration    string        `json:"duration"`
					ID          int           `json:"id"`
					EpicID      int           `json:"epic,omitempty"`
				}
				item := out.Item.Item
				ji := jsonItem{
					ID:          item.ItemID(),
					Kind:        item.Kind().Display(),
					Name:        item.Title(),
					Description: item.Summary(),
					Status:      out.Item.Status,
					Duration:    domain.FormatPeriod(item.ScheduledDuration()),
					EpicID:      out.Item.EpicID,
				}
				if start := item.ScheduledStart(); !domain.IsUnscheduled(start) {
					ji.Start = &start
				}
				for _, sub := range out.SubTasks {
					ji.SubTasks = append(ji.SubTasks, sub.Item.ItemID())
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ji)
			}

			newPrinter(c.AppConfig).details(cmd.OutOrStdout(), out.Item, out.SubTasks)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name        string
		Description string
		Status      string
		Start       string
		Duration    string
		EpicID      int
		Unschedule  bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an item",
		Long: `Change fields of an existing item. Only the given flags are applied.

Epics accept --name and --desc only; their status and time frame are
derived from their subtasks.

Examples:
  taskboard edit 3 --status in_progress
  taskboard edit 3 --start 2024-03-01T10:00 --duration 45m
  taskboard edit 4 --epic 7
  taskboard edit 5 --unschedule`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditItemInput{ID: id}
			flags := cmd.Flags()
			if flags.Changed("name") {
				input.Name = &opts.Name
			}
			if flags.Changed("desc") {
				input.Description = &opts.Description
			}
			if flags.Changed("status") {
				st, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				input.Status = &st
			}
			if flags.Changed("start") && opts.Unschedule {
				return errors.New("--start and --unschedule cannot be used together")
			}
			if flags.Changed("start") {
				start, err := domain.ParseDateTime(opts.Start)
				if err != nil {
					return err
				}
				input.Start = &start
			}
			if opts.Unschedule {
				start := domain.UnscheduledStart
				var zero time.Duration
				input.Start = &start
				input.Duration = &zero
			}
			if flags.Changed("duration") {
				d, err := domain.ParseFlexiblePeriod(opts.Duration)
				if err != nil {
					return err
				}
				input.Duration = &d
			}
			if flags.Changed("epic") {
				input.EpicID = &opts.EpicID
			}
			if input == (usecase.EditItemInput{ID: id}) {
				return errors.New("nothing to edit: pass at least one flag")
			}

			if err := openStore(c); err != nil {
				return err
			}
			out, err := c.EditItemUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s #%d\n", out.Item.Item.Kind().Display(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New name")
	cmd.Flags().StringVar(&opts.Description, "desc", "", "New description")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status: new, in_progress or done")
	cmd.Flags().StringVar(&opts.Start, "start", "", "New start time (2006-01-02T15:04)")
	cmd.Flags().StringVar(&opts.Duration, "duration", "", "New duration (30m, 1h30m or PT1H30M)")
	cmd.Flags().IntVar(&opts.EpicID, "epic", 0, "Move a subtask to another epic")
	cmd.Flags().BoolVar(&opts.Unschedule, "unschedule", false, "Clear the time frame")

	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	var opts struct {
		All string
	}

	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete items",
		Long: `Delete an item, or every item of a kind with --all.

Deleting an epic also deletes its subtasks.

Examples:
  taskboard rm 3
  taskboard rm --all subs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input usecase.DeleteItemInput
			switch {
			case opts.All != "" && len(args) > 0:
				return errors.New("an ID and --all cannot be used together")
			case opts.All != "":
				kind, err := domain.ParseKindName(opts.All)
				if err != nil {
					return err
				}
				input.All = kind
			case len(args) == 1:
				id, err := parseItemID(args[0])
				if err != nil {
					return err
				}
				input.ID = id
			default:
				return errors.New("item ID or --all is required")
			}

			if err := openStore(c); err != nil {
				return err
			}
			out, err := c.DeleteItemUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if input.ID > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d (%d items)\n", input.ID, out.Deleted)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d items\n", out.Deleted)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.All, "all", "", "Delete every item of a kind: tasks, subs or epics")

	return cmd
}

// newSubsCommand creates the subs command.
func newSubsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "subs <epic-id>",
		Short: "List the subtasks of an epic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			if err := openStore(c); err != nil {
				return err
			}
			out, err := c.ListSubTasksUseCase().Execute(cmd.Context(), usecase.ListSubTasksInput{EpicID: id})
			if err != nil {
				return err
			}

			p := newPrinter(c.AppConfig)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Epic #%d %s [%s]\n", id, out.Epic.Item.Title(), p.status(out.Epic.Status))
			if len(out.SubTasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No subtasks.")
				return nil
			}
			p.table(cmd.OutOrStdout(), out.SubTasks)
			return nil
		},
	}
}

// newClearSubsCommand creates the clear-subs command.
func newClearSubsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-subs <epic-id>",
		Short: "Delete every subtask of an epic",
		Long: `Delete every subtask of an epic. The epic itself is kept and its
time frame is reset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			if err := openStore(c); err != nil {
				return err
			}
			out, err := c.ClearSubTasksUseCase().Execute(cmd.Context(), usecase.ClearSubTasksInput{EpicID: id})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d subtasks from epic #%d\n", out.Removed, id)
			return nil
		},
	}
}

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Limit int
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently viewed items",
		Long:  `List the items shown with 'taskboard show', most recent first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := openStore(c); err != nil {
				return err
			}
			out, err := c.ShowHistoryUseCase().Execute(cmd.Context(), usecase.ShowHistoryInput{Limit: opts.Limit})
			if err != nil {
				return err
			}

			if len(out.Items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History is empty.")
				return nil
			}
			newPrinter(c.AppConfig).table(cmd.OutOrStdout(), out.Items)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "lines", "n", 0, "Show at most n entries")

	return cmd
}
