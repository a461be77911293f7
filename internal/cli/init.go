package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var opts struct {
		NoConfig bool
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a project for taskboard",
		Long: `Initialize a project for taskboard.

This command creates the .taskboard/ directory at the project root (the git
work tree root, or the current directory outside a repository) with:
- tasks.csv: empty item store
- config.toml: configuration template (skipped with --no-config)
- logs/: created on first use

Running init again keeps the existing store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitProjectUseCase().Execute(cmd.Context(), usecase.InitProjectInput{
				DataDir:  c.Config.DataDir,
				RootDir:  c.Config.RootDir,
				WithConf: !opts.NoConfig,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.AlreadyInitialized {
				_, _ = fmt.Fprintf(w, "taskboard already initialized in %s\n", out.DataDir)
			} else {
				_, _ = fmt.Fprintf(w, "Initialized taskboard in %s\n", out.DataDir)
			}
			if out.ConfigCreated {
				_, _ = fmt.Fprintln(w, "Created config.toml")
			}
			if out.GitignoreNeedsAdd {
				_, _ = fmt.Fprintln(w, "Hint: add .taskboard/ to .gitignore to keep it out of version control")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.NoConfig, "no-config", false, "Do not write a config template")

	return cmd
}
