package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Init   bool
		Global bool
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create configuration",
		Long: `Display the effective configuration after merging all sources.

Configuration is read from the global file (~/.config/taskboard/config.toml)
and then from the project file (.taskboard/config.toml), which wins.

With --init a configuration template is written to the project file, or to
the global file with --global.

Examples:
  taskboard config
  taskboard config --init
  taskboard config --init --global`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Global && !opts.Init {
				return fmt.Errorf("--global can only be used with --init")
			}

			if opts.Init {
				out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{Global: opts.Global})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
				return nil
			}

			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			writeConfigSource(w, out.GlobalConfig)
			writeConfigSource(w, out.ProjectConfig)
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}

	cmd.Flags().BoolVar(&opts.Init, "init", false, "Generate a configuration file template")
	cmd.Flags().BoolVar(&opts.Global, "global", false, "Target the global configuration file")

	return cmd
}

func writeConfigSource(w io.Writer, info domain.ConfigInfo) {
	switch {
	case info.Path == "":
		return
	case info.Exists:
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
	default:
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
	}
}

// formatEffectiveConfig writes the config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
