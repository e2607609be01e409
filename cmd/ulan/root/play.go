package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"ulan/internal/character"
	"ulan/internal/config"
	"ulan/internal/tui"
	"ulan/internal/ui"
)

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the title screen and create a character",
		RunE:  runPlay(cfg, &asYAML),
	}

	addYAMLFlag(cmd, &asYAML)
	return cmd
}

// runPlay is shared by `ulan play` and the bare `ulan` command.
func runPlay(cfg *config.Config, asYAML *bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := tui.Run(cmd.Context(), tui.Options{
			Rand:      character.NewRand(cfg.Seed),
			LogFile:   cfg.LogFile,
			AltScreen: cfg.AltScreen,
			Input:     cmd.InOrStdin(),
			Output:    cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		if c == nil {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Farewell, mortal."))
			return nil
		}
		if !*asYAML {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, fmt.Sprintf("Welcome, %s!", c.Name)))
		}
		return printCharacter(cmd.OutOrStdout(), *c, *asYAML)
	}
}

func addYAMLFlag(cmd *cobra.Command, asYAML *bool) {
	cmd.Flags().BoolVar(asYAML, "yaml", false, "Print the finished character as YAML")
}
