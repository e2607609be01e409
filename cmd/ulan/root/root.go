package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ulan/internal/config"
	"ulan/internal/ui"
)

const Version = "0.1.0"

func newRootCmd() *cobra.Command {
	var cfg config.Config
	var asYAML bool

	cmd := &cobra.Command{
		Use:           "ulan",
		Short:         "Ulan - Realm of 1001 Gods",
		Long:          "Ulan is a terminal role-playing game. Start with `ulan` to create a character.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.RunE = runPlay(&cfg, &asYAML)
	addYAMLFlag(cmd, &asYAML)
	cmd.AddCommand(
		newPlayCmd(&cfg),
		newRollCmd(&cfg),
		newBuildCmd(),
		newCostsCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
