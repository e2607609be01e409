package root

import (
	"errors"

	"github.com/spf13/cobra"

	"ulan/internal/character"
	"ulan/internal/config"
)

func newRollCmd(cfg *config.Config) *cobra.Command {
	var seed int64
	var name string
	var fervor int
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Randomly spend the point-buy budget",
		Long: `Randomly allocate all 27 attribute points.

Without --name the draft sheet is printed. With --name the sheet is
finalized and printed as a finished character.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asYAML && name == "" {
				return errors.New("--yaml requires --name")
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}
			s := character.NewSheet()
			s.SetDivineFervor(fervor)
			s.Randomize(character.NewRand(seed))

			if name == "" {
				printSheet(cmd.OutOrStdout(), s)
				return nil
			}
			s.SetName(name)
			c, err := s.Finalize()
			if err != nil {
				return err
			}
			return printCharacter(cmd.OutOrStdout(), c, asYAML)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default $ULAN_SEED, 0 = clock)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Character name; finalizes the sheet")
	cmd.Flags().IntVarP(&fervor, "fervor", "f", character.DefaultFervor, "Divine fervor (1-10)")
	addYAMLFlag(cmd, &asYAML)
	return cmd
}
