package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ulan/internal/character"
)

func newBuildCmd() *cobra.Command {
	var name string
	var sets []string
	var fervor int
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Allocate attributes non-interactively and finalize",
		Example: `  ulan build --name Enki --set str=15 --set dex=14 --set con=13 --set int=12 --set wis=10
  ulan build -n Ishtar -s cha=15 -s wis=15 -s dex=15 --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := parseTargets(sets)
			if err != nil {
				return err
			}

			s := character.NewSheet()
			s.SetName(name)
			s.SetDivineFervor(fervor)
			if err := s.Allocate(targets); err != nil {
				return err
			}
			c, err := s.Finalize()
			if err != nil {
				return err
			}
			return printCharacter(cmd.OutOrStdout(), c, asYAML)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Character name")
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "Target score as stat=value (repeatable)")
	cmd.Flags().IntVarP(&fervor, "fervor", "f", character.DefaultFervor, "Divine fervor (1-10)")
	addYAMLFlag(cmd, &asYAML)
	return cmd
}

func parseTargets(sets []string) (map[character.Stat]int, error) {
	targets := make(map[character.Stat]int, len(sets))
	for _, raw := range sets {
		key, val, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q (want stat=value)", raw)
		}
		stat, err := character.ParseStat(key)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil, errors.New("score for " + string(stat) + " must be an integer")
		}
		if _, dup := targets[stat]; dup {
			return nil, fmt.Errorf("%s set more than once", stat)
		}
		targets[stat] = n
	}
	return targets, nil
}
