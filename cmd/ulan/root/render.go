package root

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"ulan/internal/character"
	"ulan/internal/ui"
)

func printSheet(w io.Writer, s *character.Sheet) {
	fmt.Fprintln(w, ui.Heading(ui.IconDice, "Draft Sheet"))
	for _, st := range character.AllStats {
		fmt.Fprintf(w, "- %s %-13s %2d\n", ui.Key.Render(st.Abbrev()), st.Label(), s.Value(st))
	}
	fmt.Fprintln(w, ui.LabelValue("Divine Fervor", s.DivineFervor()))
	fmt.Fprintf(w, "%s %s\n", ui.Key.Render("Points remaining:"), ui.Budget(s.PointsRemaining()))
}

func printCharacter(w io.Writer, c character.Character, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintln(w, ui.Heading(ui.IconTemple, c.Name))
	for _, st := range character.AllStats {
		fmt.Fprintf(w, "- %s %-13s %2d\n", ui.Key.Render(st.Abbrev()), st.Label(), c.Score(st))
	}
	fmt.Fprintln(w, ui.LabelValue("Divine Fervor", c.DivineFervor))
	fmt.Fprintln(w, ui.LabelValue("Points spent", fmt.Sprintf("%d/%d", c.PointsSpent, character.PointBudget)))
	return nil
}
