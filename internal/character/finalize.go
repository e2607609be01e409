package character

import "maps"

// Character is a finalized, read-only character produced by Sheet.Finalize.
type Character struct {
	Name         string `yaml:"name"`
	Strength     int    `yaml:"strength"`
	Dexterity    int    `yaml:"dexterity"`
	Constitution int    `yaml:"constitution"`
	Intelligence int    `yaml:"intelligence"`
	Wisdom       int    `yaml:"wisdom"`
	Charisma     int    `yaml:"charisma"`
	DivineFervor int    `yaml:"divine_fervor"`
	PointsSpent  int    `yaml:"points_spent"`

	loyalty map[string]int
}

// Score returns the finalized value of stat, or 0 for an unknown stat.
func (c Character) Score(stat Stat) int {
	switch stat {
	case Strength:
		return c.Strength
	case Dexterity:
		return c.Dexterity
	case Constitution:
		return c.Constitution
	case Intelligence:
		return c.Intelligence
	case Wisdom:
		return c.Wisdom
	case Charisma:
		return c.Charisma
	default:
		return 0
	}
}

// Loyalty returns a copy of the loyalty standings captured at finalization.
func (c Character) Loyalty() map[string]int {
	return maps.Clone(c.loyalty)
}

// Finalize validates the sheet and returns a snapshot of it.
// The name is checked before the budget, so a blank name always yields
// MissingNameError. The sheet stays editable after a failed attempt.
func (s *Sheet) Finalize() (Character, error) {
	name := normalizeName(s.name)
	if name == "" {
		return Character{}, MissingNameError{}
	}
	if rem := s.PointsRemaining(); rem != 0 {
		return Character{}, UnspentPointsError{Remaining: rem}
	}

	loyalty := maps.Clone(s.loyalty)
	if loyalty == nil {
		loyalty = map[string]int{}
	}
	return Character{
		Name:         name,
		Strength:     s.Value(Strength),
		Dexterity:    s.Value(Dexterity),
		Constitution: s.Value(Constitution),
		Intelligence: s.Value(Intelligence),
		Wisdom:       s.Value(Wisdom),
		Charisma:     s.Value(Charisma),
		DivineFervor: s.fervor,
		PointsSpent:  s.PointsSpent(),
		loyalty:      loyalty,
	}, nil
}

// Allocate moves each listed stat to its target score through Increase and
// Decrease only. Decreases run first so freed points can fund the increases.
// Stats are processed in sheet order; the first unreachable target is returned
// as an AllocationError and the sheet keeps whatever was applied before it.
func (s *Sheet) Allocate(targets map[Stat]int) error {
	for st := range targets {
		if !st.IsValid() {
			return UnknownStatError{Input: string(st)}
		}
	}
	for _, st := range AllStats {
		want, ok := targets[st]
		if !ok {
			continue
		}
		if want < MinScore || want > MaxScore {
			return AllocationError{Stat: st, Target: want, Reached: s.Value(st)}
		}
		for s.Value(st) > want {
			s.Decrease(st)
		}
	}
	for _, st := range AllStats {
		want, ok := targets[st]
		if !ok {
			continue
		}
		for s.Value(st) < want {
			if !s.Increase(st) {
				return AllocationError{Stat: st, Target: want, Reached: s.Value(st)}
			}
		}
	}
	return nil
}
