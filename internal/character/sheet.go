package character

import "strings"

// MaxNameLength is the longest name front-ends accept.
const MaxNameLength = 30

// Sheet is a character in creation. The zero value is not usable; call NewSheet.
//
// A Sheet is owned by a single creation flow and is not safe for concurrent use.
// Mutators never break the invariants: every score stays in [MinScore, MaxScore]
// and PointsRemaining never goes negative. Illegal steps are rejected and
// reported through the boolean result.
type Sheet struct {
	name    string
	scores  [6]int
	fervor  int
	loyalty map[string]int
}

func NewSheet() *Sheet {
	s := &Sheet{}
	s.Reset()
	return s
}

// Reset restores every field to its creation default.
func (s *Sheet) Reset() {
	s.name = ""
	s.ResetScores()
	s.fervor = DefaultFervor
	s.loyalty = map[string]int{}
}

// ResetScores puts every ability score back to MinScore, refunding the budget.
func (s *Sheet) ResetScores() {
	for i := range s.scores {
		s.scores[i] = MinScore
	}
}

func (s *Sheet) Name() string { return s.name }

func (s *Sheet) SetName(name string) { s.name = name }

// Value returns the current score of stat, or 0 for an unknown stat.
func (s *Sheet) Value(stat Stat) int {
	i := stat.index()
	if i < 0 {
		return 0
	}
	return s.scores[i]
}

// Scores returns a copy of all six scores keyed by stat.
func (s *Sheet) Scores() map[Stat]int {
	out := make(map[Stat]int, len(AllStats))
	for _, st := range AllStats {
		out[st] = s.scores[st.index()]
	}
	return out
}

func (s *Sheet) PointsSpent() int {
	total := 0
	for _, v := range s.scores {
		total += StatCost(v)
	}
	return total
}

func (s *Sheet) PointsRemaining() int {
	return PointBudget - s.PointsSpent()
}

func (s *Sheet) CanIncrease(stat Stat) bool {
	i := stat.index()
	if i < 0 {
		return false
	}
	cur := s.scores[i]
	if cur >= MaxScore {
		return false
	}
	return s.PointsRemaining() >= MarginalCost(cur)
}

// Increase raises stat by one if CanIncrease allows it and reports whether it did.
func (s *Sheet) Increase(stat Stat) bool {
	if !s.CanIncrease(stat) {
		return false
	}
	s.scores[stat.index()]++
	return true
}

func (s *Sheet) CanDecrease(stat Stat) bool {
	i := stat.index()
	if i < 0 {
		return false
	}
	return s.scores[i] > MinScore
}

// Decrease lowers stat by one if CanDecrease allows it and reports whether it did.
func (s *Sheet) Decrease(stat Stat) bool {
	if !s.CanDecrease(stat) {
		return false
	}
	s.scores[stat.index()]--
	return true
}

// Loyalty returns the standing with id. Nothing in character creation sets it.
func (s *Sheet) Loyalty(id string) (int, bool) {
	v, ok := s.loyalty[id]
	return v, ok
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}
