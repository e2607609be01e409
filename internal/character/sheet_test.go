package character

import (
	"math/rand/v2"
	"testing"
)

func TestNewSheetDefaults(t *testing.T) {
	s := NewSheet()
	for _, st := range AllStats {
		if got := s.Value(st); got != MinScore {
			t.Fatalf("%s=%d, want %d", st, got, MinScore)
		}
	}
	if got := s.DivineFervor(); got != DefaultFervor {
		t.Fatalf("fervor=%d, want %d", got, DefaultFervor)
	}
	if s.PointsSpent() != 0 || s.PointsRemaining() != PointBudget {
		t.Fatalf("spent=%d remaining=%d, want 0/%d", s.PointsSpent(), s.PointsRemaining(), PointBudget)
	}
	if _, ok := s.Loyalty("any"); ok {
		t.Fatalf("expected empty loyalty")
	}
}

func TestIncreaseStrengthToMax(t *testing.T) {
	s := NewSheet()
	for i := 0; i < 7; i++ {
		if !s.Increase(Strength) {
			t.Fatalf("increase #%d rejected", i+1)
		}
	}
	if got := s.Value(Strength); got != 15 {
		t.Fatalf("strength=%d, want 15", got)
	}
	if got := s.PointsSpent(); got != 9 {
		t.Fatalf("spent=%d, want 9", got)
	}
	if got := s.PointsRemaining(); got != 18 {
		t.Fatalf("remaining=%d, want 18", got)
	}

	if s.Increase(Strength) {
		t.Fatalf("eighth increase should be rejected")
	}
	if got := s.Value(Strength); got != 15 {
		t.Fatalf("strength after rejected increase=%d, want 15", got)
	}
}

func TestIncreaseRejectedWhenBudgetTooSmall(t *testing.T) {
	s := NewSheet()
	// 15/15/15 spends the whole budget.
	for _, st := range []Stat{Strength, Dexterity, Constitution} {
		for s.Increase(st) {
		}
	}
	if got := s.PointsRemaining(); got != 0 {
		t.Fatalf("remaining=%d, want 0", got)
	}
	if s.CanIncrease(Wisdom) {
		t.Fatalf("CanIncrease(wisdom) with empty budget")
	}
}

func TestMarginalCostNeedsTwoPointsAbove13(t *testing.T) {
	s := NewSheet()
	// 13,13,13,13,8,8 spends 20, leaving 7.
	for _, st := range []Stat{Strength, Dexterity, Constitution, Intelligence} {
		for s.Value(st) < 13 {
			s.Increase(st)
		}
	}
	for s.Value(Wisdom) < 13 {
		s.Increase(Wisdom)
	}
	if got := s.PointsRemaining(); got != 2 {
		t.Fatalf("remaining=%d, want 2", got)
	}
	s.Decrease(Wisdom)
	s.Increase(Charisma)
	if got := s.PointsRemaining(); got != 2 {
		t.Fatalf("remaining=%d, want 2", got)
	}
	s.Increase(Charisma)
	if got := s.PointsRemaining(); got != 1 {
		t.Fatalf("remaining=%d, want 1", got)
	}
	if s.CanIncrease(Strength) {
		t.Fatalf("13 -> 14 should need 2 points with 1 remaining")
	}
	if !s.CanIncrease(Wisdom) {
		t.Fatalf("12 -> 13 should fit in 1 remaining point")
	}
}

func TestDecreaseStopsAtMin(t *testing.T) {
	s := NewSheet()
	if s.CanDecrease(Charisma) {
		t.Fatalf("CanDecrease at %d", MinScore)
	}
	if s.Decrease(Charisma) {
		t.Fatalf("Decrease at min should be rejected")
	}
	if got := s.Value(Charisma); got != MinScore {
		t.Fatalf("charisma=%d, want %d", got, MinScore)
	}
	s.Increase(Charisma)
	if !s.Decrease(Charisma) {
		t.Fatalf("Decrease from 9 rejected")
	}
}

func TestUnknownStatIsNeverLegal(t *testing.T) {
	s := NewSheet()
	bogus := Stat("luck")
	if s.CanIncrease(bogus) || s.CanDecrease(bogus) || s.Increase(bogus) || s.Decrease(bogus) {
		t.Fatalf("unknown stat accepted")
	}
	if got := s.Value(bogus); got != 0 {
		t.Fatalf("Value(luck)=%d, want 0", got)
	}
}

func TestIncreaseSpendsExactMarginalCost(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	s := NewSheet()
	for i := 0; i < 2000; i++ {
		st := AllStats[rng.IntN(len(AllStats))]
		before := s.Value(st)
		remBefore := s.PointsRemaining()

		if rng.IntN(3) == 0 {
			can := s.CanDecrease(st)
			applied := s.Decrease(st)
			if can != applied {
				t.Fatalf("Decrease applied=%v, CanDecrease=%v", applied, can)
			}
			if applied && s.Value(st) != before-1 {
				t.Fatalf("%s=%d after decrease from %d", st, s.Value(st), before)
			}
		} else {
			can := s.CanIncrease(st)
			applied := s.Increase(st)
			if can != applied {
				t.Fatalf("Increase applied=%v, CanIncrease=%v", applied, can)
			}
			if applied {
				if s.Value(st) != before+1 {
					t.Fatalf("%s=%d after increase from %d", st, s.Value(st), before)
				}
				if got, want := remBefore-s.PointsRemaining(), MarginalCost(before); got != want {
					t.Fatalf("increase %s from %d spent %d, want %d", st, before, got, want)
				}
			} else if s.Value(st) != before || s.PointsRemaining() != remBefore {
				t.Fatalf("rejected increase changed the sheet")
			}
		}

		if s.PointsRemaining() < 0 {
			t.Fatalf("remaining=%d after step %d", s.PointsRemaining(), i)
		}
		for _, other := range AllStats {
			if v := s.Value(other); v < MinScore || v > MaxScore {
				t.Fatalf("%s=%d out of range", other, v)
			}
		}
	}
}

func TestFervorClamps(t *testing.T) {
	s := NewSheet()
	s.SetDivineFervor(42)
	if got := s.DivineFervor(); got != MaxFervor {
		t.Fatalf("fervor=%d, want %d", got, MaxFervor)
	}
	if s.IncreaseFervor() {
		t.Fatalf("IncreaseFervor at max reported a change")
	}
	s.SetDivineFervor(-3)
	if got := s.DivineFervor(); got != MinFervor {
		t.Fatalf("fervor=%d, want %d", got, MinFervor)
	}
	if s.DecreaseFervor() {
		t.Fatalf("DecreaseFervor at min reported a change")
	}
	if !s.IncreaseFervor() || s.DivineFervor() != 2 {
		t.Fatalf("fervor=%d, want 2", s.DivineFervor())
	}
	s.SetFervorMax()
	if s.DivineFervor() != MaxFervor {
		t.Fatalf("SetFervorMax: %d", s.DivineFervor())
	}
	s.SetFervorMin()
	if s.DivineFervor() != MinFervor {
		t.Fatalf("SetFervorMin: %d", s.DivineFervor())
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewSheet()
	s.SetName("Ashur")
	s.Increase(Wisdom)
	s.SetFervorMax()
	s.Reset()
	if s.Name() != "" || s.Value(Wisdom) != MinScore || s.DivineFervor() != DefaultFervor {
		t.Fatalf("reset left name=%q wis=%d fervor=%d", s.Name(), s.Value(Wisdom), s.DivineFervor())
	}
}
