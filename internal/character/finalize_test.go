package character

import (
	"errors"
	"testing"
)

func spendAll(t *testing.T, s *Sheet) {
	t.Helper()
	if err := s.Allocate(map[Stat]int{Strength: 15, Dexterity: 15, Constitution: 15}); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
}

func TestFinalizeMissingNameWinsOverUnspent(t *testing.T) {
	s := NewSheet()
	s.SetName("")
	spendAll(t, s)

	_, err := s.Finalize()
	var missing MissingNameError
	if !errors.As(err, &missing) {
		t.Fatalf("err=%v, want MissingNameError", err)
	}

	// Blank with points unspent still reports the name first.
	s.Reset()
	s.SetName("   ")
	_, err = s.Finalize()
	if !errors.As(err, &missing) {
		t.Fatalf("err=%v, want MissingNameError", err)
	}
}

func TestFinalizeUnspentPoints(t *testing.T) {
	s := NewSheet()
	s.SetName("Ishtar")
	s.Increase(Wisdom)

	_, err := s.Finalize()
	var unspent UnspentPointsError
	if !errors.As(err, &unspent) {
		t.Fatalf("err=%v, want UnspentPointsError", err)
	}
	if unspent.Remaining != PointBudget-1 {
		t.Fatalf("remaining=%d, want %d", unspent.Remaining, PointBudget-1)
	}

	// Not stateful: fix and retry.
	s.Decrease(Wisdom)
	spendAll(t, s)
	if _, err := s.Finalize(); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestFinalizeSnapshot(t *testing.T) {
	s := NewSheet()
	s.SetName("  Enki ")
	s.SetDivineFervor(8)
	if err := s.Allocate(map[Stat]int{
		Strength:     15,
		Dexterity:    14,
		Constitution: 13,
		Intelligence: 12,
		Wisdom:       10,
		Charisma:     8,
	}); err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	c, err := s.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if c.Name != "Enki" {
		t.Fatalf("name=%q, want trimmed", c.Name)
	}
	if c.Strength != 15 || c.Dexterity != 14 || c.Constitution != 13 || c.Intelligence != 12 || c.Wisdom != 10 || c.Charisma != 8 {
		t.Fatalf("scores=%+v", c)
	}
	if c.DivineFervor != 8 || c.PointsSpent != PointBudget {
		t.Fatalf("fervor=%d spent=%d", c.DivineFervor, c.PointsSpent)
	}
	for _, st := range AllStats {
		if c.Score(st) != s.Value(st) {
			t.Fatalf("Score(%s)=%d, want %d", st, c.Score(st), s.Value(st))
		}
	}

	// Later edits to the sheet do not leak into the snapshot.
	s.Decrease(Strength)
	s.SetName("Other")
	if c.Strength != 15 || c.Name != "Enki" {
		t.Fatalf("snapshot changed: %+v", c)
	}
	l := c.Loyalty()
	l["marduk"] = 3
	if _, ok := c.Loyalty()["marduk"]; ok {
		t.Fatalf("loyalty map is shared with caller")
	}
}

func TestAllocateRejectsUnreachable(t *testing.T) {
	s := NewSheet()
	err := s.Allocate(map[Stat]int{Strength: 15, Dexterity: 15, Constitution: 15, Wisdom: 9})
	var alloc AllocationError
	if !errors.As(err, &alloc) {
		t.Fatalf("err=%v, want AllocationError", err)
	}
	if alloc.Stat != Wisdom || alloc.Reached != MinScore {
		t.Fatalf("alloc=%+v", alloc)
	}
	if s.PointsRemaining() < 0 {
		t.Fatalf("remaining=%d", s.PointsRemaining())
	}

	if err := s.Allocate(map[Stat]int{Charisma: 16}); !errors.As(err, &alloc) {
		t.Fatalf("err=%v, want AllocationError for out-of-range", err)
	}
	var unknown UnknownStatError
	if err := s.Allocate(map[Stat]int{"luck": 10}); !errors.As(err, &unknown) {
		t.Fatalf("err=%v, want UnknownStatError", err)
	}
}

func TestAllocateLowersBeforeRaising(t *testing.T) {
	s := NewSheet()
	spendAll(t, s)
	if err := s.Allocate(map[Stat]int{Strength: 8, Charisma: 15}); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if s.Value(Strength) != 8 || s.Value(Charisma) != 15 {
		t.Fatalf("str=%d cha=%d", s.Value(Strength), s.Value(Charisma))
	}
}
