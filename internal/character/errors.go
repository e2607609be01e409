package character

import "fmt"

// MissingNameError is returned by Finalize when the name is empty or blank.
type MissingNameError struct{}

func (MissingNameError) Error() string {
	return "character name is required"
}

// UnspentPointsError is returned by Finalize when the budget is not exactly spent.
// A negative Remaining means the sheet is overspent.
type UnspentPointsError struct {
	Remaining int
}

func (e UnspentPointsError) Error() string {
	if e.Remaining < 0 {
		return fmt.Sprintf("point budget overspent by %d", -e.Remaining)
	}
	return fmt.Sprintf("%d attribute points left to spend", e.Remaining)
}

// AllocationError reports a target score that could not be reached legally.
type AllocationError struct {
	Stat    Stat
	Target  int
	Reached int
}

func (e AllocationError) Error() string {
	if e.Target < MinScore || e.Target > MaxScore {
		return fmt.Sprintf("%s %d is out of range (%d-%d)", e.Stat, e.Target, MinScore, MaxScore)
	}
	return fmt.Sprintf("%s stopped at %d (wanted %d): not enough points", e.Stat, e.Reached, e.Target)
}

type UnknownStatError struct {
	Input string
}

func (e UnknownStatError) Error() string {
	return fmt.Sprintf("unknown stat %q (want one of str, dex, con, int, wis, cha)", e.Input)
}
