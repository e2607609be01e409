package character

const (
	// PointBudget is the number of points a new character may spend.
	PointBudget = 27

	MinScore = 8
	MaxScore = 15
)

// statCosts is the total cost of reaching each score from MinScore.
// The steps to 14 and 15 cost 2 points each.
var statCosts = [...]int{
	8:  0,
	9:  1,
	10: 2,
	11: 3,
	12: 4,
	13: 5,
	14: 7,
	15: 9,
}

// StatCost returns the point-buy cost of a score.
// Values below MinScore cost nothing; values above MaxScore are clamped.
func StatCost(value int) int {
	if value < MinScore {
		return 0
	}
	if value > MaxScore {
		value = MaxScore
	}
	return statCosts[value]
}

// MarginalCost is the price of raising a score from value to value+1.
func MarginalCost(value int) int {
	return StatCost(value+1) - StatCost(value)
}

type CostRow struct {
	Value    int
	Cost     int
	Marginal int // cost of the step into Value; 0 for MinScore
}

// CostTable returns one row per legal score, MinScore through MaxScore.
func CostTable() []CostRow {
	rows := make([]CostRow, 0, MaxScore-MinScore+1)
	for v := MinScore; v <= MaxScore; v++ {
		row := CostRow{Value: v, Cost: StatCost(v)}
		if v > MinScore {
			row.Marginal = MarginalCost(v - 1)
		}
		rows = append(rows, row)
	}
	return rows
}
