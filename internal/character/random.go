package character

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed generator. A zero seed draws one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Non-cryptographic PRNG; allocation only needs to look random.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Randomize resets every score to MinScore and spends the budget by picking
// stats uniformly at random and raising each pick when it is still affordable.
//
// The loop ends when the budget is gone, when every stat is at MaxScore, or
// when no stat can be raised with what is left. The last check keeps it finite
// even for budgets the cost table cannot spend exactly.
func (s *Sheet) Randomize(rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(0)
	}
	s.ResetScores()

	for s.PointsRemaining() > 0 && !s.allMaxed() {
		if !s.anyIncreasable() {
			return
		}
		stat := AllStats[rng.IntN(len(AllStats))]
		s.Increase(stat)
	}
}

func (s *Sheet) allMaxed() bool {
	for _, v := range s.scores {
		if v < MaxScore {
			return false
		}
	}
	return true
}

func (s *Sheet) anyIncreasable() bool {
	for _, st := range AllStats {
		if s.CanIncrease(st) {
			return true
		}
	}
	return false
}
