package character

const (
	MinFervor     = 1
	MaxFervor     = 10
	DefaultFervor = 5
)

func (s *Sheet) DivineFervor() int { return s.fervor }

// SetDivineFervor sets fervor, clamped to [MinFervor, MaxFervor].
func (s *Sheet) SetDivineFervor(v int) {
	s.fervor = clampFervor(v)
}

func (s *Sheet) IncreaseFervor() bool {
	before := s.fervor
	s.SetDivineFervor(s.fervor + 1)
	return s.fervor != before
}

func (s *Sheet) DecreaseFervor() bool {
	before := s.fervor
	s.SetDivineFervor(s.fervor - 1)
	return s.fervor != before
}

func (s *Sheet) SetFervorMin() { s.fervor = MinFervor }

func (s *Sheet) SetFervorMax() { s.fervor = MaxFervor }

func clampFervor(v int) int {
	if v < MinFervor {
		return MinFervor
	}
	if v > MaxFervor {
		return MaxFervor
	}
	return v
}
