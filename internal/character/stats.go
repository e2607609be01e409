package character

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Stat string

const (
	Strength     Stat = "strength"
	Dexterity    Stat = "dexterity"
	Constitution Stat = "constitution"
	Intelligence Stat = "intelligence"
	Wisdom       Stat = "wisdom"
	Charisma     Stat = "charisma"
)

// AllStats lists the six ability scores in sheet order.
var AllStats = []Stat{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

func (s Stat) IsValid() bool {
	return s.index() >= 0
}

func (s Stat) index() int {
	switch s {
	case Strength:
		return 0
	case Dexterity:
		return 1
	case Constitution:
		return 2
	case Intelligence:
		return 3
	case Wisdom:
		return 4
	case Charisma:
		return 5
	default:
		return -1
	}
}

// Abbrev returns the three-letter label used on the sheet (STR, DEX, ...).
func (s Stat) Abbrev() string {
	if !s.IsValid() {
		return "???"
	}
	return strings.ToUpper(string(s)[:3])
}

// Label returns the capitalized stat name.
func (s Stat) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s)[:1]) + string(s)[1:]
}

// ParseStat parses user input to a Stat.
// Accepts full names, three-letter abbreviations, and small typos.
func ParseStat(input string) (Stat, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return "", UnknownStatError{Input: input}
	}
	for _, st := range AllStats {
		if s == string(st) || s == string(st)[:3] {
			return st, nil
		}
	}
	if len(s) >= 3 {
		for _, st := range AllStats {
			if strings.HasPrefix(string(st), s) {
				return st, nil
			}
		}
	}

	type scored struct {
		stat Stat
		dist int
	}
	var near []scored
	for _, st := range AllStats {
		dist := levenshtein.ComputeDistance(s, string(st))
		if dist > typoLimit(len(st)) {
			continue
		}
		near = append(near, scored{stat: st, dist: dist})
	}
	if len(near) == 0 {
		return "", UnknownStatError{Input: input}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })
	if len(near) > 1 && near[0].dist == near[1].dist {
		return "", UnknownStatError{Input: input}
	}
	return near[0].stat, nil
}

func typoLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
