package model

// DivisionLevel is the competitive tier parsed from a free-text division
// name. The empty string means the division did not fit the expected
// schema (Major, A, B, C).
type DivisionLevel string

const (
	DivisionMajor        DivisionLevel = "Major"
	DivisionA            DivisionLevel = "A"
	DivisionB            DivisionLevel = "B"
	DivisionC            DivisionLevel = "C"
	DivisionUnclassified DivisionLevel = ""
)

// divisionRank orders tiers by competitive rank, Major first.
var divisionRank = map[DivisionLevel]int{
	DivisionMajor: 1,
	DivisionA:     2,
	DivisionB:     3,
	DivisionC:     4,
}

// Rank returns the sort position of the tier. Unclassified divisions sort
// after every real tier.
func (d DivisionLevel) Rank() int {
	if r, ok := divisionRank[d]; ok {
		return r
	}
	return len(divisionRank) + 1
}

// Classified reports whether the division matched one of the four tiers.
func (d DivisionLevel) Classified() bool {
	_, ok := divisionRank[d]
	return ok
}
