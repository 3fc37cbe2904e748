package model

import "strconv"

// Line is a validated court slot within a team match. Zero means the raw
// value was missing, non-numeric, or outside 1-6.
type Line int

// LineInvalid marks a line that failed validation.
const LineInvalid Line = 0

// lineNames maps each slot to its competitive category.
var lineNames = map[Line]string{
	1: "Ladies",
	2: "Mixed 1",
	3: "Mixed 2",
	4: "Mens",
	5: "Open 1",
	6: "Open 2",
}

// Valid reports whether the line is in the fixed 1-6 range.
func (l Line) Valid() bool {
	return l >= 1 && l <= 6
}

// Name returns the category name for the line, or "" outside the fixed
// mapping. A missing name never blocks ID assignment.
func (l Line) Name() string {
	return lineNames[l]
}

// MarshalText writes the line number, or empty for an invalid line.
func (l Line) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, nil
	}
	return []byte(strconv.Itoa(int(l))), nil
}

// UnmarshalText reads a line number; anything non-numeric or out of range
// comes back invalid rather than as an error.
func (l *Line) UnmarshalText(text []byte) error {
	n, err := strconv.Atoi(string(text))
	if err != nil || n < 1 || n > 6 {
		*l = LineInvalid
		return nil
	}
	*l = Line(n)
	return nil
}
