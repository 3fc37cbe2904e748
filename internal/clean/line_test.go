package clean

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icmixed/league-cli/internal/model"
)

func TestValidateLineValid(t *testing.T) {
	for i := 1; i <= 6; i++ {
		got := ValidateLine(strconv.Itoa(i))
		assert.Equal(t, model.Line(i), got)
	}
	assert.Equal(t, model.Line(3), ValidateLine(" 3 "))
}

func TestValidateLineInvalid(t *testing.T) {
	for _, raw := range []string{"0", "7", "-1", "Mixed Doubles", "", "3.5", "100"} {
		assert.Equal(t, model.LineInvalid, ValidateLine(raw), "line %q", raw)
	}
}

func TestValidateLines(t *testing.T) {
	rows := []model.Match{{LineRaw: "1"}, {LineRaw: "7"}, {LineRaw: "x"}}
	out := ValidateLines(rows)

	assert.Equal(t, model.Line(1), out[0].LineValidated)
	assert.Equal(t, model.LineInvalid, out[1].LineValidated)
	assert.Equal(t, model.LineInvalid, out[2].LineValidated)
}
