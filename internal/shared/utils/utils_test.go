package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	var w WhereBuilder
	assert.Equal(t, "", w.SQL())

	w.Add("artist_id = ?", "a")
	w.Add("status = ?", "PENDING")
	limit := w.Next(20)

	assert.Equal(t, " WHERE artist_id = $1 AND status = $2", w.SQL())
	assert.Equal(t, "$3", limit)
	assert.Equal(t, []any{"a", "PENDING", 20}, w.Args())
}

func TestWhereBuilder_RepeatedPlaceholder(t *testing.T) {
	var w WhereBuilder
	w.Add("role = ?", "CASUAL")
	w.Add("(username ILIKE ? OR display_name ILIKE ?)", "%ari%")

	assert.Equal(t, " WHERE role = $1 AND (username ILIKE $2 OR display_name ILIKE $2)", w.SQL())
	assert.Len(t, w.Args(), 2)
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Fantasy", "fantasy", "", "Dragons ", "  "})
	assert.Equal(t, []string{"fantasy", "dragons"}, got)
}

func TestParseFloatToDecimal(t *testing.T) {
	assert.Nil(t, ParseFloatToDecimal(nil))

	f := 50.25
	d := ParseFloatToDecimal(&f)
	assert.Equal(t, "50.25", d.String())
	assert.Equal(t, 50.25, *DecimalToFloat(d))
}
