package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keywords = []string{"bool", "float32", "float64", "int32", "int64", "string", "time"}

func TestRank(t *testing.T) {
	ranked := Rank("strng", keywords)

	require.Len(t, ranked, len(keywords))
	assert.Equal(t, "string", ranked.Best().Name)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	assert.Nil(t, Rank("x", nil).Best())
}

func TestRankTieBreak(t *testing.T) {
	ranked := Rank("int", []string{"int64", "int32"})

	assert.Equal(t, "int32", ranked[0].Name)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"strng", "string", true},
		{"Float64", "float64", true},
		{"int_64", "int64", true},
		{"uuid", "", false},
	}

	for _, tt := range tests {
		got, ok := Suggest(tt.query, keywords)
		assert.Equal(t, tt.ok, ok, tt.query)
		assert.Equal(t, tt.want, got, tt.query)
	}
}

func TestHint(t *testing.T) {
	assert.Equal(t, ` (did you mean "string"?)`, Hint("strng", keywords))
	assert.Empty(t, Hint("uuid", keywords))
}
