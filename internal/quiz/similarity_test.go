package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{a: "galdd", b: "glad", want: 0.94},
		{a: "galdd", b: "sad", want: 0.688889},
		{a: "galdd", b: "lamp", want: 0.483333},
		{a: "galdd", b: "tree", want: 0},
		{a: "glad", b: "glad", want: 1},
		{a: "", b: "glad", want: 0},
		{a: "glads", b: "glad", want: 0.96},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-6)
			assert.InDelta(t, Similarity(tt.a, tt.b), Similarity(tt.b, tt.a), 1e-12, "symmetric")
		})
	}
}

func TestSimilarity_onlyEqualStringsAreExact(t *testing.T) {
	for _, pair := range [][2]string{
		{"glad", "glads"},
		{"abcd", "abdc"},
		{"happiness", "happinesss"},
	} {
		assert.Less(t, Similarity(pair[0], pair[1]), 1.0, pair)
	}
}
