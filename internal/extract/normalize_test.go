package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "character confusions", input: "BefOre", want: "Bef0re"},
		{name: "currency dollar to S", input: "$ALE", want: "SALE"},
		{name: "slash folded to hyphen", input: "15/01/2023", want: "15-01-2023"},
		{name: "backslash and pipe folded", input: `15\01|2023`, want: "15-01-2023"},
		{name: "standalone l is a one", input: "l pack", want: "1 pack"},
		{name: "l inside word untouched", input: "label", want: "label"},
		{name: "decorative punctuation removed", input: "Net (Wt!) 500g", want: "Net Wt 500g"},
		{name: "underscore becomes space", input: "best_before", want: "best bef0re"},
		{name: "stray unicode stripped", input: "₹120", want: "120"},
		{name: "whitespace collapsed", input: "  a \t b\n\nc  ", want: "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeRewritesOInVocabulary(t *testing.T) {
	// the o->0 substitution is unconditional: month names and units that
	// carry an o leave normalization as digit forms and never come back,
	// so every downstream matcher must accept the 0 spellings
	tests := []struct {
		input string
		want  string
	}{
		{"Oct 2024", "0ct 2024"},
		{"Nov 2024", "N0v 2024"},
		{"12 oz", "12 0z"},
		{"best before 6 months", "best bef0re 6 m0nths"},
		{"expiry on 15 Jan 2025", "expiry 0n 15 Jan 2025"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"MFG Date: 15/01/2023",
		"Net Wt. 2kg  MRP Rs.120",
		"BEST BEF0RE 6 M0NTHS",
		"l _ O o I Z @ # $ % | ~",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}
