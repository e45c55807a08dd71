package extract

import (
	_ "embed"
	"strings"

	"github.com/agext/levenshtein"
)

// monthNames maps lowercase month tokens to their canonical form. Applied
// before dictionary lookup so month abbreviations are never "corrected" into
// unrelated words.
var monthNames = map[string]string{
	"jan": "Jan", "feb": "Feb", "mar": "Mar", "apr": "Apr", "may": "May",
	"jun": "Jun", "jul": "Jul", "aug": "Aug", "sep": "Sep", "oct": "Oct",
	"nov": "Nov", "dec": "Dec",
	"january": "January", "february": "February", "march": "March",
	"april": "April", "june": "June", "july": "July", "august": "August",
	"september": "September", "october": "October", "november": "November",
	"december": "December",
}

//go:embed lexicon.txt
var lexiconData string

// Corrector repairs misspelled tokens against an embedded label lexicon,
// ordered most-frequent-first. Read-only after construction; safe to share
// across extractions.
type Corrector struct {
	rank  map[string]int
	words []string
}

func NewCorrector() *Corrector {
	lines := strings.Fields(lexiconData)
	c := &Corrector{
		rank:  make(map[string]int, len(lines)),
		words: make([]string, 0, len(lines)),
	}
	for _, w := range lines {
		if _, seen := c.rank[w]; seen {
			continue
		}
		c.rank[w] = len(c.words)
		c.words = append(c.words, w)
	}
	return c
}

// Correct tokenizes on whitespace and repairs each token best-effort: month
// tokens become their canonical form, known words pass through, unknown
// alphabetic words take the closest lexicon entry. Uncorrectable tokens
// degrade to the original. Never fails.
func (c *Corrector) Correct(text string) string {
	if text == "" {
		return text
	}
	tokens := strings.Fields(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, c.correctToken(tok))
	}
	return strings.Join(out, " ")
}

func (c *Corrector) correctToken(tok string) string {
	lower := strings.ToLower(tok)
	if canonical, ok := monthNames[lower]; ok {
		return canonical
	}
	if !isAlpha(lower) {
		// numbers, dates, mixed amount+unit tokens: leave alone
		return tok
	}
	if _, ok := c.rank[lower]; ok {
		return tok
	}
	if fixed, ok := c.correction(lower); ok {
		return fixed
	}
	return tok
}

// correction returns the lexicon word at minimum edit distance from w,
// breaking ties by lexicon frequency rank. Distance is capped at 1 for short
// words and 2 otherwise; no candidate within the cap means no correction.
func (c *Corrector) correction(w string) (string, bool) {
	maxDist := 2
	if len(w) < 5 {
		maxDist = 1
	}
	best := ""
	bestDist := maxDist + 1
	for _, cand := range c.words {
		if diff := len(cand) - len(w); diff > maxDist || diff < -maxDist {
			continue
		}
		d := levenshtein.Distance(w, cand, nil)
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
