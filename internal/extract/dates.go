package extract

import (
	"regexp"
	"strings"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"
)

// DateCandidate is a parsed calendar date plus the substring it came from.
type DateCandidate struct {
	Time time.Time
	Text string
}

const monthAlt = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

// Five surface grammars for label dates, matched case-insensitively:
// YYYY-M-D, D-M-YY(YY), "D Mon YYYY", "Mon D, YYYY", and "MonYYYY" with no
// separator. Separators may be -, . or / (normalization folds / to -).
var reDate = regexp.MustCompile(`(?i)` +
	`\b(\d{4}[-./]\d{1,2}[-./]\d{1,2})\b` +
	`|\b(\d{1,2}[-./]\d{1,2}[-./]\d{2,4})\b` +
	`|\b(\d{1,2})\s+(` + monthAlt + `)\s+(\d{2,4})\b` +
	`|\b(` + monthAlt + `)\s+(\d{1,2}),?\s+(\d{2,4})\b` +
	`|\b(` + monthAlt + `)(\d{4})\b`)

var reDateComponent = regexp.MustCompile(`[-./,\s]+`)

// ExtractDates returns the plausible date candidates in text, in order of
// appearance. Unparsable or implausible matches are dropped silently.
func ExtractDates(text string, now time.Time) []DateCandidate {
	var out []DateCandidate
	for _, m := range reDate.FindAllStringSubmatch(text, -1) {
		groups := make([]string, 0, 3)
		for _, g := range m[1:] {
			if g != "" {
				groups = append(groups, g)
			}
		}
		dateStr, ok := assembleDate(groups)
		if !ok {
			continue
		}
		parsed, ok := parseNatural(dateStr, now)
		if !ok || !plausibleYear(parsed) {
			continue
		}
		if hasZeroComponent(m[0]) {
			continue
		}
		out = append(out, DateCandidate{Time: parsed, Text: m[0]})
	}
	return out
}

// assembleDate rebuilds a parseable date string from the non-empty capture
// groups of one grammar: one group is used as-is, two or three are joined
// with spaces, four numeric groups join the first three with hyphens.
func assembleDate(groups []string) (string, bool) {
	switch len(groups) {
	case 1:
		return groups[0], true
	case 2, 3:
		return strings.Join(groups, " "), true
	case 4:
		return groups[0] + "-" + groups[1] + "-" + groups[2], true
	default:
		return "", false
	}
}

// parseNatural hands a date fragment to the natural-language parser,
// preferring the first day of the month when the day is ambiguous.
func parseNatural(s string, now time.Time) (time.Time, bool) {
	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDayOfMonth: dateparser.First,
	}
	dt, err := dateparser.Parse(cfg, s)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, false
	}
	return dt.Time, true
}

func plausibleYear(t time.Time) bool {
	y := t.Year()
	return y >= 1900 && y <= 2030
}

// hasZeroComponent reports whether any day/month/year component of the
// matched text is the literal "00", an OCR artifact rather than a date part.
func hasZeroComponent(matched string) bool {
	for _, part := range reDateComponent.Split(matched, -1) {
		if part == "00" {
			return true
		}
	}
	return false
}
