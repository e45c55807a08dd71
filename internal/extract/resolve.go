package extract

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ShelfLife is the remaining time until expiry: either the "expired" sentinel
// or a years/months/days triple under the fixed 365/30 decomposition.
type ShelfLife struct {
	Expired bool
	Years   int
	Months  int
	Days    int
}

func (s ShelfLife) String() string {
	if s.Expired {
		return "expired"
	}
	return fmt.Sprintf("%dyears%dmonths%ddays", s.Years, s.Months, s.Days)
}

// Resolution assigns roles to the extracted dates and carries the computed
// shelf life. Absent fields are nil.
type Resolution struct {
	MfgDate    *time.Time
	ExpiryDate *time.Time
	ShelfLife  *ShelfLife
}

// Resolve runs after Normalize, which has already rewritten every o/O to 0,
// so the anchor patterns accept both glyphs: "best bef0re", "expiry 0n" and
// "6 m0nths" must match as well as their plain spellings.
var (
	reBestBefore   = regexp.MustCompile(`(?i)best bef[o0]re\s+(\d+\s*\w+)`)
	reDuration     = regexp.MustCompile(`(?i)^(\d+)\s*(years?|m[o0]nths?|weeks?|days?)`)
	expiryPhrases  = []string{`expiry date`, `expiry [o0]n`, `best bef[o0]re`}
	rePhraseSuffix = map[string]*regexp.Regexp{}
)

func init() {
	for _, p := range expiryPhrases {
		rePhraseSuffix[p] = regexp.MustCompile(`(?i)` + p + `\s+([\dA-Za-z\s/.,-]+)`)
	}
}

// resolver inspects the remaining candidates and the text; it either decides
// the date roles (returning true) or passes to the next strategy.
type resolver func(dates []DateCandidate, text string, now time.Time, out *Resolution) bool

var resolvers = []resolver{
	resolveBestBeforeDuration,
	resolveAnchoredExpiry,
	resolvePositional,
}

// Resolve decides which candidate is the manufacturing date and which the
// expiry date, then computes remaining shelf life against now. Strategies are
// tried in priority order; the first that decides wins.
func Resolve(dates []DateCandidate, text string, now time.Time) Resolution {
	var res Resolution
	for _, r := range resolvers {
		if r(dates, text, now, &res) {
			break
		}
	}
	if res.ExpiryDate != nil {
		sl := shelfLife(*res.ExpiryDate, now)
		res.ShelfLife = &sl
	}
	return res
}

// resolveBestBeforeDuration handles "best before N <unit>" phrasing: the
// earliest candidate is the manufacturing date and expiry is derived from it
// by calendar-correct duration addition.
func resolveBestBeforeDuration(dates []DateCandidate, text string, _ time.Time, out *Resolution) bool {
	m := reBestBefore.FindStringSubmatch(text)
	if m == nil || len(dates) == 0 {
		return false
	}
	mfg := dates[0].Time
	for _, d := range dates[1:] {
		if d.Time.Before(mfg) {
			mfg = d.Time
		}
	}
	out.MfgDate = &mfg
	if exp, ok := addDuration(mfg, strings.TrimSpace(m[1])); ok {
		out.ExpiryDate = &exp
	}
	return true
}

// resolveAnchoredExpiry scans for expiry phrases followed by a date fragment.
// The first phrase whose fragment parses to a plausible date wins; later
// phrases are not tried. The manufacturing date stays unassigned.
func resolveAnchoredExpiry(dates []DateCandidate, text string, now time.Time, out *Resolution) bool {
	for _, phrase := range expiryPhrases {
		m := rePhraseSuffix[phrase].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		parsed, ok := parseNatural(strings.TrimSpace(m[1]), now)
		if !ok || !plausibleYear(parsed) {
			continue
		}
		out.ExpiryDate = &parsed
		return true
	}
	return false
}

// resolvePositional falls back to appearance order: first candidate is the
// manufacturing date, second (when present) the expiry date.
func resolvePositional(dates []DateCandidate, _ string, _ time.Time, out *Resolution) bool {
	switch {
	case len(dates) >= 2:
		out.MfgDate = &dates[0].Time
		out.ExpiryDate = &dates[1].Time
	case len(dates) == 1:
		out.MfgDate = &dates[0].Time
	}
	return true
}

// addDuration applies "<n> <unit>" to a date via proper calendar offsets.
func addDuration(t time.Time, duration string) (time.Time, bool) {
	m := reDuration.FindStringSubmatch(duration)
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	unit := strings.ReplaceAll(strings.ToLower(m[2]), "0", "o")
	switch {
	case strings.HasPrefix(unit, "year"):
		return t.AddDate(n, 0, 0), true
	case strings.HasPrefix(unit, "month"):
		return t.AddDate(0, n, 0), true
	case strings.HasPrefix(unit, "week"):
		return t.AddDate(0, 0, 7*n), true
	case strings.HasPrefix(unit, "day"):
		return t.AddDate(0, 0, n), true
	}
	return time.Time{}, false
}

// shelfLife decomposes the day difference between expiry and now using the
// fixed approximation: full 365-day years, then 30-day months. Negative
// differences collapse to the expired sentinel.
func shelfLife(expiry, now time.Time) ShelfLife {
	totalDays := daysBetween(now, expiry)
	if totalDays < 0 {
		return ShelfLife{Expired: true}
	}
	years := totalDays / 365
	remaining := totalDays % 365
	return ShelfLife{
		Years:  years,
		Months: remaining / 30,
		Days:   remaining % 30,
	}
}

// ExpiryStatus reports "Expired" when the decomposed triple is all zero,
// else "Not Expired". Deliberately evaluated on the triple rather than the
// raw day difference, for compatibility with downstream consumers.
func (s ShelfLife) ExpiryStatus() string {
	if s.Expired {
		return "Expired"
	}
	if s.Years == 0 && s.Months == 0 && s.Days == 0 {
		return "Expired"
	}
	return "Not Expired"
}

// daysBetween floors the difference to whole days, so a partial day of
// remaining life counts as zero and an hour past expiry counts as -1.
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
