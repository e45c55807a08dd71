package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// reMRP matches an optional MRP marker, an optional currency marker, then a
// numeric literal with optional grouping commas / decimal point.
var reMRP = regexp.MustCompile(`(?i)\b(?:MRP\s*)?(?:R|Rs|₹|INR|rupees)?\s*([\d.,]+)\b`)

// FilterPrice scans entity-filtered text for currency-marked numeric
// literals and returns the maximum value that parses, or nil when none do.
// Unparsable matches are discarded without error.
func FilterPrice(text string) *float64 {
	var best *float64
	for _, m := range reMRP.FindAllStringSubmatch(text, -1) {
		cleaned := strings.NewReplacer(",", "", " ", "").Replace(m[1])
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		if best == nil || v > *best {
			b := v
			best = &b
		}
	}
	return best
}

// extractPrice runs the coarse entity pass over newline-flattened raw text,
// concatenates the entity surfaces and filters the result for a price.
// A failed entity pass degrades to no price.
func (e *Extractor) extractPrice(raw string) *float64 {
	flat := strings.ReplaceAll(raw, "\n", " ")
	ents, err := e.recognizer.Entities(flat)
	if err != nil {
		e.logger.Warn("extract.price.ner_failed", "error", err)
		return nil
	}
	// space-joined so adjacent numeric entities never fuse into one literal
	return FilterPrice(strings.Join(ents, " "))
}
