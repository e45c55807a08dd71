package extract

import (
	"regexp"
	"strings"
)

// substitutions is the ordered table of literal OCR-confusion fixes.
// Order matters: earlier replacements feed later ones, so keep this a slice.
var substitutions = [][2]string{
	{"O", "0"},
	{"o", "0"},
	{"I", "1"},
	{"Z", "2"},
	{"@", "a"},
	{"#", ""},
	{"$", "S"},
	{"%", ""},
	{"^", ""},
	{"&", ""},
	{"*", ""},
	{"(", ""},
	{")", ""},
	{"!", ""},
	{"?", ""},
	{"/", "-"}, // date separator or vertical noise
	{"\\", "-"},
	{"|", "-"},
	{"~", ""},
	{"{", ""},
	{"}", ""},
	{"[", ""},
	{"]", ""},
	{":", ""},
	{";", ""},
	{"'", ""},
	{"\"", ""},
	{"<", ""},
	{">", ""},
	{"+", ""},
	{"=", ""},
	{"_", " "},
}

var (
	reLoneL      = regexp.MustCompile(`\bl\b`)
	reStrayChars = regexp.MustCompile(`[^\w\s/.,\-]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw OCR text: applies the substitution table, folds a
// standalone "l" token to "1", strips anything outside the word/space/.,/-
// set, and collapses whitespace. Always returns a string, possibly empty.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}
	s := raw
	for _, sub := range substitutions {
		s = strings.ReplaceAll(s, sub[0], sub[1])
	}
	s = reLoneL.ReplaceAllString(s, "1")
	s = reStrayChars.ReplaceAllString(s, " ")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
