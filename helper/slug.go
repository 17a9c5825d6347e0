package helper

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining marks,
// leaving the plain base letters.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Slugify derives a URL slug from an article title: lower-case, diacritics
// removed, surrounding whitespace trimmed and internal whitespace runs
// collapsed to a single hyphen. Pure and deterministic; it does not enforce
// uniqueness, that happens at persistence time.
func Slugify(title string) string {
	lowered := strings.ToLower(title)

	ascii, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		ascii = lowered
	}

	return strings.Join(strings.Fields(ascii), "-")
}
