package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var digitRun = regexp.MustCompile(`\d+`)

// Normalize folds compatibility characters (full-width digits, ligatures),
// lower-cases and collapses whitespace so rules can match on plain substrings.
func Normalize(text string) string {
	folded, _, err := transform.String(norm.NFKC, text)
	if err != nil {
		folded = text
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// FirstNumber returns the first run of ASCII digits in text.
func FirstNumber(text string) (string, bool) {
	n := digitRun.FindString(text)
	return n, n != ""
}

// TrimTrailingPunct strips trailing question marks, dots and exclamation
// marks, then surrounding whitespace.
func TrimTrailingPunct(text string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(text), "?.!"))
}

// After returns the text following prefix, or false when text does not start
// with it.
func After(text, prefix string) (string, bool) {
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	return text[len(prefix):], true
}
