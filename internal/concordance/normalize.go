package concordance

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeLine trims and lowercases line, deletes apostrophes so that
// contractions stay one word, and turns every other ASCII punctuation
// character into a space.
func NormalizeLine(line string) string {
	line = cases.Lower(language.Und).String(strings.TrimSpace(line))

	return strings.Map(func(r rune) rune {
		switch {
		case r == '\'':
			return -1
		case isPunct(r):
			return ' '
		default:
			return r
		}
	}, line)
}

// isPunct matches the 32 ASCII punctuation characters.
func isPunct(r rune) bool {
	return r < 0x80 && strings.ContainsRune(`!"#$%&'()*+,-./:;<=>?@[\]^_`+"`"+`{|}~`, r)
}

// isNumber reports whether word reads as a floating point number,
// including forms like "1e5", "inf" and "nan".
func isNumber(word string) bool {
	_, err := strconv.ParseFloat(word, 64)

	// Overflowing literals still read as ±Inf.
	return err == nil || errors.Is(err, strconv.ErrRange)
}
