// Package textnorm folds free-form place names into comparable keys.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips diacritics, upper-cases and collapses whitespace,
// so "São  Paulo" and "SAO PAULO" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToUpper(out)), " ")
}

// Equal reports whether a and b fold to the same key.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Contains reports whether the folded haystack contains the folded needle.
// An empty needle never matches.
func Contains(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Fold(haystack), n)
}

// SplitRegion separates a trailing region code from a place written as
// "City - UF", "City/UF" or "City, UF". The region is returned folded;
// places without a recognizable suffix come back unchanged with an empty region.
func SplitRegion(place string) (city, region string) {
	for _, sep := range []string{" - ", "/", ","} {
		i := strings.LastIndex(place, sep)
		if i <= 0 {
			continue
		}
		tail := Fold(place[i+len(sep):])
		if len(tail) == 2 && isLetters(tail) {
			return strings.TrimSpace(place[:i]), tail
		}
	}
	return strings.TrimSpace(place), ""
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
