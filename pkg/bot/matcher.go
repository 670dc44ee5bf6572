package bot

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CleanText lowercases the input, strips diacritics and punctuation, and
// collapses whitespace so keyword containment is stable across sloppy typing.
func CleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	words := strings.Fields(result)
	return strings.Join(words, " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// MatchesAny reports whether any keyword appears in the text. Matching is
// case-insensitive substring containment; the first hit wins.
func MatchesAny(text string, keywords []string) bool {
	cleaned := CleanText(text)
	for _, keyword := range keywords {
		if strings.Contains(cleaned, CleanText(keyword)) {
			return true
		}
	}
	return false
}
