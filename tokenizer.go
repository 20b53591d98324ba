package npchunk

import (
	"strings"
	"unicode"
)

// keepRune drops every rune that is neither a letter, a digit nor whitespace.
// Whitespace is Unicode whitespace, so a no-break space still splits words
func keepRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
		return r
	}
	return -1
}

// Normalize converts a raw sentence into its list of lowercase words.
// Characters that are neither letters, digits nor whitespace are removed,
// so "don't" becomes "dont". Tokens without any letter, like "1887", are
// dropped. An input without words gives an empty list
func Normalize(raw string) []string {
	text := strings.Map(keepRune, raw)
	tokens := []string{}
	for _, field := range strings.Fields(strings.ToLower(text)) {
		if strings.IndexFunc(field, unicode.IsLetter) >= 0 {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
