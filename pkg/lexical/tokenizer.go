package lexical

import (
	"strings"
	"unicode"
)

// TokenSet is a set of normalized tokens extracted from a text.
type TokenSet map[string]struct{}

// Tokenize lowercases the text and splits it on any rune that is neither
// a letter nor a digit. FAQ entries are tokenized once at load time with
// this same function so both sides of a comparison are comparable.
func Tokenize(text string) TokenSet {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	set := make(TokenSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether the token is in the set.
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}
