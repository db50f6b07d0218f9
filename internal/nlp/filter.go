package nlp

import (
	"strings"
	"unicode"
)

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Features keeps the alphabetic tokens and lower-cases them.
func Features(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsAlpha(tok) {
			out = append(out, strings.ToLower(tok))
		}
	}
	return out
}

// RemoveStopwords drops tokens found in stop.
func RemoveStopwords(tokens []string, stop Set) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !stop.Contains(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// WordLengths returns the rune length of every token.
func WordLengths(tokens []string) []int {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		out[i] = len([]rune(tok))
	}
	return out
}
