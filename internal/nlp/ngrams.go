package nlp

import (
	"strconv"
	"strings"

	porterstemmer "github.com/reiver/go-porterstemmer"
)

// NGrams returns every run of n consecutive tokens.
func NGrams(tokens []string, n int) [][]string {
	if n < 1 || len(tokens) < n {
		return nil
	}
	out := make([][]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		out = append(out, tokens[i:i+n])
	}
	return out
}

// Bigrams returns consecutive token pairs joined with a space, ready for counting.
func Bigrams(tokens []string) []string {
	grams := NGrams(tokens, 2)
	out := make([]string, len(grams))
	for i, g := range grams {
		out[i] = strings.Join(g, " ")
	}
	return out
}

// LengthDist counts token lengths, keyed by the decimal length.
func LengthDist(tokens []string) *FreqDist {
	fd := NewFreqDist()
	for _, l := range WordLengths(tokens) {
		fd.Add(strconv.Itoa(l))
	}
	return fd
}

// Stem returns the Porter stem of word, lower-cased.
func Stem(word string) string {
	return porterstemmer.StemString(strings.ToLower(word))
}

// Stems stems every token.
func Stems(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = Stem(tok)
	}
	return out
}
