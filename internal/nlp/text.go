package nlp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCommonContexts is returned by CommonContexts when the words share no context.
var ErrNoCommonContexts = errors.New("no common contexts were found")

// WordsNotFoundError is returned by CommonContexts for words absent from the text.
type WordsNotFoundError struct {
	Words []string
}

func (e *WordsNotFoundError) Error() string {
	return "the following word(s) were not found: " + strings.Join(e.Words, " ")
}

const (
	contextStart = "*START*"
	contextEnd   = "*END*"
)

// Text wraps a token sequence for corpus-style exploration.
type Text struct {
	tokens []string
}

// NewText wraps tokens. The slice is not copied.
func NewText(tokens []string) *Text {
	return &Text{tokens: tokens}
}

// Tokens returns the underlying tokens.
func (t *Text) Tokens() []string { return t.tokens }

// Len returns the number of tokens.
func (t *Text) Len() int { return len(t.tokens) }

// Count returns the exact, case-sensitive number of occurrences of word.
func (t *Text) Count(word string) int {
	n := 0
	for _, tok := range t.tokens {
		if tok == word {
			n++
		}
	}
	return n
}

// Vocab returns the frequency distribution of the tokens.
func (t *Text) Vocab() *FreqDist {
	return NewFreqDist(t.tokens...)
}

// ConcordanceLine is one keyword-in-context hit.
type ConcordanceLine struct {
	Offset int
	Left   string
	Query  string
	Right  string
	Line   string
}

// Concordance finds case-insensitive occurrences of word and renders each
// with surrounding context in a line of about width characters. It returns
// at most lines hits (all when lines <= 0) and the total number of hits.
func (t *Text) Concordance(word string, width, lines int) ([]ConcordanceLine, int) {
	query := strings.ToLower(word)
	halfWidth := (width - len([]rune(word)) - 2) / 2
	if halfWidth < 0 {
		halfWidth = 0
	}
	context := width / 4

	var out []ConcordanceLine
	total := 0
	for i, tok := range t.tokens {
		if strings.ToLower(tok) != query {
			continue
		}
		total++
		if lines > 0 && len(out) >= lines {
			continue
		}

		left := strings.Join(t.tokens[max(0, i-context):i], " ")
		right := strings.Join(t.tokens[i+1:max(i+1, min(len(t.tokens), i+context))], " ")
		left = padLeft(lastRunes(left, halfWidth), halfWidth)
		right = firstRunes(right, halfWidth)

		out = append(out, ConcordanceLine{
			Offset: i,
			Left:   left,
			Query:  tok,
			Right:  right,
			Line:   left + " " + tok + " " + right,
		})
	}
	return out, total
}

func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func padLeft(s string, n int) string {
	if pad := n - len([]rune(s)); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// Dispersion returns, for each word, the token offsets where it occurs.
// Matching is case-sensitive.
func (t *Text) Dispersion(words []string) map[string][]int {
	out := make(map[string][]int, len(words))
	for _, w := range words {
		out[w] = []int{}
	}
	for i, tok := range t.tokens {
		if _, ok := out[tok]; ok {
			out[tok] = append(out[tok], i)
		}
	}
	return out
}

// Context is the pair of lower-cased neighbors around a word.
type Context struct {
	Left  string
	Right string
}

func (c Context) String() string { return c.Left + "_" + c.Right }

// contextIndex maps lower-cased words to the distinct contexts they appear
// in, both in first-seen order.
type contextIndex struct {
	words    []string
	contexts map[string][]Context
	seen     map[string]map[Context]struct{}
}

func newContextIndex(tokens []string, keep func(string) bool) *contextIndex {
	filtered := tokens
	if keep != nil {
		filtered = make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if keep(tok) {
				filtered = append(filtered, tok)
			}
		}
	}

	idx := &contextIndex{
		contexts: make(map[string][]Context),
		seen:     make(map[string]map[Context]struct{}),
	}
	for i, tok := range filtered {
		c := Context{Left: contextStart, Right: contextEnd}
		if i > 0 {
			c.Left = strings.ToLower(filtered[i-1])
		}
		if i < len(filtered)-1 {
			c.Right = strings.ToLower(filtered[i+1])
		}

		key := strings.ToLower(tok)
		set, ok := idx.seen[key]
		if !ok {
			set = make(map[Context]struct{})
			idx.seen[key] = set
			idx.words = append(idx.words, key)
		}
		if _, dup := set[c]; !dup {
			set[c] = struct{}{}
			idx.contexts[key] = append(idx.contexts[key], c)
		}
	}
	return idx
}

// CommonContexts returns up to num contexts shared by every word, most
// shared first. Words are compared lower-cased.
func (t *Text) CommonContexts(words []string, num int) ([]Context, error) {
	idx := newContextIndex(t.tokens, nil)

	keys := make([]string, len(words))
	var missing []string
	for i, w := range words {
		keys[i] = strings.ToLower(w)
		if len(idx.contexts[keys[i]]) == 0 {
			missing = append(missing, keys[i])
		}
	}
	if len(missing) > 0 {
		return nil, &WordsNotFoundError{Words: missing}
	}
	if len(keys) == 0 {
		return nil, ErrNoCommonContexts
	}

	common := make(map[Context]struct{})
	for c := range idx.seen[keys[0]] {
		common[c] = struct{}{}
	}
	for _, k := range keys[1:] {
		for c := range common {
			if _, ok := idx.seen[k][c]; !ok {
				delete(common, c)
			}
		}
	}
	if len(common) == 0 {
		return nil, ErrNoCommonContexts
	}

	fd := NewFreqDist()
	byName := make(map[string]Context)
	for _, k := range keys {
		for _, c := range idx.contexts[k] {
			if _, ok := common[c]; ok {
				fd.Add(c.String())
				byName[c.String()] = c
			}
		}
	}

	ranked := fd.MostCommon(num)
	out := make([]Context, len(ranked))
	for i, r := range ranked {
		out[i] = byName[r.Sample]
	}
	return out, nil
}

// Similar returns up to num alphabetic words that appear in the same
// contexts as word, ordered by the number of shared contexts. It returns
// nil when word does not occur.
func (t *Text) Similar(word string, num int) []string {
	idx := newContextIndex(t.tokens, IsAlpha)
	key := strings.ToLower(word)

	target, ok := idx.seen[key]
	if !ok {
		return nil
	}

	fd := NewFreqDist()
	for _, w := range idx.words {
		if w == key {
			continue
		}
		for _, c := range idx.contexts[w] {
			if _, shared := target[c]; shared {
				fd.Add(w)
			}
		}
	}

	ranked := fd.MostCommon(num)
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Sample
	}
	return out
}

// String describes the text by its leading tokens.
func (t *Text) String() string {
	head := t.tokens
	if len(head) > 8 {
		head = head[:8]
	}
	suffix := ""
	if len(t.tokens) > 8 {
		suffix = "..."
	}
	return fmt.Sprintf("<Text: %s%s>", strings.Join(head, " "), suffix)
}
