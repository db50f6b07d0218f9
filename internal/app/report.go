package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ironsheep/ocrscan/internal/nlp"
)

const wrapWidth = 70

// wrap joins words with sep and breaks lines before wrapWidth.
func wrap(words []string, sep string) string {
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		piece := w
		if i < len(words)-1 {
			piece += strings.TrimRight(sep, " ")
		}
		switch {
		case lineLen == 0:
		case lineLen+1+len(piece) > wrapWidth:
			b.WriteString("\n")
			lineLen = 0
		default:
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(piece)
		lineLen += len(piece)
	}
	return b.String()
}

// reportWriter remembers the first write error so sections can be written
// without checking each call.
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *reportWriter) counts(title string, counts []nlp.Count) {
	r.printf("\n%s:\n", title)
	if len(counts) == 0 {
		r.printf("  (none)\n")
		return
	}
	width := 0
	for _, c := range counts {
		width = max(width, len(c.Sample))
	}
	for _, c := range counts {
		r.printf("  %-*s  %d\n", width, c.Sample, c.N)
	}
}

func writeReport(w io.Writer, a *nlp.Analysis, opts nlp.AnalysisOptions) error {
	r := &reportWriter{w: w}

	r.printf("Tokens: %s (%s distinct), features: %s\n",
		humanize.Comma(int64(len(a.Tokens))),
		humanize.Comma(int64(a.Text.Vocab().B())),
		humanize.Comma(int64(len(a.Features))))

	r.counts("Most common words", a.TopFeatures)
	r.printf("\nHapaxes:\n%s\n", wrap(a.Hapaxes, " "))
	r.counts("Most common bigrams", a.TopBigrams)
	r.counts("Word lengths", a.TopLengths)
	r.counts("Most common stems", a.TopStems)

	r.printf("\nOccurrences of %q: %d\n", opts.Word, a.WordCount)

	r.printf("\nConcordance for %q:\n", opts.Word)
	if a.ConcordanceTotal == 0 {
		r.printf("no matches\n")
	} else {
		r.printf("Displaying %d of %d matches:\n", len(a.Concordance), a.ConcordanceTotal)
		for _, l := range a.Concordance {
			r.printf("%s\n", l.Line)
		}
	}

	r.printf("\nDispersion:\n")
	for _, word := range opts.DispersionWords {
		r.printf("  %s: %v\n", word, a.Dispersion[word])
	}

	r.printf("\nCollocations:\n")
	colls := make([]string, len(a.Collocations))
	for i, c := range a.Collocations {
		colls[i] = c.String()
	}
	r.printf("%s\n", wrap(colls, "; "))

	r.printf("\nCommon contexts of %q:\n", opts.ContextWord)
	var notFound *nlp.WordsNotFoundError
	switch {
	case errors.Is(a.CommonContextsErr, nlp.ErrNoCommonContexts):
		r.printf("No common contexts were found\n")
	case errors.As(a.CommonContextsErr, &notFound):
		r.printf("The following word(s) were not found: %s\n", strings.Join(notFound.Words, " "))
	case a.CommonContextsErr != nil:
		return a.CommonContextsErr
	default:
		ctxs := make([]string, len(a.CommonContexts))
		for i, c := range a.CommonContexts {
			ctxs[i] = c.String()
		}
		r.printf("%s\n", wrap(ctxs, " "))
	}

	r.printf("\nWords similar to %q:\n", opts.ContextWord)
	if len(a.Similar) == 0 {
		r.printf("No matches\n")
	} else {
		r.printf("%s\n", wrap(a.Similar, " "))
	}

	r.printf("\nSentences: %d\n", len(a.Sentences))
	return r.err
}

func writeSentence(w io.Writer, sentence string, tagged []nlp.TaggedToken, tree *nlp.Tree) error {
	r := &reportWriter{w: w}
	r.printf("%s\n", sentence)

	pairs := make([]string, len(tagged))
	for i, t := range tagged {
		pairs[i] = fmt.Sprintf("(%q, %q)", t.Text, t.Tag)
	}
	r.printf("\nPart-of-speech tags:\n%s\n", wrap(pairs, ", "))
	r.printf("\nNamed entities:\n%s\n", tree)
	return r.err
}
