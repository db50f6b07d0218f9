package nlp

import (
	"fmt"

	"github.com/jdkato/prose/v2"
	"golang.org/x/text/unicode/norm"
)

// TaggedToken is a word with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Entity is a named entity span found in a text.
type Entity struct {
	Text  string
	Label string
}

// Document is a text that has been tokenized, segmented, tagged and
// searched for named entities in one pass.
type Document struct {
	doc *prose.Document
}

// NewDocument runs the full pipeline over text. The text is NFC-normalized
// first so composed and decomposed accents tokenize the same way.
func NewDocument(text string) (*Document, error) {
	doc, err := prose.NewDocument(norm.NFC.String(text))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Tokens returns the word tokens in order.
func (d *Document) Tokens() []string {
	toks := d.doc.Tokens()
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text
	}
	return out
}

// Tagged returns the tokens with their part-of-speech tags.
func (d *Document) Tagged() []TaggedToken {
	toks := d.doc.Tokens()
	out := make([]TaggedToken, len(toks))
	for i, tok := range toks {
		out[i] = TaggedToken{Text: tok.Text, Tag: tok.Tag}
	}
	return out
}

// Sentences returns the sentence texts in order.
func (d *Document) Sentences() []string {
	sents := d.doc.Sentences()
	out := make([]string, len(sents))
	for i, s := range sents {
		out[i] = s.Text
	}
	return out
}

// Entities returns named entities in order of appearance.
func (d *Document) Entities() []Entity {
	ents := d.doc.Entities()
	out := make([]Entity, len(ents))
	for i, e := range ents {
		out[i] = Entity{Text: e.Text, Label: e.Label}
	}
	return out
}

// Tokenize splits text into word and punctuation tokens.
func Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(norm.NFC.String(text),
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize text: %w", err)
	}
	return (&Document{doc: doc}).Tokens(), nil
}

// Sentences splits text into sentences.
func Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(norm.NFC.String(text),
		prose.WithTagging(false),
		prose.WithTokenization(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to segment text: %w", err)
	}
	return (&Document{doc: doc}).Sentences(), nil
}

// Tag returns the part-of-speech tagged tokens of a sentence.
func Tag(sentence string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(norm.NFC.String(sentence), prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag sentence: %w", err)
	}
	return (&Document{doc: doc}).Tagged(), nil
}
