package nlp

import (
	"strings"
)

// Tree is a shallow parse: a labelled node whose children are tagged tokens
// or labelled subtrees.
type Tree struct {
	Label    string
	Children []Node
}

// Node is either a leaf token or a subtree.
type Node struct {
	Token   TaggedToken
	Subtree *Tree
}

// IsLeaf reports whether the node is a token.
func (n Node) IsLeaf() bool { return n.Subtree == nil }

// Leaves returns the tokens under the tree in order.
func (t *Tree) Leaves() []TaggedToken {
	var out []TaggedToken
	for _, c := range t.Children {
		if c.IsLeaf() {
			out = append(out, c.Token)
		} else {
			out = append(out, c.Subtree.Leaves()...)
		}
	}
	return out
}

// Subtrees returns the direct labelled children.
func (t *Tree) Subtrees() []*Tree {
	var out []*Tree
	for _, c := range t.Children {
		if !c.IsLeaf() {
			out = append(out, c.Subtree)
		}
	}
	return out
}

// String renders the tree in bracketed form, e.g.
// (S (PERSON John/NNP) ran/VBD ./.)
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Tree) write(b *strings.Builder) {
	b.WriteString("(")
	b.WriteString(t.Label)
	for _, c := range t.Children {
		b.WriteString(" ")
		if c.IsLeaf() {
			b.WriteString(c.Token.Text)
			b.WriteString("/")
			b.WriteString(c.Token.Tag)
		} else {
			c.Subtree.write(b)
		}
	}
	b.WriteString(")")
}

// Chunk groups the tokens covered by each entity into a subtree labelled with
// the entity type. Entities are matched in order against whole tokens; an
// entity that cannot be aligned is skipped.
func Chunk(tagged []TaggedToken, entities []Entity) *Tree {
	root := &Tree{Label: "S"}
	next := 0

	for i := 0; i < len(tagged); {
		span, label := 0, ""
		for k := next; k < len(entities); k++ {
			if n := alignEntity(tagged[i:], entities[k].Text); n > 0 {
				span, label = n, entities[k].Label
				next = k + 1
				break
			}
		}

		if span == 0 {
			root.Children = append(root.Children, Node{Token: tagged[i]})
			i++
			continue
		}

		sub := &Tree{Label: label}
		for _, tok := range tagged[i : i+span] {
			sub.Children = append(sub.Children, Node{Token: tok})
		}
		root.Children = append(root.Children, Node{Subtree: sub})
		i += span
	}
	return root
}

// alignEntity returns how many leading tokens spell text, or 0.
func alignEntity(tokens []TaggedToken, text string) int {
	want := strings.Join(strings.Fields(text), "")
	if want == "" {
		return 0
	}
	var got strings.Builder
	for i, tok := range tokens {
		got.WriteString(tok.Text)
		switch s := got.String(); {
		case s == want:
			return i + 1
		case !strings.HasPrefix(want, s):
			return 0
		}
	}
	return 0
}

// NamedEntities tags a sentence and chunks its named entities.
func NamedEntities(sentence string) (*Tree, error) {
	doc, err := NewDocument(sentence)
	if err != nil {
		return nil, err
	}
	return Chunk(doc.Tagged(), doc.Entities()), nil
}
