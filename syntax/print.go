package syntax

import "strings"

// String re-serializes the tree to pattern text. For every pattern accepted
// by Parse, Parse(p).String() == p.
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b, t.root)
	return b.String()
}

// NodeString re-serializes the subtree rooted at id.
func (t *Tree) NodeString(id NodeID) string {
	var b strings.Builder
	t.write(&b, id)
	return b.String()
}

func (t *Tree) write(b *strings.Builder, id NodeID) {
	n := t.Node(id)
	switch n.Kind {
	case KindRoot, KindSequence:
		for _, c := range n.Children {
			t.write(b, c)
		}
	case KindLiteral:
		b.WriteString(n.Raw)
	case KindWildcard:
		b.WriteByte('.')
	case KindPredefined:
		b.WriteString(n.Predefined.String())
	case KindClass:
		b.WriteByte('[')
		if n.Negated {
			b.WriteByte('^')
		}
		for _, it := range n.Items {
			t.writeItem(b, it)
		}
		b.WriteByte(']')
	case KindAlternation:
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte('|')
			}
			t.write(b, c)
		}
	case KindGroup:
		b.WriteByte('(')
		t.write(b, n.Children[0])
		b.WriteByte(')')
	case KindQuantified:
		t.write(b, n.Children[0])
		if n.Raw != "" {
			b.WriteString(n.Raw)
		} else {
			b.WriteString(n.Quant.String())
		}
	}
}

func (t *Tree) writeItem(b *strings.Builder, it ClassItem) {
	switch it.Kind {
	case ItemLiteral:
		b.WriteString(it.LoRaw)
	case ItemRange:
		b.WriteString(it.LoRaw)
		b.WriteByte('-')
		b.WriteString(it.HiRaw)
	case ItemPredefined:
		b.WriteString(it.Predefined.String())
	case ItemClass:
		t.write(b, it.Class)
	}
}
