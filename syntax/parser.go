package syntax

import "unicode/utf8"

// Parse parses a pattern into a Tree.
//
// Supported syntax:
//
//	x         literal character
//	.         any printable character
//	[xyz]     character class; [^xyz] negated; [a-z] ranges; [a[b-c]] union
//	\d \D \w \W \s \S   predefined classes
//	\n \t \r \f \a \e   control characters
//	\. \* ... escaped punctuation
//	(re)      group
//	x|y       alternation
//	x? x* x+ x{n} x{n,} x{n,m}   quantifiers; a trailing ? marks them lazy
//
// Any other construct is rejected with an *Error; no partial tree is
// returned.
func Parse(pattern string) (*Tree, error) {
	p := newParser(pattern)
	for p.off < len(pattern) {
		r, size := utf8.DecodeRuneInString(pattern[p.off:])
		p.next = p.off + size
		if r == utf8.RuneError && size == 1 {
			return nil, p.errorAt(ErrInvalidUTF8, p.off, p.next)
		}
		if err := p.step(r); err != nil {
			return nil, err
		}
		p.off = p.next
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return p.b.tree(pattern, p.root), nil
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
func MustParse(pattern string) *Tree {
	t, err := Parse(pattern)
	if err != nil {
		panic("syntax: Parse(`" + pattern + "`): " + err.Error())
	}
	return t
}

type parser struct {
	pattern string
	b       *builder
	root    NodeID

	// stack of states; the bottom entry is the base state of the root
	stack []state

	// byte offsets of the current rune and of the rune after it
	off, next int
}

func newParser(pattern string) *parser {
	b := newBuilder(len(pattern) + 2)
	root := b.add(Node{Kind: KindRoot})
	body := b.addSequence()
	b.appendChild(root, body)

	return &parser{
		pattern: pattern,
		b:       b,
		root:    root,
		stack:   []state{{kind: stateBase, node: body, container: root}},
	}
}

// step hands one rune to the current state.
func (p *parser) step(r rune) error {
	switch p.top().kind {
	case stateBase:
		return p.base(r)
	case stateEscape:
		return p.escape(r)
	case stateClass:
		return p.class(r)
	case stateClassRange:
		return p.classRange(r)
	case stateRepetition:
		return p.repetition(r)
	default:
		panic("syntax: unknown parser state")
	}
}

// finish checks that the pattern ended in a state that accepts end of input.
func (p *parser) finish() error {
	s := p.top()
	switch s.kind {
	case stateEscape:
		return p.errorAt(ErrTrailingBackslash, s.start, len(p.pattern))
	case stateClass, stateClassRange:
		return p.errorAt(ErrMissingBracket, p.outermostClassStart(), len(p.pattern))
	case stateRepetition:
		return p.errorAt(ErrMissingRepeatClose, s.start, len(p.pattern))
	}
	if len(p.stack) > 1 {
		return p.errorAt(ErrMissingParen, 0, len(p.pattern))
	}
	return nil
}

func (p *parser) outermostClassStart() int {
	start := p.top().start
	for i := len(p.stack) - 1; i >= 0; i-- {
		switch p.stack[i].kind {
		case stateClass:
			start = p.stack[i].start
		case stateBase:
			return start
		}
	}
	return start
}

func (p *parser) top() *state {
	return &p.stack[len(p.stack)-1]
}

func (p *parser) push(s state) {
	p.stack = append(p.stack, s)
}

func (p *parser) pop() state {
	s := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return s
}

func (p *parser) errorAt(code ErrorCode, start, end int) *Error {
	return &Error{
		Code:    code,
		Expr:    p.pattern[start:end],
		Offset:  start,
		Pattern: p.pattern,
	}
}

// checkQuantifiable reports whether seq ends with a node a quantifier can
// wrap.
func (p *parser) checkQuantifiable(seq NodeID) error {
	last := p.b.lastChild(seq)
	if last == InvalidNode {
		return p.errorAt(ErrMissingRepeatArgument, p.off, p.next)
	}
	if p.b.node(last).Kind == KindQuantified {
		return p.errorAt(ErrNestedRepeat, p.off, p.next)
	}
	return nil
}

// quantify wraps the last child of seq in a quantified node. A '?' directly
// after a quantifier marks that quantifier lazy instead.
func (p *parser) quantify(seq NodeID, q Quantifier, start int, lazyMark bool) error {
	last := p.b.lastChild(seq)
	if last == InvalidNode {
		return p.errorAt(ErrMissingRepeatArgument, start, p.next)
	}

	if n := p.b.node(last); n.Kind == KindQuantified {
		if lazyMark && !n.Quant.Lazy {
			n.Quant.Lazy = true
			n.Raw += "?"
			return nil
		}
		return p.errorAt(ErrNestedRepeat, start, p.next)
	}

	wrapped := p.b.add(Node{
		Kind:     KindQuantified,
		Children: []NodeID{last},
		Quant:    q,
		Raw:      p.pattern[start:p.next],
	})
	p.b.replaceLastChild(seq, wrapped)
	return nil
}

// alternate handles '|'. The first '|' in a root or group replaces the
// container's sequence with an alternation whose first branch is that
// sequence; later ones append a branch. Parsing continues in the new branch.
func (p *parser) alternate() {
	s := p.top()
	body := p.b.node(s.container).Children[0]
	next := p.b.addSequence()

	if p.b.node(body).Kind == KindAlternation {
		p.b.appendChild(body, next)
	} else {
		alt := p.b.add(Node{Kind: KindAlternation, Children: []NodeID{body, next}})
		p.b.node(s.container).Children[0] = alt
	}
	s.node = next
}

// attachClass adds a closed class to the state that opened it.
func (p *parser) attachClass(class NodeID) {
	s := p.top()
	switch s.kind {
	case stateBase:
		p.b.appendChild(s.node, class)
	case stateClass:
		p.b.appendItem(s.node, ClassItem{Kind: ItemClass, Class: class})
	default:
		panic("syntax: class closed into " + s.kind.String())
	}
}

func (p *parser) appendClassLiteral(class NodeID, r rune, raw string) {
	p.b.appendItem(class, ClassItem{Kind: ItemLiteral, Lo: r, LoRaw: raw})
}
