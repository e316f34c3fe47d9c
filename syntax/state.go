package syntax

import "github.com/coregx/regforge/internal/conv"

// stateKind identifies where in the grammar the parser is.
type stateKind uint8

const (
	// stateBase reads literals and structure into a sequence.
	stateBase stateKind = iota
	// stateEscape follows a '\'.
	stateEscape
	// stateClass is inside '[...]'.
	stateClass
	// stateClassRange follows 'x-' inside a class.
	stateClassRange
	// stateRepetition is inside '{...}'.
	stateRepetition
)

// state is one entry of the parser's state stack. The entry below it is the
// state control returns to.
type state struct {
	kind stateKind

	// node is the sequence being filled (base, repetition) or the class
	// being filled (class, classRange).
	node NodeID
	// container is the root or group whose single child holds node (base).
	container NodeID
	// start is the byte offset at which the state was entered.
	start int

	// repetition accumulators
	from, to   int
	comma      bool
	fromDigits bool
	toDigits   bool
}

// base handles a rune outside of any class, escape or repetition.
func (p *parser) base(r rune) error {
	s := p.top()
	seq := s.node

	switch r {
	case '?':
		return p.quantify(seq, Quantifier{Kind: MaybeOne}, p.off, true)
	case '+':
		return p.quantify(seq, Quantifier{Kind: OneOrMore}, p.off, false)
	case '*':
		return p.quantify(seq, Quantifier{Kind: ZeroOrMore}, p.off, false)

	case '{':
		if err := p.checkQuantifiable(seq); err != nil {
			return err
		}
		p.push(state{kind: stateRepetition, node: seq, start: p.off})

	case '.':
		p.b.appendChild(seq, p.b.add(Node{Kind: KindWildcard}))

	case '\\':
		p.push(state{kind: stateEscape, start: p.off})

	case '[':
		class := p.b.add(Node{Kind: KindClass})
		p.push(state{kind: stateClass, node: class, start: p.off})

	case '|':
		p.alternate()

	case '(':
		group := p.b.add(Node{Kind: KindGroup})
		body := p.b.addSequence()
		p.b.appendChild(group, body)
		p.b.appendChild(seq, group)
		p.push(state{kind: stateBase, node: body, container: group, start: p.off})

	case ')':
		if len(p.stack) == 1 {
			return p.errorAt(ErrUnexpectedParen, 0, p.next)
		}
		p.pop()

	default:
		p.b.appendChild(seq, p.b.add(Node{Kind: KindLiteral, Rune: r, Raw: p.pattern[p.off:p.next]}))
	}
	return nil
}

// escape resolves the rune after a '\' and hands the result to the state
// that requested the escape.
func (p *parser) escape(r rune) error {
	esc := p.pop()
	raw := p.pattern[esc.start:p.next]
	item, ok := escapeItem(r, raw)
	if !ok {
		return p.errorAt(ErrInvalidEscape, esc.start, p.next)
	}
	return p.deliver(item)
}

func escapeItem(r rune, raw string) (ClassItem, bool) {
	lit := func(c rune) (ClassItem, bool) {
		return ClassItem{Kind: ItemLiteral, Lo: c, LoRaw: raw}, true
	}
	pre := func(c PredefinedClass) (ClassItem, bool) {
		return ClassItem{Kind: ItemPredefined, Predefined: c}, true
	}

	switch r {
	case '[', ']', '(', ')', '{', '}', '<', '>', '?', '+', '*',
		'-', '=', '!', '.', '|', '^', '$', '\\':
		return lit(r)

	case 'n':
		return lit('\n')
	case 't':
		return lit('\t')
	case 'r':
		return lit('\r')
	case 'f':
		return lit('\f')
	case 'a':
		return lit('\a')
	case 'e':
		return lit('\x1b')

	case 'd':
		return pre(Digit)
	case 'D':
		return pre(NotDigit)
	case 'w':
		return pre(Word)
	case 'W':
		return pre(NotWord)
	case 's':
		return pre(Space)
	case 'S':
		return pre(NotSpace)
	}
	return ClassItem{}, false
}

// deliver adds an escaped item to whatever the current state is filling.
func (p *parser) deliver(item ClassItem) error {
	s := p.top()
	switch s.kind {
	case stateBase:
		var n Node
		if item.Kind == ItemPredefined {
			n = Node{Kind: KindPredefined, Predefined: item.Predefined}
		} else {
			n = Node{Kind: KindLiteral, Rune: item.Lo, Raw: item.LoRaw}
		}
		p.b.appendChild(s.node, p.b.add(n))
	case stateClass:
		p.b.appendItem(s.node, item)
	case stateClassRange:
		return p.completeRange(item)
	default:
		panic("syntax: escape delivered to " + s.kind.String())
	}
	return nil
}

// class handles a rune inside '[...]'.
func (p *parser) class(r rune) error {
	s := p.top()
	class := s.node

	switch r {
	case '\\':
		p.push(state{kind: stateEscape, start: p.off})

	case ']':
		if len(p.b.node(class).Items) == 0 {
			return p.errorAt(ErrEmptyClass, s.start, p.next)
		}
		p.pop()
		p.attachClass(class)

	case '[':
		inner := p.b.add(Node{Kind: KindClass})
		p.push(state{kind: stateClass, node: inner, start: p.off})

	case '-':
		if last, ok := p.b.lastItem(class); ok && last.Kind == ItemLiteral {
			p.push(state{kind: stateClassRange, node: class, start: p.off})
		} else {
			p.appendClassLiteral(class, r, p.pattern[p.off:p.next])
		}

	case '^':
		n := p.b.node(class)
		if p.off == s.start+1 && !n.Negated {
			n.Negated = true
		} else {
			p.appendClassLiteral(class, r, p.pattern[p.off:p.next])
		}

	default:
		p.appendClassLiteral(class, r, p.pattern[p.off:p.next])
	}
	return nil
}

// classRange handles the rune after 'x-' inside a class.
func (p *parser) classRange(r rune) error {
	s := p.top()
	switch r {
	case ']':
		// 'x-]' : the dash is a literal
		class := s.node
		p.pop()
		p.appendClassLiteral(class, '-', "-")
		return p.class(r)
	case '\\':
		p.push(state{kind: stateEscape, start: p.off})
		return nil
	}
	return p.completeRange(ClassItem{Kind: ItemLiteral, Lo: r, LoRaw: p.pattern[p.off:p.next]})
}

func (p *parser) completeRange(hi ClassItem) error {
	rs := p.pop()
	lo, ok := p.b.popItem(rs.node)
	if !ok || lo.Kind != ItemLiteral {
		panic("syntax: class range without a start literal")
	}
	start := rs.start - len(lo.LoRaw)
	if hi.Kind != ItemLiteral || lo.Lo >= hi.Lo {
		return p.errorAt(ErrInvalidCharRange, start, p.next)
	}
	p.b.appendItem(rs.node, ClassItem{
		Kind:  ItemRange,
		Lo:    lo.Lo,
		Hi:    hi.Lo,
		LoRaw: lo.LoRaw,
		HiRaw: hi.LoRaw,
	})
	return nil
}

// repetition handles a rune inside '{...}'.
func (p *parser) repetition(r rune) error {
	s := p.top()

	switch {
	case r == '}':
		q, ok := s.quantifier()
		if !ok {
			return p.errorAt(ErrInvalidRepeatSize, s.start, p.next)
		}
		rep := p.pop()
		return p.quantify(rep.node, q, rep.start, false)

	case r == ',':
		if !s.fromDigits || s.comma {
			return p.errorAt(ErrInvalidRepeatSize, s.start, p.next)
		}
		s.comma = true

	case conv.DigitValue(r) >= 0:
		var ok bool
		d := conv.DigitValue(r)
		if s.comma {
			s.to, ok = conv.AppendDigit(s.to, d, MaxRepeat)
			s.toDigits = true
		} else {
			s.from, ok = conv.AppendDigit(s.from, d, MaxRepeat)
			s.fromDigits = true
		}
		if !ok {
			return p.errorAt(ErrInvalidRepeatSize, s.start, p.next)
		}

	default:
		return p.errorAt(ErrInvalidRepeatSize, s.start, p.next)
	}
	return nil
}

// quantifier resolves the accumulated '{...}' contents.
func (s *state) quantifier() (Quantifier, bool) {
	switch {
	case !s.fromDigits:
		return Quantifier{}, false
	case !s.comma:
		return Exactly(s.from), true
	case !s.toDigits:
		return AtLeast(s.from), true
	case s.from > s.to:
		return Quantifier{}, false
	default:
		return Between(s.from, s.to), true
	}
}

func (k stateKind) String() string {
	switch k {
	case stateBase:
		return "base"
	case stateEscape:
		return "escape"
	case stateClass:
		return "class"
	case stateClassRange:
		return "class range"
	case stateRepetition:
		return "repetition"
	default:
		return "unknown"
	}
}
