// Package forge turns parsed patterns into string generators.
//
// Compile walks a syntax.Tree once and flattens every wildcard, predefined
// class and character class into a charset.Set, so generation is a plain
// walk of the tree that draws indexes from a random.Source.
package forge

import (
	"math"
	"strings"

	"github.com/coregx/regforge/internal/charset"
	"github.com/coregx/regforge/random"
	"github.com/coregx/regforge/syntax"
)

// Program generates strings matching a parsed pattern.
// It is immutable and safe for concurrent use with distinct Sources.
type Program struct {
	tree   *syntax.Tree
	config Config

	// sets[id] is the flattened character set of a wildcard, predefined
	// or class node; nil for every other node.
	sets []*charset.Set

	minLen, maxLen int
}

// Compile builds a Program from tree.
func Compile(tree *syntax.Tree, config Config) (*Program, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &Program{
		tree:   tree,
		config: config,
		sets:   make([]*charset.Set, tree.Len()),
	}
	if err := p.flatten(tree.Root()); err != nil {
		return nil, err
	}

	p.minLen, p.maxLen = p.lengths(tree.Root())
	if p.maxLen > config.MaxLength {
		return nil, &CompileError{Expr: tree.Pattern(), Err: ErrTooLong}
	}
	return p, nil
}

// MustCompile is like Compile with DefaultConfig but panics on error.
func MustCompile(tree *syntax.Tree) *Program {
	p, err := Compile(tree, DefaultConfig())
	if err != nil {
		panic("forge: Compile(`" + tree.Pattern() + "`): " + err.Error())
	}
	return p
}

// Generate appends one matching string to b.
func (p *Program) Generate(src random.Source, b *strings.Builder) {
	p.emit(src, b, p.tree.Root())
}

// GenerateString returns one matching string.
func (p *Program) GenerateString(src random.Source) string {
	var b strings.Builder
	b.Grow(p.minLen)
	p.Generate(src, &b)
	return b.String()
}

// Tree returns the syntax tree the program was compiled from.
func (p *Program) Tree() *syntax.Tree {
	return p.tree
}

// String returns the pattern text re-serialized from the tree.
func (p *Program) String() string {
	return p.tree.String()
}

// LengthBounds returns the shortest and longest number of characters the
// program can generate.
func (p *Program) LengthBounds() (minLen, maxLen int) {
	return p.minLen, p.maxLen
}

// Set returns the flattened character set of a wildcard, predefined or
// class node, or nil.
func (p *Program) Set(id syntax.NodeID) *charset.Set {
	return p.sets[id]
}

func (p *Program) emit(src random.Source, b *strings.Builder, id syntax.NodeID) {
	n := p.tree.Node(id)
	switch n.Kind {
	case syntax.KindRoot, syntax.KindSequence, syntax.KindGroup:
		for _, c := range n.Children {
			p.emit(src, b, c)
		}
	case syntax.KindLiteral:
		b.WriteRune(n.Rune)
	case syntax.KindWildcard, syntax.KindPredefined, syntax.KindClass:
		s := p.sets[id]
		b.WriteRune(s.At(src.IntN(0, s.Len())))
	case syntax.KindAlternation:
		p.emit(src, b, n.Children[src.IntN(0, len(n.Children))])
	case syntax.KindQuantified:
		k := n.Quant.CountWithin(src, p.config.MaxUnbounded)
		for i := 0; i < k; i++ {
			p.emit(src, b, n.Children[0])
		}
	default:
		panic("forge: cannot generate " + n.Kind.String())
	}
}

// flatten computes the character set of every class-like node below id.
func (p *Program) flatten(id syntax.NodeID) error {
	n := p.tree.Node(id)
	switch n.Kind {
	case syntax.KindWildcard:
		p.sets[id] = charset.Printable()
	case syntax.KindPredefined:
		p.sets[id] = predefinedSet(n.Predefined)
	case syntax.KindClass:
		s := p.classSet(id)
		if s.IsEmpty() {
			return &CompileError{Expr: p.tree.NodeString(id), Err: ErrEmptyClass}
		}
		p.sets[id] = s
	default:
		for _, c := range n.Children {
			if err := p.flatten(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// classSet unions the members of a class, recursing into nested classes,
// and applies negation against the printable domain. A nested class may be
// empty as long as the outermost one is not.
func (p *Program) classSet(id syntax.NodeID) *charset.Set {
	n := p.tree.Node(id)
	s := &charset.Set{}
	for _, it := range n.Items {
		switch it.Kind {
		case syntax.ItemLiteral:
			s.AddRune(it.Lo)
		case syntax.ItemRange:
			s.AddRange(it.Lo, it.Hi)
		case syntax.ItemPredefined:
			s.AddSet(predefinedSet(it.Predefined))
		case syntax.ItemClass:
			s.AddSet(p.classSet(it.Class))
		}
	}
	if n.Negated {
		s = s.Complement(charset.Printable())
	}
	return s
}

func predefinedSet(c syntax.PredefinedClass) *charset.Set {
	switch c {
	case syntax.Digit:
		return charset.Digit()
	case syntax.NotDigit:
		return charset.NotDigit()
	case syntax.Word:
		return charset.Word()
	case syntax.NotWord:
		return charset.NotWord()
	case syntax.Space:
		return charset.Space()
	case syntax.NotSpace:
		return charset.NotSpace()
	default:
		panic("forge: unknown predefined class " + c.String())
	}
}

// lengths returns the shortest and longest output of the subtree at id.
// Lengths saturate at math.MaxInt.
func (p *Program) lengths(id syntax.NodeID) (lo, hi int) {
	n := p.tree.Node(id)
	switch n.Kind {
	case syntax.KindLiteral, syntax.KindWildcard, syntax.KindPredefined, syntax.KindClass:
		return 1, 1
	case syntax.KindRoot, syntax.KindSequence, syntax.KindGroup:
		for _, c := range n.Children {
			clo, chi := p.lengths(c)
			lo = satAdd(lo, clo)
			hi = satAdd(hi, chi)
		}
		return lo, hi
	case syntax.KindAlternation:
		lo = math.MaxInt
		for _, c := range n.Children {
			clo, chi := p.lengths(c)
			lo = min(lo, clo)
			hi = max(hi, chi)
		}
		return lo, hi
	case syntax.KindQuantified:
		clo, chi := p.lengths(n.Children[0])
		qlo, qhi := n.Quant.Bounds(p.config.MaxUnbounded)
		return satMul(clo, qlo), satMul(chi, qhi)
	default:
		return 0, 0
	}
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
