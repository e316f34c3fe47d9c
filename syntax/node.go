package syntax

import "strconv"

// NodeID indexes a node in a Tree's arena.
type NodeID int32

// InvalidNode is the NodeID of no node.
const InvalidNode NodeID = -1

// Kind identifies the variant of a Node.
type Kind uint8

const (
	// KindRoot is the synthetic root; Children holds exactly one node.
	KindRoot Kind = iota
	// KindLiteral emits Rune.
	KindLiteral
	// KindWildcard is '.'.
	KindWildcard
	// KindPredefined is one of \d \D \w \W \s \S.
	KindPredefined
	// KindClass is a bracketed class; see Negated and Items.
	KindClass
	// KindSequence emits each of Children in order.
	KindSequence
	// KindAlternation emits one of Children, each a sequence.
	KindAlternation
	// KindGroup is '(...)'; Children holds one sequence or alternation.
	KindGroup
	// KindQuantified repeats Children[0] according to Quant.
	KindQuantified
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindLiteral:
		return "Literal"
	case KindWildcard:
		return "Wildcard"
	case KindPredefined:
		return "Predefined"
	case KindClass:
		return "Class"
	case KindSequence:
		return "Sequence"
	case KindAlternation:
		return "Alternation"
	case KindGroup:
		return "Group"
	case KindQuantified:
		return "Quantified"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// PredefinedClass identifies a shorthand class escape.
type PredefinedClass uint8

const (
	Digit PredefinedClass = iota
	NotDigit
	Word
	NotWord
	Space
	NotSpace
)

// Letter returns the escape letter of the class, e.g. 'd' for Digit.
func (c PredefinedClass) Letter() rune {
	return rune("dDwWsS"[c])
}

// String returns the escape sequence, e.g. `\d`.
func (c PredefinedClass) String() string {
	return `\` + string(c.Letter())
}

// ItemKind identifies a member of a character class.
type ItemKind uint8

const (
	ItemLiteral ItemKind = iota
	ItemRange
	ItemPredefined
	ItemClass
)

// ClassItem is one member of a character class.
type ClassItem struct {
	Kind ItemKind

	// Lo is the literal rune, or the range start; Hi is the range end.
	Lo, Hi rune
	// LoRaw and HiRaw hold the endpoints as written, e.g. `\]`.
	LoRaw, HiRaw string

	Predefined PredefinedClass

	// Class is a nested class unioned into the enclosing one.
	Class NodeID
}

// Node is a single element of the syntax tree.
// Only the fields relevant to Kind are set.
type Node struct {
	Kind Kind

	// Rune is the character emitted by a literal.
	Rune rune
	// Raw is the pattern text of a literal, or of a quantifier for
	// KindQuantified nodes.
	Raw string

	Predefined PredefinedClass

	Negated bool
	Items   []ClassItem

	Children []NodeID

	Quant Quantifier
}

// Tree is a parsed pattern. It is immutable once returned by Parse and safe
// for concurrent reads.
type Tree struct {
	pattern string
	nodes   []Node
	root    NodeID
}

// Pattern returns the text the tree was parsed from.
func (t *Tree) Pattern() string {
	return t.pattern
}

// Root returns the ID of the synthetic root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given ID.
// Slices of the returned node are shared with the tree and must not be
// modified. Panics on an invalid ID.
func (t *Tree) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic("syntax: node ID " + strconv.Itoa(int(id)) + " out of range")
	}
	return t.nodes[id]
}

// Body returns the single child of the root: the top-level sequence, or an
// alternation when the pattern has a top-level '|'.
func (t *Tree) Body() NodeID {
	return t.nodes[t.root].Children[0]
}
