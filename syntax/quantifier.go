package syntax

import (
	"strconv"

	"github.com/coregx/regforge/random"
)

// UnboundedRepeat bounds the repetition count of '*', '+' and '{n,}' so that
// generated strings stay finite.
const UnboundedRepeat = 32

// MaxRepeat is the largest count accepted inside '{...}'.
const MaxRepeat = 1000

// QuantifierKind identifies a repetition rule.
type QuantifierKind uint8

const (
	ExactlyOne QuantifierKind = iota
	MaybeOne
	ZeroOrMore
	OneOrMore
	ExactlyN
	AtLeastN
	RangeNM
)

// String returns a human-readable kind name
func (k QuantifierKind) String() string {
	switch k {
	case ExactlyOne:
		return "ExactlyOne"
	case MaybeOne:
		return "MaybeOne"
	case ZeroOrMore:
		return "ZeroOrMore"
	case OneOrMore:
		return "OneOrMore"
	case ExactlyN:
		return "ExactlyN"
	case AtLeastN:
		return "AtLeastN"
	case RangeNM:
		return "Range"
	default:
		return "Unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Quantifier says how many times a node is repeated.
// Min and Max are only meaningful for ExactlyN (Min), AtLeastN (Min) and
// RangeNM (Min, Max). Lazy records a trailing '?'; it has no effect on
// generation.
type Quantifier struct {
	Kind QuantifierKind
	Min  int
	Max  int
	Lazy bool
}

// Exactly returns the {n} quantifier.
func Exactly(n int) Quantifier {
	return Quantifier{Kind: ExactlyN, Min: n, Max: n}
}

// AtLeast returns the {n,} quantifier.
func AtLeast(n int) Quantifier {
	return Quantifier{Kind: AtLeastN, Min: n}
}

// Between returns the {n,m} quantifier. The caller guarantees n <= m.
func Between(n, m int) Quantifier {
	return Quantifier{Kind: RangeNM, Min: n, Max: m}
}

// Count returns a repetition count drawn from src.
func (q Quantifier) Count(src random.Source) int {
	return q.CountWithin(src, UnboundedRepeat)
}

// CountWithin is Count with a custom bound for unbounded quantifiers.
// '*' draws from [0, bound), '+' from [1, bound) and '{n,}' from [n, n+bound).
func (q Quantifier) CountWithin(src random.Source, bound int) int {
	switch q.Kind {
	case ExactlyOne:
		return 1
	case MaybeOne:
		if src.Bool(0.5) {
			return 1
		}
		return 0
	case ZeroOrMore:
		return src.IntN(0, max(bound, 1))
	case OneOrMore:
		return src.IntN(1, max(bound, 2))
	case ExactlyN:
		return q.Min
	case AtLeastN:
		return src.IntN(q.Min, q.Min+max(bound, 1))
	case RangeNM:
		return src.IntN(q.Min, q.Max+1)
	default:
		panic("syntax: unknown quantifier kind " + q.Kind.String())
	}
}

// Bounds returns the smallest and largest count the quantifier can produce
// with the given unbounded limit.
func (q Quantifier) Bounds(bound int) (lo, hi int) {
	switch q.Kind {
	case ExactlyOne:
		return 1, 1
	case MaybeOne:
		return 0, 1
	case ZeroOrMore:
		return 0, max(bound, 1) - 1
	case OneOrMore:
		return 1, max(bound, 2) - 1
	case ExactlyN:
		return q.Min, q.Min
	case AtLeastN:
		return q.Min, q.Min + max(bound, 1) - 1
	default:
		return q.Min, q.Max
	}
}

// String returns the canonical pattern text of the quantifier.
func (q Quantifier) String() string {
	var s string
	switch q.Kind {
	case ExactlyOne:
		return ""
	case MaybeOne:
		s = "?"
	case ZeroOrMore:
		s = "*"
	case OneOrMore:
		s = "+"
	case ExactlyN:
		s = "{" + strconv.Itoa(q.Min) + "}"
	case AtLeastN:
		s = "{" + strconv.Itoa(q.Min) + ",}"
	case RangeNM:
		s = "{" + strconv.Itoa(q.Min) + "," + strconv.Itoa(q.Max) + "}"
	}
	if q.Lazy {
		s += "?"
	}
	return s
}
