// Package charset implements sets of code points as sorted interval lists.
//
// Character classes, predefined classes and the wildcard are all flattened
// into a Set before generation so that every code point in a class is drawn
// with the same probability, no matter how many overlapping members named it.
package charset

import (
	"sort"
	"strings"

	"github.com/coregx/regforge/internal/conv"
)

// Range is an inclusive interval of code points.
type Range struct {
	Lo, Hi rune
}

// Len returns the number of code points in the range.
func (r Range) Len() int {
	return int(r.Hi-r.Lo) + 1
}

// Set is a normalized set of code points: ranges are sorted, disjoint and
// never adjacent. The zero value is an empty set.
type Set struct {
	ranges []Range
	size   int
}

// New returns a set holding the union of the given ranges.
func New(ranges ...Range) *Set {
	s := &Set{}
	for _, r := range ranges {
		s.AddRange(r.Lo, r.Hi)
	}
	return s
}

// AddRune adds a single code point.
func (s *Set) AddRune(r rune) {
	s.AddRange(r, r)
}

// Surrogate code points cannot be encoded in UTF-8 and are never members.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// AddRange adds every code point in [lo, hi] except surrogates.
// Inverted bounds are ignored.
func (s *Set) AddRange(lo, hi rune) {
	if lo > hi {
		return
	}
	if lo <= surrogateMax && hi >= surrogateMin {
		s.AddRange(lo, surrogateMin-1)
		s.AddRange(surrogateMax+1, hi)
		return
	}
	// first range that could touch [lo, hi]
	i := sort.Search(len(s.ranges), func(i int) bool {
		return s.ranges[i].Hi+1 >= lo
	})
	j := i
	for j < len(s.ranges) && s.ranges[j].Lo <= hi+1 {
		lo = min(lo, s.ranges[j].Lo)
		hi = max(hi, s.ranges[j].Hi)
		j++
	}

	merged := make([]Range, 0, len(s.ranges)-(j-i)+1)
	merged = append(merged, s.ranges[:i]...)
	merged = append(merged, Range{Lo: lo, Hi: hi})
	merged = append(merged, s.ranges[j:]...)
	s.ranges = merged
	s.recount()
}

// AddSet adds every code point of o.
func (s *Set) AddSet(o *Set) {
	for _, r := range o.ranges {
		s.AddRange(r.Lo, r.Hi)
	}
}

// Complement returns the code points of domain that are not in s.
func (s *Set) Complement(domain *Set) *Set {
	out := &Set{}
	for _, d := range domain.ranges {
		lo := d.Lo
		for _, r := range s.ranges {
			if r.Hi < lo || r.Lo > d.Hi {
				continue
			}
			if r.Lo > lo {
				out.ranges = append(out.ranges, Range{Lo: lo, Hi: r.Lo - 1})
			}
			lo = r.Hi + 1
			if lo > d.Hi {
				break
			}
		}
		if lo <= d.Hi {
			out.ranges = append(out.ranges, Range{Lo: lo, Hi: d.Hi})
		}
	}
	out.recount()
	return out
}

// Contains reports whether r is in the set.
func (s *Set) Contains(r rune) bool {
	i := sort.Search(len(s.ranges), func(i int) bool {
		return s.ranges[i].Hi >= r
	})
	return i < len(s.ranges) && s.ranges[i].Lo <= r
}

// Len returns the number of code points in the set.
func (s *Set) Len() int {
	return s.size
}

// IsEmpty reports whether the set holds no code points.
func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// At returns the i-th code point of the set in ascending order.
// Panics if i is out of range.
func (s *Set) At(i int) rune {
	if i < 0 || i >= s.size {
		panic("charset: index out of range")
	}
	for _, r := range s.ranges {
		if n := r.Len(); i >= n {
			i -= n
			continue
		}
		return r.Lo + conv.IntToRune(i)
	}
	panic("charset: inconsistent size")
}

// Ranges returns the normalized ranges. The slice must not be modified.
func (s *Set) Ranges() []Range {
	return s.ranges
}

// String renders the set in class notation, e.g. "[0-9A-Z_]".
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range s.ranges {
		b.WriteRune(r.Lo)
		if r.Hi != r.Lo {
			b.WriteByte('-')
			b.WriteRune(r.Hi)
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (s *Set) recount() {
	s.size = 0
	for _, r := range s.ranges {
		s.size += r.Len()
	}
}
