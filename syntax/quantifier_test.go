package syntax

import (
	"testing"

	"github.com/coregx/regforge/random"
)

func TestQuantifierCountBounds(t *testing.T) {
	tests := []struct {
		name   string
		q      Quantifier
		lo, hi int
	}{
		{"exactly one", Quantifier{Kind: ExactlyOne}, 1, 1},
		{"maybe one", Quantifier{Kind: MaybeOne}, 0, 1},
		{"zero or more", Quantifier{Kind: ZeroOrMore}, 0, UnboundedRepeat - 1},
		{"one or more", Quantifier{Kind: OneOrMore}, 1, UnboundedRepeat - 1},
		{"exactly n", Exactly(7), 7, 7},
		{"at least n", AtLeast(3), 3, 3 + UnboundedRepeat - 1},
		{"range", Between(2, 5), 2, 5},
		{"degenerate range", Between(4, 4), 4, 4},
	}

	src := random.New(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.q.Bounds(UnboundedRepeat)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("Bounds() = (%d, %d), want (%d, %d)", lo, hi, tt.lo, tt.hi)
			}

			seen := make(map[int]bool)
			for i := 0; i < 4000; i++ {
				k := tt.q.Count(src)
				if k < tt.lo || k > tt.hi {
					t.Fatalf("Count() = %d, want in [%d, %d]", k, tt.lo, tt.hi)
				}
				seen[k] = true
			}
			if len(seen) != tt.hi-tt.lo+1 {
				t.Errorf("Count() produced %d distinct values, want %d", len(seen), tt.hi-tt.lo+1)
			}
		})
	}
}

func TestQuantifierCountWithin(t *testing.T) {
	src := random.New(2)
	for i := 0; i < 500; i++ {
		if k := (Quantifier{Kind: ZeroOrMore}).CountWithin(src, 4); k < 0 || k > 3 {
			t.Fatalf("ZeroOrMore.CountWithin(4) = %d", k)
		}
		if k := (Quantifier{Kind: OneOrMore}).CountWithin(src, 4); k < 1 || k > 3 {
			t.Fatalf("OneOrMore.CountWithin(4) = %d", k)
		}
		if k := AtLeast(10).CountWithin(src, 2); k < 10 || k > 11 {
			t.Fatalf("AtLeast(10).CountWithin(2) = %d", k)
		}
		// degenerate bounds still produce legal counts
		if k := (Quantifier{Kind: OneOrMore}).CountWithin(src, 0); k != 1 {
			t.Fatalf("OneOrMore.CountWithin(0) = %d", k)
		}
	}
}

func TestQuantifierString(t *testing.T) {
	tests := []struct {
		q    Quantifier
		want string
	}{
		{Quantifier{Kind: ExactlyOne}, ""},
		{Quantifier{Kind: MaybeOne}, "?"},
		{Quantifier{Kind: ZeroOrMore}, "*"},
		{Quantifier{Kind: OneOrMore, Lazy: true}, "+?"},
		{Exactly(3), "{3}"},
		{AtLeast(2), "{2,}"},
		{Between(1, 9), "{1,9}"},
	}

	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("%s.String() = %q, want %q", tt.q.Kind, got, tt.want)
		}
	}
}

func TestQuantifierDeterministic(t *testing.T) {
	a, b := random.New(77), random.New(77)
	q := Between(0, 100)
	for i := 0; i < 100; i++ {
		if x, y := q.Count(a), q.Count(b); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if KindAlternation.String() != "Alternation" {
		t.Errorf("KindAlternation = %q", KindAlternation.String())
	}
	if Kind(200).String() != "Kind(200)" {
		t.Errorf("Kind(200) = %q", Kind(200).String())
	}
	if QuantifierKind(99).String() != "Unknown(99)" {
		t.Errorf("QuantifierKind(99) = %q", QuantifierKind(99).String())
	}
	if NotWord.String() != `\W` {
		t.Errorf("NotWord = %q", NotWord.String())
	}
}
