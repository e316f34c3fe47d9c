package forge

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/coregx/regforge/random"
	"github.com/coregx/regforge/syntax"
)

const repeatCount = 16

// oraclePatterns are generated and checked against the standard library
// matcher, which shares their meaning.
var oraclePatterns = []string{
	"foo", "abc",
	"foo?", "ab?c", "x?y?z?", "123+", "ab+c", "x+y+z+", "123*", "ab*c", "x*y*z*",
	"a+?", "a*?b", "a??", "a{2,5}?",
	`[\w]{5}`, "[0-9]{3,}", "[a-z]{2,7}", `[\w]{42}`, "[0-9]{13,}", "[a-z]{23,42}", "[a-z]{2,2}",
	"a{0}", "a{0,0}",
	"a|b", "a|b|cd", "a|ad", "foo|ba[rz]|spam|bacon", "a|", "|a",
	"[abc]+", "[a-d]+", "[a-dW-Z]+", "[^abc]+", `[a\-z]+`, `[\]]+`, "[abc-]+", "[-xyz]+",
	"[abc^]+", "[a-z.]+", "[a-z$]+", "[^-a]", "[^^]", `[\d_]`, `[\w-z]`, "[a-c-e]", `[!-\]]`,
	"]", "abc]",
	`\[\]`, `\(\)`, `\{\}`, `\<\>`, `\?\*\+`, `\.\|\\`, `\^\$`, `\-\=\!`, `\n\t\r\f\a`,
	`\d`, `\D`, `\w`, `\W`, `\s`, `\S`, `[^\d\s]+`, `[\W\d]{4}`,
	".", "ba.", ".?", ".*", ".+",
	"(ab)+", "(a+b)+", "(a|b)+", "(a|ba(r|z))+", "(ab)*", "(ab)(cd*)", "abc(d)*abc",
	"([a-h]-[q-z])+", "(([0-9]-)+[q-z]+\n)+", "((foo?)(ba[rz]))+", "()",
	"héllo", "[α-ω]+",
	`[A-Z][a-z]{2,8} [A-Z][a-z]{2,12}`,
	`[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}`,
	`\d{3}-\d{3}-\d{4}`,
	`(https?|ftp)://[a-z]+(\.[a-z]+)*(/[\w]*)*`,
	"",
}

func TestGenerateMatchesOracle(t *testing.T) {
	seeds := []uint64{0, 1, 42, 0xDEADBEEF, math.MaxUint64}

	for _, pattern := range oraclePatterns {
		t.Run(pattern, func(t *testing.T) {
			prog := MustCompile(syntax.MustParse(pattern))
			oracle := regexp.MustCompile(`^(?:` + pattern + `)$`)

			for _, seed := range seeds {
				src := random.New(seed)
				for i := 0; i < repeatCount; i++ {
					got := prog.GenerateString(src)
					if !oracle.MatchString(got) {
						t.Fatalf("seed %d: %q does not match /%s/", seed, got, pattern)
					}
				}
			}
		})
	}
}

func TestGenerateEscapeControlChar(t *testing.T) {
	prog := MustCompile(syntax.MustParse(`\e\a`))
	if got := prog.GenerateString(random.New(1)); got != "\x1b\a" {
		t.Errorf("got %q, want %q", got, "\x1b\a")
	}
}

func TestGenerateEmptyPattern(t *testing.T) {
	prog := MustCompile(syntax.MustParse(""))
	src := random.New(3)
	for i := 0; i < repeatCount; i++ {
		if got := prog.GenerateString(src); got != "" {
			t.Fatalf("got %q, want empty", got)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	patterns := []string{`[a-z]+@\w{3,9}\.(com|org|net)`, ".*", "(a|b|c){10,}"}
	for _, pattern := range patterns {
		prog := MustCompile(syntax.MustParse(pattern))
		a, b := random.New(1234), random.New(1234)
		for i := 0; i < repeatCount; i++ {
			if x, y := prog.GenerateString(a), prog.GenerateString(b); x != y {
				t.Fatalf("/%s/ step %d: %q != %q", pattern, i, x, y)
			}
		}
	}
}

func TestNegatedClassStaysInDomain(t *testing.T) {
	prog := MustCompile(syntax.MustParse("[^abc]"))
	src := random.New(99)
	seen := make(map[rune]bool)
	for i := 0; i < 5000; i++ {
		r, _ := utf8.DecodeRuneInString(prog.GenerateString(src))
		if r == 'a' || r == 'b' || r == 'c' {
			t.Fatalf("generated excluded %q", r)
		}
		if r < 0x20 || r > 0x7E {
			t.Fatalf("generated %q outside the printable domain", r)
		}
		seen[r] = true
	}
	if want := 0x7E - 0x20 + 1 - 3; len(seen) != want {
		t.Errorf("visited %d characters, want %d", len(seen), want)
	}
}

func TestNestedClassUnion(t *testing.T) {
	prog := MustCompile(syntax.MustParse("[a-d[m-p]]"))
	src := random.New(5)
	seen := make(map[rune]bool)
	for i := 0; i < 2000; i++ {
		r := []rune(prog.GenerateString(src))[0]
		if !(r >= 'a' && r <= 'd') && !(r >= 'm' && r <= 'p') {
			t.Fatalf("generated %q outside [a-d] ∪ [m-p]", r)
		}
		seen[r] = true
	}
	if len(seen) != 8 {
		t.Errorf("visited %d characters, want 8", len(seen))
	}
}

func TestNestedNegatedClass(t *testing.T) {
	prog := MustCompile(syntax.MustParse("[0[^ -z]]"))
	src := random.New(6)
	for i := 0; i < 500; i++ {
		r := []rune(prog.GenerateString(src))[0]
		if r != '0' && (r < '{' || r > '~') {
			t.Fatalf("generated %q", r)
		}
	}
}

// TestClassIsUniformOverCharacters checks that overlapping members do not
// bias the draw: [aa-c] is {a, b, c}, each a third of the time.
func TestClassIsUniformOverCharacters(t *testing.T) {
	prog := MustCompile(syntax.MustParse("[aa-c]"))
	src := random.New(21)
	const n = 30000
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[prog.GenerateString(src)]++
	}
	for _, c := range []string{"a", "b", "c"} {
		if got := float64(counts[c]) / n; math.Abs(got-1.0/3) > 0.02 {
			t.Errorf("%s frequency = %.3f, want ~0.333", c, got)
		}
	}
}

func TestAlternationIsUniformOverBranches(t *testing.T) {
	prog := MustCompile(syntax.MustParse("a|bb|ccc|dddd"))
	src := random.New(8)
	const n = 20000
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[prog.GenerateString(src)]++
	}
	if len(counts) != 4 {
		t.Fatalf("branches seen: %v", counts)
	}
	for branch, c := range counts {
		if got := float64(c) / n; math.Abs(got-0.25) > 0.02 {
			t.Errorf("%s frequency = %.3f, want ~0.25", branch, got)
		}
	}
}

func TestQuantifierCountsInOutput(t *testing.T) {
	tests := []struct {
		pattern string
		lo, hi  int
	}{
		{"a{3,6}", 3, 6},
		{"a{4}", 4, 4},
		{"a{5,}", 5, 5 + syntax.UnboundedRepeat - 1},
		{"a*", 0, syntax.UnboundedRepeat - 1},
		{"a+", 1, syntax.UnboundedRepeat - 1},
		{"a?", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			prog := MustCompile(syntax.MustParse(tt.pattern))
			src := random.New(17)
			for i := 0; i < 1000; i++ {
				k := len(prog.GenerateString(src))
				if k < tt.lo || k > tt.hi {
					t.Fatalf("repetition count %d outside [%d, %d]", k, tt.lo, tt.hi)
				}
			}
		})
	}
}

func TestMaxUnbounded(t *testing.T) {
	tree := syntax.MustParse("x*")
	prog, err := Compile(tree, DefaultConfig().WithMaxUnbounded(3))
	if err != nil {
		t.Fatal(err)
	}
	src := random.New(4)
	for i := 0; i < 200; i++ {
		if n := len(prog.GenerateString(src)); n > 2 {
			t.Fatalf("len = %d, want <= 2", n)
		}
	}
}

func TestLengthBounds(t *testing.T) {
	tests := []struct {
		pattern string
		lo, hi  int
	}{
		{"", 0, 0},
		{"abc", 3, 3},
		{"a|bcd", 1, 3},
		{"(ab){2,3}", 4, 6},
		{"a?b+", 1, 1 + syntax.UnboundedRepeat - 1},
		{"(a|)", 0, 1},
		{"x{0}", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			prog := MustCompile(syntax.MustParse(tt.pattern))
			lo, hi := prog.LengthBounds()
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("LengthBounds() = (%d, %d), want (%d, %d)", lo, hi, tt.lo, tt.hi)
			}
			src := random.New(1)
			for i := 0; i < 100; i++ {
				n := utf8.RuneCountInString(prog.GenerateString(src))
				if n < lo || n > hi {
					t.Fatalf("generated length %d outside [%d, %d]", n, lo, hi)
				}
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
		expr    string
	}{
		{"[^ -~]", ErrEmptyClass, "[^ -~]"},
		{`a[^\s\S]`, ErrEmptyClass, `[^\s\S]`},
		{"((a{1000}){1000}){1000}", ErrTooLong, "((a{1000}){1000}){1000}"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Compile(syntax.MustParse(tt.pattern), DefaultConfig())
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not *CompileError", err)
			}
			if ce.Expr != tt.expr {
				t.Errorf("Expr = %q, want %q", ce.Expr, tt.expr)
			}
		})
	}
}

// TestClassSkipsSurrogates draws from ranges spanning U+D800-U+DFFF, which
// cannot be encoded, and checks every output is a member of the class.
func TestClassSkipsSurrogates(t *testing.T) {
	patterns := []string{"[\uD7FF-\uE000]", "[\u0100-\U0001F600]{3}", "[^a][\uD7F0-\uE00F]"}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			prog := MustCompile(syntax.MustParse(pattern))
			oracle := regexp.MustCompile(`^(?:` + pattern + `)$`)
			src := random.New(1)
			for i := 0; i < 2000; i++ {
				got := prog.GenerateString(src)
				if strings.ContainsRune(got, utf8.RuneError) || !oracle.MatchString(got) {
					t.Fatalf("generated %q, not in /%s/", got, pattern)
				}
			}
		})
	}

	prog := MustCompile(syntax.MustParse("[\uD7FF-\uE000]"))
	if n := prog.Set(prog.Tree().Node(prog.Tree().Body()).Children[0]).Len(); n != 2 {
		t.Errorf("class size = %d, want 2", n)
	}
}

func TestEmptyNestedClass(t *testing.T) {
	prog := MustCompile(syntax.MustParse("[a[^ -~]]"))
	if got := prog.GenerateString(random.New(1)); got != "a" {
		t.Errorf("got %q, want %q", got, "a")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"zero unbounded", DefaultConfig().WithMaxUnbounded(0), true},
		{"zero length", DefaultConfig().WithMaxLength(0), true},
		{"tiny", DefaultConfig().WithMaxUnbounded(1).WithMaxLength(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestProgramString(t *testing.T) {
	const pattern = `(foo|ba[rz])+\d{2,}?`
	prog := MustCompile(syntax.MustParse(pattern))
	if prog.String() != pattern {
		t.Errorf("String() = %q, want %q", prog.String(), pattern)
	}
	if prog.Tree().Pattern() != pattern {
		t.Errorf("Tree().Pattern() = %q", prog.Tree().Pattern())
	}
}

func TestSetAccessor(t *testing.T) {
	prog := MustCompile(syntax.MustParse(`[a-c]x`))
	tree := prog.Tree()
	seq := tree.Node(tree.Body())
	if s := prog.Set(seq.Children[0]); s == nil || s.Len() != 3 {
		t.Errorf("class set = %v", s)
	}
	if s := prog.Set(seq.Children[1]); s != nil {
		t.Errorf("literal has set %v", s)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic")
		}
	}()
	MustCompile(syntax.MustParse("[^ -~]"))
}
