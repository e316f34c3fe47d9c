// Package regforge generates random strings that match a regular expression.
//
// A pattern is parsed once into a syntax tree, every character class is
// flattened into a set of code points, and each Generate call walks the tree
// drawing choices from a seeded random source. The same seed and the same
// sequence of calls always produce the same strings.
//
// Basic usage:
//
//	gen, err := regforge.Compile(`[a-z]{3,8}@example\.(com|org)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src := random.New(42)
//	fmt.Println(gen.Generate(src))
//
// Repeated patterns:
//
//	// Package-level Generate keeps compiled generators in a bounded cache
//	s, err := regforge.Generate(`\d{3}-\d{4}`, src)
//
// Dialect:
//   - literals, '.', groups '(...)' and '|' at any nesting level
//   - quantifiers '?', '*', '+', '{n}', '{n,}', '{n,m}', each with an optional lazy '?'
//   - classes '[...]' with ranges, leading '^' negation, escapes and nested classes
//   - escapes \d \D \w \W \s \S, control characters \n \t \r \f \a \e,
//     and any of []{}()<>?+*-=!.|^$\ as a literal
//
// Negated classes, '.', \D, \W and \S draw from printable ASCII (0x20-0x7E).
// Unbounded quantifiers repeat fewer than Config.MaxUnbounded times.
package regforge

import (
	"strings"

	"github.com/coregx/regforge/forge"
	"github.com/coregx/regforge/internal/screen"
	"github.com/coregx/regforge/random"
	"github.com/coregx/regforge/syntax"
)

// Source is the randomness a Generator draws from. random.New returns a
// seeded implementation.
type Source = random.Source

// Generator produces strings matching a compiled pattern.
//
// A Generator is immutable and safe to use concurrently from multiple
// goroutines as long as each goroutine uses its own Source.
//
// Example:
//
//	gen := regforge.MustCompile(`[A-Z][a-z]+`)
//	name := gen.Generate(random.New(1))
type Generator struct {
	prog    *forge.Program
	screen  *screen.Screen
	config  Config
	pattern string
}

// Compile parses a pattern and returns a Generator for it.
//
// Returns a *CompileError wrapping a *syntax.Error if the pattern is
// invalid, or a forge error if it cannot be generated (for example a
// negated class that excludes every printable character).
//
// Example:
//
//	gen, err := regforge.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Generator, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var phone = regforge.MustCompile(`\(\d{3}\) \d{3}-\d{4}`)
func MustCompile(pattern string) *Generator {
	gen, err := Compile(pattern)
	if err != nil {
		panic("regforge: Compile(`" + pattern + "`): " + err.Error())
	}
	return gen
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := regforge.DefaultConfig().WithExclude("admin", "root")
//	gen, err := regforge.CompileWithConfig(`[a-z]{4,5}`, config)
func CompileWithConfig(pattern string, config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tree, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	prog, err := forge.Compile(tree, config.forgeConfig())
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	scr, err := screen.New(config.Exclude)
	if err != nil {
		return nil, &ConfigError{Field: "Exclude", Err: err}
	}

	return &Generator{
		prog:    prog,
		screen:  scr,
		config:  config,
		pattern: pattern,
	}, nil
}

// Generate returns a random string matching the pattern.
//
// Without Config.Exclude every call succeeds. With it, Generate panics
// where TryGenerate would return ErrExhausted; use TryGenerate when the
// deny-list may cover everything the pattern can produce.
func (g *Generator) Generate(src Source) string {
	s, err := g.TryGenerate(src)
	if err != nil {
		panic("regforge: Generate(`" + g.pattern + "`): " + err.Error())
	}
	return s
}

// TryGenerate returns a random string matching the pattern that contains
// none of the words in Config.Exclude.
//
// Each rejected candidate consumes randomness, so the result is still a
// pure function of the source state. Returns an *ExhaustedError wrapping
// ErrExhausted after Config.MaxAttempts rejected candidates.
func (g *Generator) TryGenerate(src Source) (string, error) {
	if g.screen.Len() == 0 {
		return g.prog.GenerateString(src), nil
	}

	var last string
	for i := 0; i < g.config.MaxAttempts; i++ {
		last = g.prog.GenerateString(src)
		if !g.screen.Contains(last) {
			return last, nil
		}
	}
	return "", &ExhaustedError{Pattern: g.pattern, Attempts: g.config.MaxAttempts, Last: last}
}

// GenerateN returns n strings drawn in sequence from src.
// Returns nil if n <= 0.
func (g *Generator) GenerateN(src Source, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.Generate(src)
	}
	return out
}

// String returns the pattern re-serialized from the parsed tree.
// For every accepted pattern it equals the source text.
func (g *Generator) String() string {
	return g.prog.String()
}

// Pattern returns the source text used to compile the generator.
func (g *Generator) Pattern() string {
	return g.pattern
}

// LengthBounds returns the shortest and longest number of characters the
// generator can produce.
func (g *Generator) LengthBounds() (minLen, maxLen int) {
	return g.prog.LengthBounds()
}

// Config returns the configuration the generator was compiled with.
func (g *Generator) Config() Config {
	c := g.config
	c.Exclude = g.screen.Words()
	return c
}

// QuoteMeta returns a pattern that generates exactly s, escaping every
// character that has special meaning in the dialect.
//
// Example:
//
//	escaped := regforge.QuoteMeta("1+1=2?")
//	// escaped = `1\+1\=2\?`
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]{}^$-=!<>`

	if !strings.ContainsAny(s, special) {
		return s
	}

	var b strings.Builder
	b.Grow(2 * len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
