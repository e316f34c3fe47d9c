package charset

// Bounds of the printable domain used by the wildcard, negated classes and
// negated predefined classes.
const (
	MinPrintable rune = 0x20
	MaxPrintable rune = 0x7E
)

// Printable returns the printable ASCII domain.
func Printable() *Set {
	return New(Range{MinPrintable, MaxPrintable})
}

// Digit returns \d.
func Digit() *Set {
	return New(Range{'0', '9'})
}

// Word returns \w.
func Word() *Set {
	return New(Range{'0', '9'}, Range{'A', 'Z'}, Range{'_', '_'}, Range{'a', 'z'})
}

// Space returns \s: tab, line feed, form feed, carriage return and space.
// Vertical tab is left out so that generated text also satisfies RE2's \s.
func Space() *Set {
	return New(Range{'\t', '\n'}, Range{'\f', '\r'}, Range{' ', ' '})
}

// NotDigit returns \D within the printable domain.
func NotDigit() *Set {
	return Digit().Complement(Printable())
}

// NotWord returns \W within the printable domain.
func NotWord() *Set {
	return Word().Complement(Printable())
}

// NotSpace returns \S within the printable domain.
func NotSpace() *Set {
	return Space().Complement(Printable())
}
