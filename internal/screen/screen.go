// Package screen rejects strings that contain any word from a deny-list.
//
// The words are compiled once into an Aho-Corasick automaton, so a check is
// a single pass over the candidate regardless of how many words are listed.
package screen

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// ErrEmptyWord indicates an empty deny-list entry, which would reject
// every string.
var ErrEmptyWord = errors.New("screen: empty word")

// Screen is an immutable deny-list. The zero value and nil both allow
// everything. Safe for concurrent use.
type Screen struct {
	words []string
	auto  *ahocorasick.Automaton
}

// New compiles words into a Screen. Duplicate words are kept; they do not
// change the result.
func New(words []string) (*Screen, error) {
	s := &Screen{words: append([]string(nil), words...)}
	if len(words) == 0 {
		return s, nil
	}

	builder := ahocorasick.NewBuilder()
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w at index %d", ErrEmptyWord, i)
		}
		builder.AddPattern([]byte(w))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("screen: build automaton: %w", err)
	}
	s.auto = auto
	return s, nil
}

// Contains reports whether text contains any denied word.
func (s *Screen) Contains(text string) bool {
	if s == nil || s.auto == nil {
		return false
	}
	return s.auto.IsMatch([]byte(text))
}

// Find returns the byte offsets of the leftmost denied word in text.
func (s *Screen) Find(text string) (start, end int, ok bool) {
	if s == nil || s.auto == nil {
		return 0, 0, false
	}
	m := s.auto.Find([]byte(text), 0)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

// Words returns a copy of the deny-list.
func (s *Screen) Words() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.words...)
}

// Len returns the number of words.
func (s *Screen) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
