// Package pattern scans format-pattern strings into a flat item list: literal
// runs and repeated-letter field specifiers. The scanner is shared by the
// offset and period compilers; it knows nothing about field semantics beyond
// a caller-supplied "is this rune a field letter" predicate. Per-type rules
// (repeat limits, standard formats, separators) live with each compiler.
package pattern

import (
	"errors"
	"fmt"
	"iter"
)

// Scan errors. Callers map these onto their structured failure records.
var (
	ErrPercentDoubled  = errors.New("pattern: '%' must not be followed by another '%'")
	ErrPercentAtEnd    = errors.New("pattern: '%' at end of format string")
	ErrEscapeAtEnd     = errors.New("pattern: escape character at end of format string")
	ErrMissingEndQuote = errors.New("pattern: missing closing quote")
)

// ItemKind discriminates scanner items.
type ItemKind int

const (
	// Literal is fixed text that must be printed and matched verbatim.
	Literal ItemKind = iota
	// Field is a run of identical pattern letters, e.g. "HH" or "fff".
	Field
)

// Source records where a literal item came from; parse mismatches report a
// different failure kind per source.
type Source int

const (
	// Plain is a bare character in the pattern.
	Plain Source = iota
	// Quoted text came from a single-quoted run.
	Quoted
	// Escaped text came from a backslash escape.
	Escaped
)

// Item is one element of a scanned pattern.
type Item struct {
	Kind   ItemKind
	Text   string // literal text, or the letter run for fields
	Letter rune   // field letter
	Count  int    // field run length
	Source Source
}

// Scanner walks a pattern string rune by rune.
type Scanner struct {
	pattern string
	isField func(rune) bool
}

// New creates a scanner. isField reports whether a rune is a field letter for
// the target type; non-field runes become plain literals.
func New(pattern string, isField func(rune) bool) *Scanner {
	return &Scanner{pattern: pattern, isField: isField}
}

// Items returns an iterator over scanned items. Scanning stops at the first
// error; the error is yielded with a zero Item.
func (s *Scanner) Items() iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		src := []rune(s.pattern)
		pos := 0

		for pos < len(src) {
			r := src[pos]
			switch {
			case r == '\'':
				text, next, err := scanQuoted(src, pos)
				if err != nil {
					yield(Item{}, err)
					return
				}

				pos = next
				if !yield(Item{Kind: Literal, Text: text, Source: Quoted}, nil) {
					return
				}
			case r == '\\':
				if pos+1 >= len(src) {
					yield(Item{}, ErrEscapeAtEnd)
					return
				}

				pos += 2
				if !yield(Item{Kind: Literal, Text: string(src[pos-1]), Source: Escaped}, nil) {
					return
				}
			case r == '%':
				if pos+1 >= len(src) {
					yield(Item{}, ErrPercentAtEnd)
					return
				}

				next := src[pos+1]
				if next == '%' {
					yield(Item{}, ErrPercentDoubled)
					return
				}

				pos += 2

				var item Item
				if s.isField(next) {
					item = Item{Kind: Field, Text: string(next), Letter: next, Count: 1}
				} else {
					item = Item{Kind: Literal, Text: string(next), Source: Escaped}
				}

				if !yield(item, nil) {
					return
				}
			case s.isField(r):
				count := 1
				for pos+count < len(src) && src[pos+count] == r {
					count++
				}

				pos += count
				if !yield(Item{Kind: Field, Text: repeatRune(r, count), Letter: r, Count: count}, nil) {
					return
				}
			default:
				pos++
				if !yield(Item{Kind: Literal, Text: string(r), Source: Plain}, nil) {
					return
				}
			}
		}
	}
}

// All collects every item, stopping at the first scan error.
func (s *Scanner) All() ([]Item, error) {
	items := make([]Item, 0, 8)

	for item, err := range s.Items() {
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// scanQuoted consumes a single-quoted run starting at the opening quote.
// Backslash escapes the next rune (including a quote) without terminating the
// run. Returns the literal text and the position just past the closing quote.
func scanQuoted(src []rune, start int) (string, int, error) {
	text := make([]rune, 0, 8)
	pos := start + 1

	for pos < len(src) {
		switch src[pos] {
		case '\'':
			return string(text), pos + 1, nil
		case '\\':
			if pos+1 >= len(src) {
				return "", 0, ErrEscapeAtEnd
			}

			text = append(text, src[pos+1])
			pos += 2
		default:
			text = append(text, src[pos])
			pos++
		}
	}

	return "", 0, fmt.Errorf("%w: %q", ErrMissingEndQuote, '\'')
}

func repeatRune(r rune, count int) string {
	runes := make([]rune, count)
	for i := range runes {
		runes[i] = r
	}

	return string(runes)
}
