// Package cursor provides a bounds-checked iterator over an input string,
// used by both pattern compilation and value parsing. The cursor keeps an
// explicit index in [-1, len]: -1 is the "before start" sentinel and len is
// the "after end" sentinel. Every operation reports failure by return value
// and leaves the cursor in a well-defined position, so callers decide whether
// a failed step is fatal or just means "try the next alternative".
package cursor

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyValue is returned when a cursor is constructed over an empty string.
var ErrEmptyValue = errors.New("cursor: value must not be empty")

// Nul is the rune reported by Current at the two boundary positions.
const Nul = '\x00'

// Cursor is a single-owner, per-call iterator. It must not be shared between
// in-flight parse operations.
type Cursor struct {
	src []rune
	idx int
}

// New creates a cursor positioned before the first rune of value.
func New(value string) (*Cursor, error) {
	if value == "" {
		return nil, ErrEmptyValue
	}

	return &Cursor{src: []rune(value), idx: -1}, nil
}

// Value returns the full input string.
func (c *Cursor) Value() string {
	return string(c.src)
}

// Len returns the input length in runes.
func (c *Cursor) Len() int {
	return len(c.src)
}

// Index returns the current position, -1 before the start and Len() past the end.
func (c *Cursor) Index() int {
	return c.idx
}

// Current returns the rune at the current position, or Nul at either boundary.
func (c *Cursor) Current() rune {
	if c.idx < 0 || c.idx >= len(c.src) {
		return Nul
	}

	return c.src[c.idx]
}

// HasMore reports whether the cursor points at a valid rune.
func (c *Cursor) HasMore() bool {
	return c.idx >= 0 && c.idx < len(c.src)
}

// MoveNext advances one position. It returns false and clamps at the end
// sentinel when there is no next rune.
func (c *Cursor) MoveNext() bool {
	return c.Move(c.idx + 1)
}

// MovePrevious steps back one position, clamping at the start sentinel.
func (c *Cursor) MovePrevious() bool {
	return c.Move(c.idx - 1)
}

// MoveCurrent re-validates the current position without moving.
func (c *Cursor) MoveCurrent() bool {
	return c.Move(c.idx)
}

// Move jumps to target. Targets outside [-1, Len()] clamp to the nearest
// boundary and report false; boundary positions themselves are valid targets
// but also report false since no rune is readable there.
func (c *Cursor) Move(target int) bool {
	switch {
	case target < 0:
		c.idx = -1
		return false
	case target >= len(c.src):
		c.idx = len(c.src)
		return false
	default:
		c.idx = target
		return true
	}
}

// Match consumes r if it is the current rune.
func (c *Cursor) Match(r rune) bool {
	if c.Current() != r {
		return false
	}

	c.MoveNext()

	return true
}

// MatchText consumes text if the input at the current position equals it
// exactly. The cursor is unmoved on mismatch.
func (c *Cursor) MatchText(text string) bool {
	return c.matchText(text, false)
}

// MatchTextFold is MatchText with Unicode case folding, used for period
// affix matching.
func (c *Cursor) MatchTextFold(text string) bool {
	return c.matchText(text, true)
}

func (c *Cursor) matchText(text string, fold bool) bool {
	want := []rune(text)
	if len(want) == 0 || c.idx < 0 || c.idx+len(want) > len(c.src) {
		return false
	}

	have := c.src[c.idx : c.idx+len(want)]
	if fold {
		if !strings.EqualFold(string(have), text) {
			return false
		}
	} else if string(have) != text {
		return false
	}

	c.Move(c.idx + len(want))

	return true
}

// ParseDigits consumes up to maxDigits consecutive decimal digits starting at
// the current position. It fails, leaving the cursor unmoved, when fewer than
// minDigits are available. On success the cursor rests on the first non-digit
// rune (or the end sentinel).
func (c *Cursor) ParseDigits(minDigits, maxDigits int) (int64, bool) {
	if c.idx < 0 {
		return 0, false
	}

	var (
		value int64
		count int
	)

	pos := c.idx
	for count < maxDigits && pos < len(c.src) {
		d := c.src[pos]
		if d < '0' || d > '9' {
			break
		}

		value = value*10 + int64(d-'0')
		count++
		pos++
	}

	if count < minDigits {
		return 0, false
	}

	c.Move(pos)

	return value, true
}

// SkipWhitespace advances past consecutive whitespace runes. It returns false
// when doing so runs off the end of the input.
func (c *Cursor) SkipWhitespace() bool {
	for c.HasMore() && unicode.IsSpace(c.Current()) {
		c.MoveNext()
	}

	return c.HasMore()
}

// Remainder returns the unconsumed input from the current position onward.
func (c *Cursor) Remainder() string {
	if c.idx < 0 {
		return string(c.src)
	}

	if c.idx >= len(c.src) {
		return ""
	}

	return string(c.src[c.idx:])
}
