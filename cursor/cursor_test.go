package cursor

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewRejectsEmptyValue(t *testing.T) {
	_, err := New("")
	assert.IsError(t, err, ErrEmptyValue)
}

func TestMovement(t *testing.T) {
	cur, err := New("abc")
	assert.NoError(t, err)

	assert.Equal(t, -1, cur.Index())
	assert.Equal(t, rune(Nul), cur.Current())

	assert.True(t, cur.MoveNext())
	assert.Equal(t, 'a', cur.Current())

	assert.True(t, cur.MoveNext())
	assert.True(t, cur.MoveNext())
	assert.Equal(t, 'c', cur.Current())

	// Past the last rune: clamp at the end sentinel.
	assert.False(t, cur.MoveNext())
	assert.Equal(t, 3, cur.Index())
	assert.Equal(t, rune(Nul), cur.Current())
	assert.False(t, cur.MoveNext())
	assert.Equal(t, 3, cur.Index())

	assert.True(t, cur.MovePrevious())
	assert.Equal(t, 'c', cur.Current())

	assert.True(t, cur.MoveCurrent())
	assert.Equal(t, 'c', cur.Current())
}

func TestMoveClampsOutOfRangeTargets(t *testing.T) {
	cur, err := New("abc")
	assert.NoError(t, err)

	assert.True(t, cur.Move(1))
	assert.Equal(t, 'b', cur.Current())

	assert.False(t, cur.Move(-5))
	assert.Equal(t, -1, cur.Index())

	assert.False(t, cur.Move(99))
	assert.Equal(t, 3, cur.Index())
}

func TestMatch(t *testing.T) {
	cur, err := New("x=1")
	assert.NoError(t, err)
	cur.MoveNext()

	assert.True(t, cur.Match('x'))
	assert.Equal(t, '=', cur.Current())
	assert.False(t, cur.Match('!'))
	assert.Equal(t, '=', cur.Current())
}

func TestMatchText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		match   string
		fold    bool
		ok      bool
		wantIdx int
	}{
		{name: "exact match advances", input: "hours", match: "hou", ok: true, wantIdx: 3},
		{name: "mismatch leaves cursor", input: "hours", match: "min", ok: false, wantIdx: 0},
		{name: "case-sensitive by default", input: "Hours", match: "hou", ok: false, wantIdx: 0},
		{name: "fold matches mixed case", input: "Hours", match: "hou", fold: true, ok: true, wantIdx: 3},
		{name: "too long for remaining input", input: "ab", match: "abc", ok: false, wantIdx: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur, err := New(tt.input)
			assert.NoError(t, err)
			cur.MoveNext()

			var ok bool
			if tt.fold {
				ok = cur.MatchTextFold(tt.match)
			} else {
				ok = cur.MatchText(tt.match)
			}

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantIdx, cur.Index())
		})
	}
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		min, max  int
		wantValue int64
		wantOK    bool
		wantIdx   int
	}{
		{name: "consumes up to max", input: "12345", min: 1, max: 3, wantValue: 123, wantOK: true, wantIdx: 3},
		{name: "stops at non-digit", input: "12:34", min: 1, max: 4, wantValue: 12, wantOK: true, wantIdx: 2},
		{name: "fails below min", input: "1:23", min: 2, max: 2, wantOK: false, wantIdx: 0},
		{name: "no digits at all", input: ":23", min: 1, max: 2, wantOK: false, wantIdx: 0},
		{name: "zero min succeeds empty", input: ":23", min: 0, max: 2, wantValue: 0, wantOK: true, wantIdx: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur, err := New(tt.input)
			assert.NoError(t, err)
			cur.MoveNext()

			value, ok := cur.ParseDigits(tt.min, tt.max)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIdx, cur.Index())

			if tt.wantOK {
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestSkipWhitespace(t *testing.T) {
	cur, err := New("  \t12")
	assert.NoError(t, err)
	cur.MoveNext()

	assert.True(t, cur.SkipWhitespace())
	assert.Equal(t, '1', cur.Current())

	end, err := New("   ")
	assert.NoError(t, err)
	end.MoveNext()

	assert.False(t, end.SkipWhitespace())
}

func TestRemainder(t *testing.T) {
	cur, err := New("12:34")
	assert.NoError(t, err)
	cur.MoveNext()

	_, ok := cur.ParseDigits(1, 2)
	assert.True(t, ok)
	assert.Equal(t, ":34", cur.Remainder())

	cur.Move(cur.Len())
	assert.Equal(t, "", cur.Remainder())
}
