package chronofmt

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseErrorUnwrapsToSentinel(t *testing.T) {
	err := newParseError(FailureMismatchedNumber, 3, "HH")

	assert.True(t, errors.Is(err, ErrMismatchedNumber))
	assert.False(t, errors.Is(err, ErrMismatchedCharacter))
}

func TestParseErrorMessage(t *testing.T) {
	err := newParseError(FailureExtraValueCharacters, 1, ":")
	msg := err.Error()

	assert.True(t, strings.Contains(msg, `":"`))
	assert.True(t, strings.Contains(msg, "position 1"))

	nullErr := argumentNullError("patterns")
	assert.True(t, strings.Contains(nullErr.Error(), "patterns"))
	assert.True(t, errors.Is(nullErr, ErrArgumentNull))
}

func TestParseErrorKindSurvivesAs(t *testing.T) {
	_, err := ParseOffset("2:", "%H", Invariant, StyleNone)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, FailureExtraValueCharacters, perr.Kind)
	assert.Equal(t, []any{":"}, perr.Params)
}
