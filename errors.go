package chronofmt

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind, so callers can classify failures
// with errors.Is without inspecting the ParseError record.
var (
	// ErrArgumentNull indicates a nil required argument such as a nil pattern list.
	ErrArgumentNull = errors.New("chronofmt: argument must not be nil")
	// ErrValueStringEmpty indicates an empty input value string.
	ErrValueStringEmpty = errors.New("chronofmt: value string must not be empty")
	// ErrFormatStringEmpty indicates an empty format pattern in a single-pattern call.
	ErrFormatStringEmpty = errors.New("chronofmt: format string must not be empty")
	// ErrFormatElementInvalid indicates an empty element inside a multi-pattern list.
	ErrFormatElementInvalid = errors.New("chronofmt: format element is invalid")
	// ErrUnknownStandardFormat indicates a one-letter pattern with no standard-format entry.
	ErrUnknownStandardFormat = errors.New("chronofmt: unknown standard format")

	// ErrPercentDoubled indicates "%%" in a pattern.
	ErrPercentDoubled = errors.New("chronofmt: '%' must not be followed by another '%'")
	// ErrPercentAtEndOfString indicates a trailing '%' in a pattern.
	ErrPercentAtEndOfString = errors.New("chronofmt: '%' at end of format string")
	// ErrEscapeAtEndOfString indicates a trailing '\' in a pattern.
	ErrEscapeAtEndOfString = errors.New("chronofmt: escape character at end of format string")
	// ErrMissingEndQuote indicates an unterminated quoted literal in a pattern.
	ErrMissingEndQuote = errors.New("chronofmt: missing closing quote in format string")
	// ErrRepeatCountExceeded indicates a field letter repeated beyond its maximum.
	ErrRepeatCountExceeded = errors.New("chronofmt: field letter repeated too many times")
	// ErrHour12PatternNotSupported indicates 'h' used with a type that has no AM/PM.
	ErrHour12PatternNotSupported = errors.New("chronofmt: 12-hour pattern is not supported by this type")

	// ErrQuotedStringMismatch indicates input that does not match a quoted literal.
	ErrQuotedStringMismatch = errors.New("chronofmt: value does not match quoted literal")
	// ErrEscapedCharacterMismatch indicates input that does not match an escaped literal.
	ErrEscapedCharacterMismatch = errors.New("chronofmt: value does not match escaped character")
	// ErrMismatchedCharacter indicates input that does not match a literal pattern character.
	ErrMismatchedCharacter = errors.New("chronofmt: value does not match literal character")
	// ErrMismatchedSpace indicates input that does not match a literal space.
	ErrMismatchedSpace = errors.New("chronofmt: value does not match space in format string")
	// ErrMismatchedNumber indicates required digits absent from the input.
	ErrMismatchedNumber = errors.New("chronofmt: value does not match required number")
	// ErrMissingDecimalSeparator indicates an absent culture decimal separator.
	ErrMissingDecimalSeparator = errors.New("chronofmt: missing decimal separator")
	// ErrTimeSeparatorMismatch indicates an absent culture time separator.
	ErrTimeSeparatorMismatch = errors.New("chronofmt: time separator mismatch")
	// ErrExtraValueCharacters indicates unconsumed input after the last pattern node.
	ErrExtraValueCharacters = errors.New("chronofmt: extra characters at end of value")
	// ErrFieldNotSupported indicates a field forced by PrintZeroAlways that the
	// target field set does not carry.
	ErrFieldNotSupported = errors.New("chronofmt: field is not supported by this type")
	// ErrValueOutOfRange indicates a parsed value outside the domain type's range.
	ErrValueOutOfRange = errors.New("chronofmt: value out of range")
)

// FailureKind classifies a formatting or parsing failure. Compile-time
// (pattern) and parse-time (value) failures share the taxonomy; both are
// recoverable through the error return.
type FailureKind int

const (
	// FailureNone is the zero kind; a ParseError never carries it.
	FailureNone FailureKind = iota
	FailureArgumentNull
	FailureValueStringEmpty
	FailureFormatStringEmpty
	FailureFormatElementInvalid
	FailureUnknownStandardFormat
	FailurePercentDoubled
	FailurePercentAtEndOfString
	FailureEscapeAtEndOfString
	FailureMissingEndQuote
	FailureQuotedStringMismatch
	FailureEscapedCharacterMismatch
	FailureMismatchedCharacter
	FailureMismatchedSpace
	FailureMismatchedNumber
	FailureMissingDecimalSeparator
	FailureTimeSeparatorMismatch
	FailureExtraValueCharacters
	FailureRepeatCountExceeded
	FailureHour12PatternNotSupported
	FailureFieldNotSupported
	FailureValueOutOfRange
)

var failureSentinels = map[FailureKind]error{
	FailureArgumentNull:              ErrArgumentNull,
	FailureValueStringEmpty:          ErrValueStringEmpty,
	FailureFormatStringEmpty:         ErrFormatStringEmpty,
	FailureFormatElementInvalid:      ErrFormatElementInvalid,
	FailureUnknownStandardFormat:     ErrUnknownStandardFormat,
	FailurePercentDoubled:            ErrPercentDoubled,
	FailurePercentAtEndOfString:      ErrPercentAtEndOfString,
	FailureEscapeAtEndOfString:       ErrEscapeAtEndOfString,
	FailureMissingEndQuote:           ErrMissingEndQuote,
	FailureQuotedStringMismatch:      ErrQuotedStringMismatch,
	FailureEscapedCharacterMismatch:  ErrEscapedCharacterMismatch,
	FailureMismatchedCharacter:       ErrMismatchedCharacter,
	FailureMismatchedSpace:           ErrMismatchedSpace,
	FailureMismatchedNumber:          ErrMismatchedNumber,
	FailureMissingDecimalSeparator:   ErrMissingDecimalSeparator,
	FailureTimeSeparatorMismatch:     ErrTimeSeparatorMismatch,
	FailureExtraValueCharacters:      ErrExtraValueCharacters,
	FailureRepeatCountExceeded:       ErrRepeatCountExceeded,
	FailureHour12PatternNotSupported: ErrHour12PatternNotSupported,
	FailureFieldNotSupported:         ErrFieldNotSupported,
	FailureValueOutOfRange:           ErrValueOutOfRange,
}

// ParseError is the structured failure record produced by every failing
// format, compile, or parse operation. Kind and Params are the contractual
// parts; the rendered message is informational only.
type ParseError struct {
	Kind FailureKind
	// Params are the values interpolated into the message, e.g. the
	// mismatched character or the unconsumed input tail.
	Params []any
	// ArgName is set only for FailureArgumentNull.
	ArgName string
	// Pos is the rune index in the value or pattern where the failure was
	// detected, or -1 when no position applies.
	Pos int
}

func newParseError(kind FailureKind, pos int, params ...any) *ParseError {
	return &ParseError{Kind: kind, Params: params, Pos: pos}
}

func argumentNullError(name string) *ParseError {
	return &ParseError{Kind: FailureArgumentNull, ArgName: name, Pos: -1}
}

// Error renders a human-readable message. Only Kind and Params are stable.
func (e *ParseError) Error() string {
	sentinel := failureSentinels[e.Kind]

	switch {
	case e.ArgName != "":
		return fmt.Sprintf("%s: %s", sentinel.Error(), e.ArgName)
	case len(e.Params) > 0:
		parts := make([]string, len(e.Params))
		for i, p := range e.Params {
			parts[i] = fmt.Sprintf("%v", p)
		}

		msg := sentinel.Error()
		for _, p := range parts {
			msg += fmt.Sprintf(" %q", p)
		}

		if e.Pos >= 0 {
			msg += fmt.Sprintf(" at position %d", e.Pos)
		}

		return msg
	case e.Pos >= 0:
		return fmt.Sprintf("%s at position %d", sentinel.Error(), e.Pos)
	default:
		return sentinel.Error()
	}
}

// Unwrap maps the kind onto its sentinel so errors.Is works.
func (e *ParseError) Unwrap() error {
	return failureSentinels[e.Kind]
}
