// Package chronofmt is a pattern-driven text codec for time offsets and
// periods. A format pattern compiles once into an immutable list of
// printer/parser nodes; formatting executes the nodes into a string builder,
// parsing executes them against a cursor over the input and accumulates field
// values in a per-call bucket that resolves into an Offset or Period.
//
// Offsets use pattern strings ("H:mm:ss.fff", standard one-letter formats
// like "g" or "n"); periods use either pattern strings or the
// PeriodFormatterBuilder API with per-field zero-printing policies and
// affixes. Every failure is a *ParseError carrying a FailureKind, its message
// parameters, and the input position, and unwraps to a per-kind sentinel
// error.
package chronofmt
