package chronofmt

import (
	"strings"

	"go.uber.org/multierr"

	"github.com/shibukawa/chronofmt/cursor"
	"github.com/shibukawa/chronofmt/pattern"
)

// FormatOffset renders v with the given pattern. An empty pattern resolves to
// the general format "g"; one-letter patterns resolve through the standard
// format table; anything else compiles as a custom pattern. A nil culture
// means Invariant.
func FormatOffset(v Offset, patternText string, c *Culture) (string, error) {
	if c == nil {
		c = Invariant
	}

	if patternText == "" {
		patternText = "g"
	}

	nodes, perr := compileOffsetPattern(patternText, StyleNone)
	if perr != nil {
		return "", perr
	}

	var sb strings.Builder
	for _, n := range nodes {
		n.print(&sb, v, c)
	}

	return sb.String(), nil
}

// ParseOffset parses text against a single pattern. Failures are reported as
// a *ParseError carrying the failure kind and its parameters.
func ParseOffset(text, patternText string, c *Culture, styles ParseStyles) (Offset, error) {
	if text == "" {
		return Offset{}, newParseError(FailureValueStringEmpty, -1)
	}

	if patternText == "" {
		return Offset{}, newParseError(FailureFormatStringEmpty, -1)
	}

	v, perr := parseOffsetOne(text, patternText, c, styles)
	if perr != nil {
		return Offset{}, perr
	}

	return v, nil
}

// MustParseOffset is ParseOffset for programmatically correct inputs; it
// panics on any failure.
func MustParseOffset(text, patternText string, c *Culture, styles ParseStyles) Offset {
	v, err := ParseOffset(text, patternText, c, styles)
	if err != nil {
		panic(err)
	}

	return v
}

// ParseOffsetMultiple tries each pattern in order against a fresh cursor and
// bucket, returning the first success. A NUL character inside a pattern
// element splits it into further alternatives. When every alternative fails,
// the combined failures are returned.
func ParseOffsetMultiple(text string, patterns []string, c *Culture, styles ParseStyles) (Offset, error) {
	if patterns == nil {
		return Offset{}, argumentNullError("patterns")
	}

	if text == "" {
		return Offset{}, newParseError(FailureValueStringEmpty, -1)
	}

	if len(patterns) == 0 {
		return Offset{}, newParseError(FailureFormatStringEmpty, -1)
	}

	var combined error

	for _, element := range patterns {
		for _, alt := range strings.Split(element, "\x00") {
			if alt == "" {
				return Offset{}, newParseError(FailureFormatElementInvalid, -1)
			}

			v, err := parseOffsetOne(text, alt, c, styles)
			if err == nil {
				return v, nil
			}

			combined = multierr.Append(combined, err)
		}
	}

	return Offset{}, combined
}

// MustParseOffsetMultiple panics when no alternative matches.
func MustParseOffsetMultiple(text string, patterns []string, c *Culture, styles ParseStyles) Offset {
	v, err := ParseOffsetMultiple(text, patterns, c, styles)
	if err != nil {
		panic(err)
	}

	return v
}

// compileOffsetPattern resolves and compiles one pattern, applying the
// style-driven literal whitespace trims before node construction.
func compileOffsetPattern(patternText string, styles ParseStyles) ([]offsetNode, *ParseError) {
	items, grouped, perr := resolveOffsetItems(patternText)
	if perr != nil {
		return nil, perr
	}

	if grouped {
		return []offsetNode{groupedMillisNode{}}, nil
	}

	if styles.has(AllowLeadingWhite) {
		items = pattern.TrimLeading(items)
	}

	if styles.has(AllowTrailingWhite) {
		items = pattern.TrimTrailing(items)
	}

	return compileOffsetItems(items)
}

func parseOffsetOne(text, patternText string, c *Culture, styles ParseStyles) (Offset, *ParseError) {
	if c == nil {
		c = Invariant
	}

	nodes, perr := compileOffsetPattern(patternText, styles)
	if perr != nil {
		return Offset{}, perr
	}

	cur, err := cursor.New(text)
	if err != nil {
		return Offset{}, newParseError(FailureValueStringEmpty, -1)
	}

	cur.MoveNext()

	if styles.has(AllowLeadingWhite) {
		cur.SkipWhitespace()
	}

	bucket := &offsetBucket{}

	for i, n := range nodes {
		if i > 0 && styles.has(AllowInnerWhite) {
			cur.SkipWhitespace()
		}

		if perr := n.parse(cur, bucket, c); perr != nil {
			return Offset{}, perr
		}
	}

	if rest := cur.Remainder(); rest != "" {
		if !styles.has(AllowTrailingWhite) || !isAllWhitespace(rest) {
			return Offset{}, newParseError(FailureExtraValueCharacters, cur.Index(), rest)
		}
	}

	return bucket.resolve()
}
