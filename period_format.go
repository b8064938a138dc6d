package chronofmt

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/shibukawa/chronofmt/cursor"
	"github.com/shibukawa/chronofmt/pattern"
)

const periodTypeName = "Period"

// Maximum repeat count per period field letter. Period values are unbounded,
// so integer fields pad up to ten digits; the fraction letters stay at three.
var periodMaxRepeat = map[rune]int{
	'y': 10, 'M': 10, 'w': 10, 'd': 10, 'H': 10, 'm': 10, 's': 10,
	'f': 3, 'S': 1, 'h': 2,
}

func isPeriodFieldLetter(r rune) bool {
	_, ok := periodMaxRepeat[r]
	return ok
}

// PeriodFormatter executes an immutable node list built by
// PeriodFormatterBuilder or CompilePeriodPattern. Formatters are safe for
// concurrent reuse.
type PeriodFormatter struct {
	nodes  []periodNode
	fields FieldSet
}

// WithFields returns a formatter whose parses resolve into the given field
// set; unsupported fields are skipped per node policy. The default is
// StandardFields.
func (f *PeriodFormatter) WithFields(fields FieldSet) *PeriodFormatter {
	return &PeriodFormatter{nodes: f.nodes, fields: fields}
}

// Format renders p. Printing a well-formed period never fails.
func (f *PeriodFormatter) Format(p Period) string {
	var sb strings.Builder

	f.AppendFormat(&sb, p)

	return sb.String()
}

// AppendFormat renders p into a caller-supplied builder.
func (f *PeriodFormatter) AppendFormat(sb *strings.Builder, p Period) {
	for _, n := range f.nodes {
		n.print(sb, p, Invariant)
	}
}

// Parse parses text with no whitespace allowances.
func (f *PeriodFormatter) Parse(text string) (Period, error) {
	return f.ParseStyled(text, StyleNone)
}

// ParseStyled parses text, tolerating whitespace per styles.
func (f *PeriodFormatter) ParseStyled(text string, styles ParseStyles) (Period, error) {
	p, perr := f.parse(text, styles)
	if perr != nil {
		return Period{}, perr
	}

	return p, nil
}

func (f *PeriodFormatter) parse(text string, styles ParseStyles) (Period, *ParseError) {
	if text == "" {
		return Period{}, newParseError(FailureValueStringEmpty, -1)
	}

	cur, err := cursor.New(text)
	if err != nil {
		return Period{}, newParseError(FailureValueStringEmpty, -1)
	}

	cur.MoveNext()

	if styles.has(AllowLeadingWhite) {
		cur.SkipWhitespace()
	}

	bucket := &periodBucket{fields: f.fields}

	for i, n := range f.nodes {
		if i > 0 && styles.has(AllowInnerWhite) {
			cur.SkipWhitespace()
		}

		if perr := n.parse(cur, bucket, Invariant); perr != nil {
			return Period{}, perr
		}
	}

	if rest := cur.Remainder(); rest != "" {
		if !styles.has(AllowTrailingWhite) || !isAllWhitespace(rest) {
			return Period{}, newParseError(FailureExtraValueCharacters, cur.Index(), rest)
		}
	}

	return bucket.resolve(), nil
}

// CompilePeriodPattern compiles a period format pattern. Field letters are
// y/M/w/d (date), H/m/s (time), f (milliseconds) and S (seconds with
// milliseconds); quoted runs and other characters are literals. Periods have
// no standard formats, so a bare one-letter pattern is an unknown standard
// format; use "%y" for a single unpadded field.
func CompilePeriodPattern(patternText string) (*PeriodFormatter, error) {
	f, perr := compilePeriodPattern(patternText)
	if perr != nil {
		return nil, perr
	}

	return f, nil
}

func compilePeriodPattern(patternText string) (*PeriodFormatter, *ParseError) {
	if patternText == "" {
		return nil, newParseError(FailureFormatStringEmpty, -1)
	}

	if utf8.RuneCountInString(patternText) == 1 {
		letter, _ := utf8.DecodeRuneInString(patternText)
		if letter == 'h' {
			return nil, newParseError(FailureHour12PatternNotSupported, 0, periodTypeName)
		}

		return nil, newParseError(FailureUnknownStandardFormat, 0, string(letter), periodTypeName)
	}

	items, err := pattern.New(patternText, isPeriodFieldLetter).All()
	if err != nil {
		return nil, scanError(err)
	}

	builder := NewPeriodFormatterBuilder()

	for _, item := range items {
		if item.Kind == pattern.Literal {
			builder.nodes = append(builder.nodes, &periodLiteralNode{text: item.Text, source: item.Source})
			builder.lastField = nil

			continue
		}

		if item.Letter == 'h' {
			return nil, newParseError(FailureHour12PatternNotSupported, -1, periodTypeName)
		}

		if max := periodMaxRepeat[item.Letter]; item.Count > max {
			return nil, newParseError(FailureRepeatCountExceeded, -1, string(item.Letter), max)
		}

		builder.MinimumPrintedDigits(item.Count)

		switch item.Letter {
		case 'y':
			builder.AppendYears()
		case 'M':
			builder.AppendMonths()
		case 'w':
			builder.AppendWeeks()
		case 'd':
			builder.AppendDays()
		case 'H':
			builder.AppendHours()
		case 'm':
			builder.AppendMinutes()
		case 's':
			builder.AppendSeconds()
		case 'f':
			builder.AppendMillis()
		case 'S':
			builder.AppendSecondsWithMillis()
		}

		builder.lastField.patternText = item.Text
	}

	f, buildErr := builder.Build()
	if buildErr != nil {
		return nil, newParseError(FailureFormatElementInvalid, -1, buildErr.Error())
	}

	return f, nil
}

// FormatPeriod renders p with a compiled pattern.
func FormatPeriod(p Period, patternText string) (string, error) {
	f, perr := compilePeriodPattern(patternText)
	if perr != nil {
		return "", perr
	}

	return f.Format(p), nil
}

// ParsePeriod parses text against a single period pattern.
func ParsePeriod(text, patternText string, styles ParseStyles) (Period, error) {
	if text == "" {
		return Period{}, newParseError(FailureValueStringEmpty, -1)
	}

	f, perr := compilePeriodPattern(patternText)
	if perr != nil {
		return Period{}, perr
	}

	return f.ParseStyled(text, styles)
}

// MustParsePeriod is ParsePeriod for programmatically correct inputs; it
// panics on any failure.
func MustParsePeriod(text, patternText string, styles ParseStyles) Period {
	p, err := ParsePeriod(text, patternText, styles)
	if err != nil {
		panic(err)
	}

	return p
}

// ParsePeriodMultiple tries each pattern in order against a fresh cursor and
// bucket, returning the first success. NUL characters split elements into
// further alternatives, as for offsets.
func ParsePeriodMultiple(text string, patterns []string, styles ParseStyles) (Period, error) {
	if patterns == nil {
		return Period{}, argumentNullError("patterns")
	}

	if text == "" {
		return Period{}, newParseError(FailureValueStringEmpty, -1)
	}

	if len(patterns) == 0 {
		return Period{}, newParseError(FailureFormatStringEmpty, -1)
	}

	var combined error

	for _, element := range patterns {
		for _, alt := range strings.Split(element, "\x00") {
			if alt == "" {
				return Period{}, newParseError(FailureFormatElementInvalid, -1)
			}

			f, perr := compilePeriodPattern(alt)
			if perr != nil {
				combined = multierr.Append(combined, perr)
				continue
			}

			p, err := f.ParseStyled(text, styles)
			if err == nil {
				return p, nil
			}

			combined = multierr.Append(combined, err)
		}
	}

	return Period{}, combined
}

// MustParsePeriodMultiple panics when no alternative matches.
func MustParsePeriodMultiple(text string, patterns []string, styles ParseStyles) Period {
	p, err := ParsePeriodMultiple(text, patterns, styles)
	if err != nil {
		panic(err)
	}

	return p
}
