package chronofmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shibukawa/chronofmt/cursor"
	"github.com/shibukawa/chronofmt/pattern"
)

const offsetTypeName = "Offset"

// Standard one-letter offset formats. "n" is handled separately since it is
// not expressible as a custom pattern.
var offsetStandardPatterns = map[rune]string{
	'g': "+H:mm:ss.FFF",
	'f': "+H:mm:ss.fff",
	'l': "+H:mm:ss",
	'm': "+H:mm",
	's': "+H",
}

// Maximum repeat count per offset field letter.
var offsetMaxRepeat = map[rune]int{
	'H': 2, 'h': 2, 'm': 2, 's': 2, 'f': 3, 'F': 3,
}

func isOffsetFieldLetter(r rune) bool {
	_, ok := offsetMaxRepeat[r]
	return ok
}

// offsetBucket accumulates parsed field magnitudes until resolution. One
// fresh bucket per parse call.
type offsetBucket struct {
	negative    bool
	hours       int64
	minutes     int64
	seconds     int64
	millis      int64
	totalMillis *int64 // set only by the "n" grouped-integer node
}

func (b *offsetBucket) resolve() (Offset, *ParseError) {
	var total int64
	if b.totalMillis != nil {
		total = *b.totalMillis
	} else {
		total = b.hours*millisPerHour + b.minutes*millisPerMinute +
			b.seconds*millisPerSecond + b.millis
	}

	if b.negative {
		total = -total
	}

	o, err := OffsetFromMillis(total)
	if err != nil {
		return Offset{}, newParseError(FailureValueOutOfRange, -1, total)
	}

	return o, nil
}

// offsetNode is one compiled step of an offset pattern.
type offsetNode interface {
	print(sb *strings.Builder, v Offset, c *Culture)
	parse(cur *cursor.Cursor, b *offsetBucket, c *Culture) *ParseError
}

// writePadded writes value left-padded with '0' to minDigits. A negative
// value contributes a '-' before the padded digits without consuming a pad
// slot. minDigits <= 0 prints the natural representation.
func writePadded(sb *strings.Builder, value int64, minDigits int) {
	if value < 0 {
		sb.WriteByte('-')
		value = -value
	}

	digits := strconv.FormatInt(value, 10)
	for i := len(digits); i < minDigits; i++ {
		sb.WriteByte('0')
	}

	sb.WriteString(digits)
}

// literalNode matches fixed text. Source decides the failure kind on mismatch.
type literalNode struct {
	text   string
	source pattern.Source
}

func (n *literalNode) print(sb *strings.Builder, _ Offset, _ *Culture) {
	sb.WriteString(n.text)
}

func (n *literalNode) parse(cur *cursor.Cursor, _ *offsetBucket, _ *Culture) *ParseError {
	if cur.MatchText(n.text) {
		return nil
	}

	return literalMismatch(n.text, n.source, cur.Index())
}

func literalMismatch(text string, source pattern.Source, pos int) *ParseError {
	switch {
	case source == pattern.Quoted:
		return newParseError(FailureQuotedStringMismatch, pos, text)
	case source == pattern.Escaped:
		return newParseError(FailureEscapedCharacterMismatch, pos, text)
	case strings.TrimSpace(text) == "":
		return newParseError(FailureMismatchedSpace, pos, text)
	default:
		return newParseError(FailureMismatchedCharacter, pos, text)
	}
}

// signNode prints/parses the offset sign. required distinguishes '+' (sign
// always present) from '-' (sign present only when negative).
type signNode struct {
	required bool
}

func (n *signNode) print(sb *strings.Builder, v Offset, _ *Culture) {
	switch {
	case v.IsNegative():
		sb.WriteByte('-')
	case n.required:
		sb.WriteByte('+')
	}
}

func (n *signNode) parse(cur *cursor.Cursor, b *offsetBucket, _ *Culture) *ParseError {
	switch cur.Current() {
	case '-':
		b.negative = true

		cur.MoveNext()
	case '+':
		cur.MoveNext()
	default:
		if n.required {
			return newParseError(FailureMismatchedCharacter, cur.Index(), "+")
		}
	}

	return nil
}

type offsetField int

const (
	offsetFieldHours offsetField = iota
	offsetFieldMinutes
	offsetFieldSeconds
)

// numberNode prints/parses one integer offset field.
type numberNode struct {
	field       offsetField
	minDigits   int
	maxDigits   int
	patternText string
}

func (n *numberNode) value(v Offset) int64 {
	switch n.field {
	case offsetFieldHours:
		return v.abs() / millisPerHour
	case offsetFieldMinutes:
		return v.abs() % millisPerHour / millisPerMinute
	default:
		return v.abs() % millisPerMinute / millisPerSecond
	}
}

func (n *numberNode) print(sb *strings.Builder, v Offset, _ *Culture) {
	writePadded(sb, n.value(v), n.minDigits)
}

func (n *numberNode) parse(cur *cursor.Cursor, b *offsetBucket, _ *Culture) *ParseError {
	value, ok := cur.ParseDigits(n.minDigits, n.maxDigits)
	if !ok {
		return newParseError(FailureMismatchedNumber, cur.Index(), n.patternText)
	}

	switch n.field {
	case offsetFieldHours:
		b.hours = value
	case offsetFieldMinutes:
		b.minutes = value
	default:
		b.seconds = value
	}

	return nil
}

// fractionNode prints/parses fractional seconds. elidable corresponds to the
// 'F' letter family; withSeparator is set when the pattern couples the field
// to the preceding culture decimal separator ('.').
type fractionNode struct {
	width         int
	elidable      bool
	withSeparator bool
	patternText   string
}

func (n *fractionNode) print(sb *strings.Builder, v Offset, c *Culture) {
	digits := fractionDigits(v.abs()%millisPerSecond, n.width)
	if n.elidable {
		digits = strings.TrimRight(digits, "0")
	}

	if digits == "" {
		return
	}

	if n.withSeparator {
		sb.WriteString(c.DecimalSeparator)
	}

	sb.WriteString(digits)
}

func (n *fractionNode) parse(cur *cursor.Cursor, b *offsetBucket, c *Culture) *ParseError {
	if n.withSeparator {
		if !cur.MatchText(c.DecimalSeparator) {
			if n.elidable {
				return nil
			}

			return newParseError(FailureMissingDecimalSeparator, cur.Index(), c.DecimalSeparator)
		}
	}

	minDigits := n.width
	if n.elidable {
		// A matched separator still demands at least one digit; without a
		// separator in the pattern the whole field may be absent.
		if n.withSeparator {
			minDigits = 1
		} else {
			minDigits = 0
		}
	}

	start := cur.Index()

	value, ok := cur.ParseDigits(minDigits, n.width)
	if !ok {
		return newParseError(FailureMismatchedNumber, cur.Index(), n.patternText)
	}

	digitCount := cur.Index() - start
	if digitCount > 0 {
		b.millis = fractionToMillis(fmt.Sprintf("%0*d", digitCount, value))
	}

	return nil
}

// timeSeparatorNode matches the culture's time separator for ':'.
type timeSeparatorNode struct{}

func (timeSeparatorNode) print(sb *strings.Builder, _ Offset, c *Culture) {
	sb.WriteString(c.TimeSeparator)
}

func (timeSeparatorNode) parse(cur *cursor.Cursor, _ *offsetBucket, c *Culture) *ParseError {
	if cur.MatchText(c.TimeSeparator) {
		return nil
	}

	return newParseError(FailureTimeSeparatorMismatch, cur.Index(), c.TimeSeparator)
}

// decimalSeparatorNode matches a bare '.' with no fraction field after it.
type decimalSeparatorNode struct{}

func (decimalSeparatorNode) print(sb *strings.Builder, _ Offset, c *Culture) {
	sb.WriteString(c.DecimalSeparator)
}

func (decimalSeparatorNode) parse(cur *cursor.Cursor, _ *offsetBucket, c *Culture) *ParseError {
	if cur.MatchText(c.DecimalSeparator) {
		return nil
	}

	return newParseError(FailureMissingDecimalSeparator, cur.Index(), c.DecimalSeparator)
}

// groupedMillisNode implements the "n" standard format: the signed total
// millisecond count rendered with the culture's digit grouping.
type groupedMillisNode struct{}

func (groupedMillisNode) print(sb *strings.Builder, v Offset, c *Culture) {
	sb.WriteString(c.FormatGroupedInt(v.TotalMilliseconds()))
}

func (groupedMillisNode) parse(cur *cursor.Cursor, b *offsetBucket, c *Culture) *ParseError {
	if cur.Match('-') {
		b.negative = true
	} else {
		cur.Match('+')
	}

	var (
		total int64
		seen  bool
	)

	for {
		if d := cur.Current(); d >= '0' && d <= '9' {
			total = total*10 + int64(d-'0')
			seen = true

			cur.MoveNext()

			continue
		}

		// Group separators are permitted between digit groups, not required.
		if seen && cur.MatchText(c.GroupSeparator) {
			continue
		}

		break
	}

	if !seen {
		return newParseError(FailureMismatchedNumber, cur.Index(), "n")
	}

	b.totalMillis = &total

	return nil
}

// resolveOffsetItems turns an offset pattern string into scanned items,
// resolving one-letter standard formats first. The boolean result is true for
// the "n" format, which compiles to a single grouped-integer node.
func resolveOffsetItems(patternText string) ([]pattern.Item, bool, *ParseError) {
	if utf8.RuneCountInString(patternText) == 1 {
		letter, _ := utf8.DecodeRuneInString(patternText)
		if letter == 'n' {
			return nil, true, nil
		}

		expanded, ok := offsetStandardPatterns[letter]
		if !ok {
			if letter == 'h' {
				return nil, false, newParseError(FailureHour12PatternNotSupported, 0, offsetTypeName)
			}

			return nil, false, newParseError(FailureUnknownStandardFormat, 0, string(letter), offsetTypeName)
		}

		patternText = expanded
	}

	items, err := pattern.New(patternText, isOffsetFieldLetter).All()
	if err != nil {
		return nil, false, scanError(err)
	}

	return items, false, nil
}

// scanError maps pattern scanner sentinels onto the failure taxonomy.
func scanError(err error) *ParseError {
	switch {
	case errors.Is(err, pattern.ErrPercentDoubled):
		return newParseError(FailurePercentDoubled, -1)
	case errors.Is(err, pattern.ErrPercentAtEnd):
		return newParseError(FailurePercentAtEndOfString, -1)
	case errors.Is(err, pattern.ErrEscapeAtEnd):
		return newParseError(FailureEscapeAtEndOfString, -1)
	default:
		return newParseError(FailureMissingEndQuote, -1, "'")
	}
}

// compileOffsetItems builds the node list for scanned custom-pattern items.
func compileOffsetItems(items []pattern.Item) ([]offsetNode, *ParseError) {
	nodes := make([]offsetNode, 0, len(items))

	for i := 0; i < len(items); i++ {
		item := items[i]

		if item.Kind == pattern.Field {
			node, err := compileOffsetField(item)
			if err != nil {
				return nil, err
			}

			nodes = append(nodes, node)

			continue
		}

		if item.Source == pattern.Plain {
			switch item.Text {
			case "+":
				nodes = append(nodes, &signNode{required: true})
				continue
			case "-":
				nodes = append(nodes, &signNode{required: false})
				continue
			case ":":
				nodes = append(nodes, timeSeparatorNode{})
				continue
			case ".":
				// '.' binds to an immediately following fraction field so the
				// separator elides together with an all-zero 'F' fraction.
				if i+1 < len(items) && items[i+1].Kind == pattern.Field &&
					(items[i+1].Letter == 'f' || items[i+1].Letter == 'F') {
					frac, err := compileOffsetField(items[i+1])
					if err != nil {
						return nil, err
					}

					frac.(*fractionNode).withSeparator = true
					nodes = append(nodes, frac)
					i++

					continue
				}

				nodes = append(nodes, decimalSeparatorNode{})

				continue
			}
		}

		nodes = append(nodes, &literalNode{text: item.Text, source: item.Source})
	}

	return nodes, nil
}

func compileOffsetField(item pattern.Item) (offsetNode, *ParseError) {
	if item.Letter == 'h' {
		return nil, newParseError(FailureHour12PatternNotSupported, -1, offsetTypeName)
	}

	if max := offsetMaxRepeat[item.Letter]; item.Count > max {
		return nil, newParseError(FailureRepeatCountExceeded, -1, string(item.Letter), max)
	}

	switch item.Letter {
	case 'H', 'm', 's':
		field := offsetFieldHours
		switch item.Letter {
		case 'm':
			field = offsetFieldMinutes
		case 's':
			field = offsetFieldSeconds
		}

		maxDigits := item.Count
		if item.Count == 1 {
			maxDigits = offsetMaxRepeat[item.Letter]
		}

		return &numberNode{
			field:       field,
			minDigits:   item.Count,
			maxDigits:   maxDigits,
			patternText: item.Text,
		}, nil
	case 'f':
		return &fractionNode{width: item.Count, patternText: item.Text}, nil
	default: // 'F'
		return &fractionNode{width: item.Count, elidable: true, patternText: item.Text}, nil
	}
}

// isAllWhitespace reports whether s contains only whitespace runes.
func isAllWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
