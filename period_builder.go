package chronofmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shibukawa/chronofmt/cursor"
	"github.com/shibukawa/chronofmt/pattern"
)

// Builder misuse errors, reported by Build.
var (
	// ErrSuffixWithoutField indicates AppendSuffix called before any field was appended.
	ErrSuffixWithoutField = errors.New("chronofmt: suffix requires a preceding field")
	// ErrDanglingPrefix indicates AppendPrefix with no field following it.
	ErrDanglingPrefix = errors.New("chronofmt: prefix requires a following field")
	// ErrEmptyFormatter indicates Build called with nothing appended.
	ErrEmptyFormatter = errors.New("chronofmt: formatter must contain at least one node")
)

// ZeroPolicy governs whether a zero-valued field is emitted during printing.
type ZeroPolicy int

const (
	// PrintZeroRarelyLast prints a zero only when the whole period (over its
	// registered, supported fields) is zero and this is the least significant
	// such field.
	PrintZeroRarelyLast ZeroPolicy = iota
	// PrintZeroRarelyFirst is the most-significant mirror of RarelyLast.
	PrintZeroRarelyFirst
	// PrintZeroNever suppresses zero values.
	PrintZeroNever
	// PrintZeroIfSupported prints a zero whenever the field is supported.
	PrintZeroIfSupported
	// PrintZeroAlways prints the zero disregarding type support, and turns
	// the reciprocal parse into a hard requirement.
	PrintZeroAlways
)

// periodNode is one compiled step of a period formatter.
type periodNode interface {
	print(sb *strings.Builder, p Period, c *Culture)
	parse(cur *cursor.Cursor, b *periodBucket, c *Culture) *ParseError
}

// periodBucket accumulates parsed field values; one fresh instance per parse.
type periodBucket struct {
	fields FieldSet
	values [numPeriodFields]int64
}

func (b *periodBucket) resolve() Period {
	return Period{fields: b.fields, values: b.values}
}

// periodLiteralNode prints and matches fixed text.
type periodLiteralNode struct {
	text   string
	source pattern.Source
}

func (n *periodLiteralNode) print(sb *strings.Builder, _ Period, _ *Culture) {
	sb.WriteString(n.text)
}

func (n *periodLiteralNode) parse(cur *cursor.Cursor, _ *periodBucket, _ *Culture) *ParseError {
	if cur.MatchText(n.text) {
		return nil
	}

	return literalMismatch(n.text, n.source, cur.Index())
}

// periodFieldNode prints and parses one numeric period field, or the
// composite seconds-with-milliseconds field.
type periodFieldNode struct {
	field          PeriodField // FieldSeconds for the composite
	composite      bool
	optionalMillis bool
	minDigits      int
	maxParsed      int
	policy         ZeroPolicy
	prefix         string
	suffix         string
	patternText    string
	// siblings is the per-field-type node table the formatter was built
	// with, consulted by the Rarely* policies. Shared, immutable after Build.
	siblings *[numPeriodFields]*periodFieldNode
}

func (n *periodFieldNode) supports(fields FieldSet) bool {
	if n.composite {
		return fields.Has(FieldSeconds) || fields.Has(FieldMillis)
	}

	return fields.Has(n.field)
}

func (n *periodFieldNode) value(p Period) int64 {
	if n.composite {
		return p.Value(FieldSeconds)*millisPerSecond + p.Value(FieldMillis)
	}

	return p.Value(n.field)
}

// shouldPrint applies the zero-printing policy.
func (n *periodFieldNode) shouldPrint(p Period) bool {
	supported := n.supports(p.Fields())
	if !supported {
		return n.policy == PrintZeroAlways
	}

	if n.value(p) != 0 {
		return true
	}

	switch n.policy {
	case PrintZeroNever:
		return false
	case PrintZeroIfSupported, PrintZeroAlways:
		return true
	case PrintZeroRarelyLast:
		return n.allRegisteredZero(p) && n.isEdgeRegistered(p, false)
	default: // PrintZeroRarelyFirst
		return n.allRegisteredZero(p) && n.isEdgeRegistered(p, true)
	}
}

// allRegisteredZero reports whether every registered, supported sibling field
// is zero.
func (n *periodFieldNode) allRegisteredZero(p Period) bool {
	for f := FieldYears; f < numPeriodFields; f++ {
		sib := n.siblings[f]
		if sib == nil || !p.Supports(f) {
			continue
		}

		if p.Value(f) != 0 {
			return false
		}
	}

	return true
}

// isEdgeRegistered reports whether n occupies the most significant (first) or
// least significant (last) registered supported slot.
func (n *periodFieldNode) isEdgeRegistered(p Period, first bool) bool {
	if first {
		for f := FieldYears; f < n.field; f++ {
			if sib := n.siblings[f]; sib != nil && sib != n && p.Supports(f) {
				return false
			}
		}

		return true
	}

	for f := n.field + 1; f < numPeriodFields; f++ {
		if sib := n.siblings[f]; sib != nil && sib != n && p.Supports(f) {
			return false
		}
	}

	return true
}

func (n *periodFieldNode) print(sb *strings.Builder, p Period, _ *Culture) {
	if !n.shouldPrint(p) {
		// Affixes are never emitted for a suppressed field.
		return
	}

	sb.WriteString(n.prefix)

	if n.composite {
		n.printCombined(sb, n.value(p))
	} else {
		writePadded(sb, n.value(p), n.minDigits)
	}

	sb.WriteString(n.suffix)
}

// printCombined renders total milliseconds as {signed-seconds}.{3-digit
// millis}, the sign applied once to the combined magnitude. The optional
// variant drops the fraction when the remainder is exactly zero.
func (n *periodFieldNode) printCombined(sb *strings.Builder, total int64) {
	if total < 0 {
		sb.WriteByte('-')
		total = -total
	}

	writePadded(sb, total/millisPerSecond, n.minDigits)

	ms := total % millisPerSecond
	if n.optionalMillis && ms == 0 {
		return
	}

	sb.WriteByte('.')
	sb.WriteString(fractionDigits(ms, 3))
}

func (n *periodFieldNode) parse(cur *cursor.Cursor, b *periodBucket, _ *Culture) *ParseError {
	if !n.supports(b.fields) {
		if n.policy != PrintZeroAlways {
			// The field is simply absent for this type: consume nothing.
			return nil
		}

		return newParseError(FailureFieldNotSupported, cur.Index(), n.field.String())
	}

	if n.prefix != "" && !cur.MatchTextFold(n.prefix) {
		return newParseError(FailureQuotedStringMismatch, cur.Index(), n.prefix)
	}

	negative := false

	switch cur.Current() {
	case '-':
		negative = true

		cur.MoveNext()
	case '+':
		cur.MoveNext()
	}

	value, ok := cur.ParseDigits(1, n.maxParsed)
	if !ok {
		return newParseError(FailureMismatchedNumber, cur.Index(), n.patternText)
	}

	if n.composite {
		n.parseMillisFraction(cur, b, value, negative)
	} else {
		if negative {
			value = -value
		}

		b.values[n.field] = value
	}

	if n.suffix != "" && !cur.MatchTextFold(n.suffix) {
		return newParseError(FailureQuotedStringMismatch, cur.Index(), n.suffix)
	}

	return nil
}

// parseMillisFraction consumes the optional ".ddd" tail of a composite field
// and stores the normalized seconds/millis split. Fewer than three digits
// right-pad with zeros; anything past three digits is left unconsumed.
func (n *periodFieldNode) parseMillisFraction(cur *cursor.Cursor, b *periodBucket, seconds int64, negative bool) {
	var ms int64

	if cur.Current() == '.' {
		mark := cur.Index()
		cur.MoveNext()

		start := cur.Index()

		value, ok := cur.ParseDigits(1, 3)
		if ok {
			ms = fractionToMillis(fmt.Sprintf("%0*d", cur.Index()-start, value))
		} else {
			// A bare '.' with no digits belongs to whatever follows.
			cur.Move(mark)
		}
	}

	total := seconds*millisPerSecond + ms
	if negative {
		total = -total
	}

	b.values[FieldSeconds] = total / millisPerSecond
	b.values[FieldMillis] = total % millisPerSecond
}

// PeriodFormatterBuilder assembles a PeriodFormatter node by node, Joda
// style: digit and zero-policy settings apply to fields appended after them,
// a prefix binds to the next field, a suffix to the previous one.
type PeriodFormatterBuilder struct {
	nodes         []periodNode
	minDigits     int
	maxParsed     int
	policy        ZeroPolicy
	pendingPrefix string
	lastField     *periodFieldNode
	err           error
}

// NewPeriodFormatterBuilder returns a builder with minimum one printed digit,
// up to ten parsed digits, and the RarelyLast zero policy.
func NewPeriodFormatterBuilder() *PeriodFormatterBuilder {
	return &PeriodFormatterBuilder{minDigits: 1, maxParsed: 10}
}

// MinimumPrintedDigits sets the zero-pad width for subsequently appended fields.
func (b *PeriodFormatterBuilder) MinimumPrintedDigits(n int) *PeriodFormatterBuilder {
	b.minDigits = n
	return b
}

// MaximumParsedDigits caps the digits consumed by subsequently appended fields.
func (b *PeriodFormatterBuilder) MaximumParsedDigits(n int) *PeriodFormatterBuilder {
	b.maxParsed = n
	return b
}

// PrintZeroRarelyLast applies the RarelyLast policy to subsequent fields.
func (b *PeriodFormatterBuilder) PrintZeroRarelyLast() *PeriodFormatterBuilder {
	b.policy = PrintZeroRarelyLast
	return b
}

// PrintZeroRarelyFirst applies the RarelyFirst policy to subsequent fields.
func (b *PeriodFormatterBuilder) PrintZeroRarelyFirst() *PeriodFormatterBuilder {
	b.policy = PrintZeroRarelyFirst
	return b
}

// PrintZeroNever suppresses zero values for subsequent fields.
func (b *PeriodFormatterBuilder) PrintZeroNever() *PeriodFormatterBuilder {
	b.policy = PrintZeroNever
	return b
}

// PrintZeroIfSupported prints zeros for supported subsequent fields.
func (b *PeriodFormatterBuilder) PrintZeroIfSupported() *PeriodFormatterBuilder {
	b.policy = PrintZeroIfSupported
	return b
}

// PrintZeroAlways prints zeros disregarding type support for subsequent fields.
func (b *PeriodFormatterBuilder) PrintZeroAlways() *PeriodFormatterBuilder {
	b.policy = PrintZeroAlways
	return b
}

// AppendPrefix attaches text before the next appended field. The prefix is
// only printed when the field itself prints, and is matched case-insensitively
// on parse.
func (b *PeriodFormatterBuilder) AppendPrefix(text string) *PeriodFormatterBuilder {
	b.pendingPrefix += text
	return b
}

// AppendSuffix attaches text after the most recently appended field.
func (b *PeriodFormatterBuilder) AppendSuffix(text string) *PeriodFormatterBuilder {
	if b.lastField == nil {
		if b.err == nil {
			b.err = ErrSuffixWithoutField
		}

		return b
	}

	b.lastField.suffix += text

	return b
}

// AppendLiteral appends fixed text printed unconditionally.
func (b *PeriodFormatterBuilder) AppendLiteral(text string) *PeriodFormatterBuilder {
	b.nodes = append(b.nodes, &periodLiteralNode{text: text, source: pattern.Quoted})
	b.lastField = nil

	return b
}

// AppendYears appends the years field.
func (b *PeriodFormatterBuilder) AppendYears() *PeriodFormatterBuilder {
	return b.appendField(FieldYears, "y")
}

// AppendMonths appends the months field.
func (b *PeriodFormatterBuilder) AppendMonths() *PeriodFormatterBuilder {
	return b.appendField(FieldMonths, "M")
}

// AppendWeeks appends the weeks field.
func (b *PeriodFormatterBuilder) AppendWeeks() *PeriodFormatterBuilder {
	return b.appendField(FieldWeeks, "w")
}

// AppendDays appends the days field.
func (b *PeriodFormatterBuilder) AppendDays() *PeriodFormatterBuilder {
	return b.appendField(FieldDays, "d")
}

// AppendHours appends the hours field.
func (b *PeriodFormatterBuilder) AppendHours() *PeriodFormatterBuilder {
	return b.appendField(FieldHours, "H")
}

// AppendMinutes appends the minutes field.
func (b *PeriodFormatterBuilder) AppendMinutes() *PeriodFormatterBuilder {
	return b.appendField(FieldMinutes, "m")
}

// AppendSeconds appends the seconds field.
func (b *PeriodFormatterBuilder) AppendSeconds() *PeriodFormatterBuilder {
	return b.appendField(FieldSeconds, "s")
}

// AppendMillis appends the milliseconds field.
func (b *PeriodFormatterBuilder) AppendMillis() *PeriodFormatterBuilder {
	return b.appendField(FieldMillis, "f")
}

// AppendSecondsWithMillis appends the combined seconds-and-milliseconds field,
// printed as {seconds}.{3-digit millis} with the sign applied once.
func (b *PeriodFormatterBuilder) AppendSecondsWithMillis() *PeriodFormatterBuilder {
	node := b.newField(FieldSeconds, "S")
	node.composite = true
	b.push(node)

	return b
}

// AppendSecondsWithOptionalMillis is AppendSecondsWithMillis with the
// fraction dropped when the millisecond remainder is zero.
func (b *PeriodFormatterBuilder) AppendSecondsWithOptionalMillis() *PeriodFormatterBuilder {
	node := b.newField(FieldSeconds, "S")
	node.composite = true
	node.optionalMillis = true
	b.push(node)

	return b
}

func (b *PeriodFormatterBuilder) appendField(field PeriodField, letter string) *PeriodFormatterBuilder {
	b.push(b.newField(field, letter))
	return b
}

func (b *PeriodFormatterBuilder) newField(field PeriodField, patternText string) *periodFieldNode {
	return &periodFieldNode{
		field:       field,
		minDigits:   b.minDigits,
		maxParsed:   b.maxParsed,
		policy:      b.policy,
		prefix:      b.pendingPrefix,
		patternText: patternText,
	}
}

func (b *PeriodFormatterBuilder) push(node *periodFieldNode) {
	b.pendingPrefix = ""
	b.lastField = node
	b.nodes = append(b.nodes, node)
}

// Build materializes the formatter and the per-field-type node table the
// Rarely* policies consult. Appending to the builder after Build leaves
// previously built formatters in an undefined state; build once per
// configuration.
func (b *PeriodFormatterBuilder) Build() (*PeriodFormatter, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.pendingPrefix != "" {
		return nil, ErrDanglingPrefix
	}

	if len(b.nodes) == 0 {
		return nil, ErrEmptyFormatter
	}

	var table [numPeriodFields]*periodFieldNode

	nodes := make([]periodNode, len(b.nodes))
	copy(nodes, b.nodes)

	for _, n := range nodes {
		if fn, ok := n.(*periodFieldNode); ok {
			table[fn.field] = fn
			if fn.composite {
				table[FieldMillis] = fn
			}

			fn.siblings = &table
		}
	}

	return &PeriodFormatter{nodes: nodes, fields: StandardFields}, nil
}
