package chronofmt

// ParseStyles controls how much whitespace a parse tolerates beyond what the
// pattern itself carries.
type ParseStyles uint

const (
	// StyleNone requires the input to match the pattern exactly.
	StyleNone ParseStyles = 0
	// AllowLeadingWhite permits whitespace before the first pattern node and
	// ignores leading whitespace in the pattern's first literal.
	AllowLeadingWhite ParseStyles = 1 << iota
	// AllowTrailingWhite permits whitespace after the last pattern node and
	// ignores trailing whitespace in the pattern's last literal.
	AllowTrailingWhite
	// AllowInnerWhite permits ad hoc whitespace between pattern nodes.
	AllowInnerWhite
	// AllowWhiteSpaces is the union of the three flags above.
	AllowWhiteSpaces = AllowLeadingWhite | AllowTrailingWhite | AllowInnerWhite
)

func (s ParseStyles) has(flag ParseStyles) bool {
	return s&flag != 0
}
