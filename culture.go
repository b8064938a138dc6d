package chronofmt

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
)

//go:embed cultures.yaml
var culturesYAML []byte

// Culture supplies the locale-dependent separators consumed by pattern
// execution: the decimal separator for '.', the time separator for ':', and
// the digit group separator used by the "n" standard format. Cultures are
// immutable after construction and safe to share across goroutines.
type Culture struct {
	Tag              language.Tag
	DecimalSeparator string
	TimeSeparator    string
	GroupSeparator   string
}

// Invariant is the culture used when none is supplied: '.' decimal, ':' time,
// ',' grouping.
var Invariant = &Culture{
	Tag:              language.Und,
	DecimalSeparator: ".",
	TimeSeparator:    ":",
	GroupSeparator:   ",",
}

type cultureEntry struct {
	Tag     string `yaml:"tag"`
	Decimal string `yaml:"decimal"`
	Time    string `yaml:"time"`
	Group   string `yaml:"group"`
}

type cultureTable struct {
	Cultures []cultureEntry `yaml:"cultures"`
}

var loadCultures = sync.OnceValues(func() ([]*Culture, language.Matcher) {
	var table cultureTable
	if err := yaml.Unmarshal(culturesYAML, &table); err != nil {
		panic(fmt.Sprintf("chronofmt: embedded culture table is invalid: %v", err))
	}

	cultures := make([]*Culture, 0, len(table.Cultures))
	tags := make([]language.Tag, 0, len(table.Cultures))

	for _, entry := range table.Cultures {
		tag := language.MustParse(entry.Tag)
		cultures = append(cultures, &Culture{
			Tag:              tag,
			DecimalSeparator: entry.Decimal,
			TimeSeparator:    entry.Time,
			GroupSeparator:   entry.Group,
		})
		tags = append(tags, tag)
	}

	return cultures, language.NewMatcher(tags)
})

// NewCulture resolves the separator set for tag, matching the nearest entry
// in the embedded table. Unknown tags fall back to Invariant separators.
func NewCulture(tag language.Tag) *Culture {
	cultures, matcher := loadCultures()

	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		c := *Invariant
		c.Tag = tag

		return &c
	}

	c := *cultures[index]
	c.Tag = tag

	return &c
}

// FormatGroupedInt renders n with the culture's digit group separator between
// three-digit groups, as the "n" standard format requires.
func (c *Culture) FormatGroupedInt(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)

	groups := make([]string, 0, len(digits)/3+1)
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}

	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, c.GroupSeparator)
}
