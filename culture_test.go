package chronofmt

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"golang.org/x/text/language"
)

func TestNewCulture(t *testing.T) {
	tests := []struct {
		name        string
		tag         language.Tag
		wantDecimal string
		wantGroup   string
	}{
		{name: "english", tag: language.English, wantDecimal: ".", wantGroup: ","},
		{name: "french uses nbsp grouping", tag: language.French, wantDecimal: ",", wantGroup: " "},
		{name: "italian uses nbsp grouping", tag: language.Italian, wantDecimal: ",", wantGroup: " "},
		{name: "german groups with dot", tag: language.German, wantDecimal: ",", wantGroup: "."},
		{name: "regional variant matches base", tag: language.MustParse("fr-CA"), wantDecimal: ",", wantGroup: " "},
		{name: "unknown tag falls back to invariant", tag: language.Thai, wantDecimal: ".", wantGroup: ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCulture(tt.tag)
			assert.Equal(t, tt.wantDecimal, c.DecimalSeparator)
			assert.Equal(t, tt.wantGroup, c.GroupSeparator)
			assert.Equal(t, ":", c.TimeSeparator)
			assert.Equal(t, tt.tag, c.Tag)
		})
	}
}

func TestFormatGroupedInt(t *testing.T) {
	tests := []struct {
		name string
		c    *Culture
		n    int64
		want string
	}{
		{name: "short number ungrouped", c: Invariant, n: 123, want: "123"},
		{name: "invariant grouping", c: Invariant, n: 12345678, want: "12,345,678"},
		{name: "negative", c: Invariant, n: -1234, want: "-1,234"},
		{name: "zero", c: Invariant, n: 0, want: "0"},
		{name: "french nbsp", c: NewCulture(language.French), n: 12345678, want: "12 345 678"},
		{name: "german dot", c: NewCulture(language.German), n: 1234567, want: "1.234.567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.FormatGroupedInt(tt.n))
		})
	}
}
