package chronofmt

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFractionToMillis(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   int64
	}{
		{name: "empty", digits: "", want: 0},
		{name: "single digit pads", digits: "6", want: 600},
		{name: "two digits pad", digits: "56", want: 560},
		{name: "three digits exact", digits: "567", want: 567},
		{name: "leading zeros", digits: "006", want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fractionToMillis(tt.digits))
		})
	}
}

func TestFractionDigits(t *testing.T) {
	assert.Equal(t, "567", fractionDigits(567, 3))
	assert.Equal(t, "56", fractionDigits(567, 2))
	assert.Equal(t, "5", fractionDigits(567, 1))
	assert.Equal(t, "006", fractionDigits(6, 3))
}
