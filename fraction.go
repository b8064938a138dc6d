package chronofmt

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
)

// fractionToMillis converts parsed fraction digits into milliseconds. Missing
// digits count as trailing zeros ("6" is 600 ms, not 6 ms); digits beyond
// millisecond precision round half-up to keep three significant digits.
func fractionToMillis(digits string) int64 {
	if digits == "" {
		return 0
	}

	d, err := decimal.NewFromString("0." + digits)
	if err != nil {
		return 0
	}

	return d.Mul(decimal.NewFromInt(millisPerSecond)).Round(0).IntPart()
}

// fractionDigits renders the first width digits of a millisecond value in
// [0, 999], zero-padded on the left: 567 ms at width 2 is "56".
func fractionDigits(millis int64, width int) string {
	return fmt.Sprintf("%03d", millis)[:width]
}
