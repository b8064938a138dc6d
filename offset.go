package chronofmt

import "fmt"

// maxOffsetMillis is one millisecond short of a full day: offsets range over
// ±23:59:59.999.
const maxOffsetMillis = 24*millisPerHour - 1

// Offset is a signed duration-of-day, stored as total milliseconds. The zero
// value is the zero offset.
type Offset struct {
	millis int64
}

// NewOffset builds an offset from components. All non-zero components must
// share one sign; the combined magnitude must stay within ±23:59:59.999.
func NewOffset(hours, minutes, seconds, millis int) (Offset, error) {
	neg, pos := false, false
	for _, v := range []int{hours, minutes, seconds, millis} {
		if v < 0 {
			neg = true
		}

		if v > 0 {
			pos = true
		}
	}

	if neg && pos {
		return Offset{}, fmt.Errorf("%w: offset components must share one sign", ErrValueOutOfRange)
	}

	total := int64(hours)*millisPerHour + int64(minutes)*millisPerMinute +
		int64(seconds)*millisPerSecond + int64(millis)

	return OffsetFromMillis(total)
}

// OffsetFromMillis builds an offset from a total millisecond count.
func OffsetFromMillis(total int64) (Offset, error) {
	if total < -maxOffsetMillis || total > maxOffsetMillis {
		return Offset{}, fmt.Errorf("%w: offset %d ms exceeds ±23:59:59.999", ErrValueOutOfRange, total)
	}

	return Offset{millis: total}, nil
}

// TotalMilliseconds returns the signed total millisecond count.
func (o Offset) TotalMilliseconds() int64 {
	return o.millis
}

// IsNegative reports whether the offset is below zero.
func (o Offset) IsNegative() bool {
	return o.millis < 0
}

func (o Offset) abs() int64 {
	if o.millis < 0 {
		return -o.millis
	}

	return o.millis
}

// Hours returns the hour component, negative for negative offsets.
func (o Offset) Hours() int {
	return int(o.millis / millisPerHour)
}

// Minutes returns the minute component, negative for negative offsets.
func (o Offset) Minutes() int {
	return int(o.millis % millisPerHour / millisPerMinute)
}

// Seconds returns the second component, negative for negative offsets.
func (o Offset) Seconds() int {
	return int(o.millis % millisPerMinute / millisPerSecond)
}

// Milliseconds returns the millisecond component, negative for negative offsets.
func (o Offset) Milliseconds() int {
	return int(o.millis % millisPerSecond)
}

// String renders the offset with the general pattern and invariant culture.
func (o Offset) String() string {
	s, err := FormatOffset(o, "g", Invariant)
	if err != nil {
		return fmt.Sprintf("Offset(%dms)", o.millis)
	}

	return s
}
