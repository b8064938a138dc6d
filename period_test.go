package chronofmt

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestPeriodFieldAccess(t *testing.T) {
	p := NewPeriod(1, 2, 3, 4, 5, 6, 7, 8)

	assert.Equal(t, int64(1), p.Value(FieldYears))
	assert.Equal(t, int64(8), p.Value(FieldMillis))
	assert.True(t, p.Supports(FieldWeeks))
	assert.Equal(t, StandardFields, p.Fields())
}

func TestPeriodZeroValueIsStandard(t *testing.T) {
	var p Period

	assert.Equal(t, StandardFields, p.Fields())
	assert.Equal(t, int64(0), p.Value(FieldYears))
}

func TestPeriodWithFields(t *testing.T) {
	p := NewPeriod(1, 2, 3, 4, 5, 6, 7, 8).WithFields(TimeFields)

	assert.False(t, p.Supports(FieldYears))
	assert.Equal(t, int64(0), p.Value(FieldYears))
	assert.Equal(t, int64(5), p.Value(FieldHours))
	assert.Equal(t, int64(8), p.Value(FieldMillis))
}

func TestPeriodWithValueWidensFieldSet(t *testing.T) {
	p := PeriodOf(TimeFields).WithValue(FieldYears, 3)

	assert.True(t, p.Supports(FieldYears))
	assert.Equal(t, int64(3), p.Value(FieldYears))
}

func TestPeriodEqual(t *testing.T) {
	a := NewPeriod(1, 0, 0, 0, 0, 0, 0, 0)
	b := NewPeriod(1, 0, 0, 0, 0, 0, 0, 0)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(a.WithFields(TimeFields)))
	assert.False(t, a.Equal(NewPeriod(2, 0, 0, 0, 0, 0, 0, 0)))
}

func TestPeriodString(t *testing.T) {
	assert.Equal(t, "Period(5 years 30 minutes)", NewPeriod(5, 0, 0, 0, 0, 30, 0, 0).String())
	assert.Equal(t, "Period()", Period{}.String())
}

func TestPeriodFieldString(t *testing.T) {
	assert.Equal(t, "years", FieldYears.String())
	assert.Equal(t, "millis", FieldMillis.String())
	assert.Equal(t, "unknown", PeriodField(99).String())
}
