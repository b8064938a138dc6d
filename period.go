package chronofmt

import "strings"

// PeriodField identifies one component of a period, ordered from most to
// least significant.
type PeriodField int

const (
	FieldYears PeriodField = iota
	FieldMonths
	FieldWeeks
	FieldDays
	FieldHours
	FieldMinutes
	FieldSeconds
	FieldMillis

	numPeriodFields
)

var periodFieldNames = [numPeriodFields]string{
	"years", "months", "weeks", "days", "hours", "minutes", "seconds", "millis",
}

func (f PeriodField) String() string {
	if f < 0 || f >= numPeriodFields {
		return "unknown"
	}

	return periodFieldNames[f]
}

// FieldSet is the set of fields a period's storage type supports. A field
// absent from the set always reads as zero and is skipped by parsing unless a
// node forces it with PrintZeroAlways.
type FieldSet uint16

// Has reports whether f belongs to the set.
func (fs FieldSet) Has(f PeriodField) bool {
	return fs&(1<<uint(f)) != 0
}

// With returns the set extended by f.
func (fs FieldSet) With(f PeriodField) FieldSet {
	return fs | 1<<uint(f)
}

// Preset field sets.
const (
	StandardFields FieldSet = 1<<uint(numPeriodFields) - 1
	DateFields     FieldSet = 1<<FieldYears | 1<<FieldMonths | 1<<FieldWeeks | 1<<FieldDays
	TimeFields     FieldSet = 1<<FieldHours | 1<<FieldMinutes | 1<<FieldSeconds | 1<<FieldMillis
)

// Period is an opaque bag of field values over a supporting field set. The
// zero value is an empty standard period.
type Period struct {
	fields FieldSet
	values [numPeriodFields]int64
}

// NewPeriod builds a standard period carrying every field.
func NewPeriod(years, months, weeks, days, hours, minutes, seconds, millis int64) Period {
	return Period{
		fields: StandardFields,
		values: [numPeriodFields]int64{years, months, weeks, days, hours, minutes, seconds, millis},
	}
}

// PeriodOf builds an empty period over the given field set.
func PeriodOf(fields FieldSet) Period {
	return Period{fields: fields}
}

// Fields returns the period's supporting field set.
func (p Period) Fields() FieldSet {
	if p.fields == 0 {
		return StandardFields
	}

	return p.fields
}

// Supports reports whether the period's storage type carries f.
func (p Period) Supports(f PeriodField) bool {
	return p.Fields().Has(f)
}

// Value returns the field's value, zero for unsupported fields.
func (p Period) Value(f PeriodField) int64 {
	if !p.Supports(f) {
		return 0
	}

	return p.values[f]
}

// WithValue returns a copy with f set. Setting an unsupported field widens
// the field set.
func (p Period) WithValue(f PeriodField, value int64) Period {
	out := p
	out.fields = p.Fields().With(f)
	out.values[f] = value

	return out
}

// WithFields returns a copy restricted (or widened) to fields. Values of
// newly unsupported fields are dropped.
func (p Period) WithFields(fields FieldSet) Period {
	out := Period{fields: fields}
	for f := FieldYears; f < numPeriodFields; f++ {
		if fields.Has(f) {
			out.values[f] = p.Value(f)
		}
	}

	return out
}

// Equal reports field-for-field equality, including the field set.
func (p Period) Equal(other Period) bool {
	return p.Fields() == other.Fields() && p.values == other.values
}

// String renders a diagnostic representation listing non-zero fields.
func (p Period) String() string {
	var sb strings.Builder

	sb.WriteString("Period(")

	first := true
	for f := FieldYears; f < numPeriodFields; f++ {
		if v := p.Value(f); v != 0 {
			if !first {
				sb.WriteString(" ")
			}

			writePadded(&sb, v, 0)
			sb.WriteString(" ")
			sb.WriteString(f.String())

			first = false
		}
	}

	sb.WriteString(")")

	return sb.String()
}
