package imapdatetime

import (
	"encoding/json"
	"time"
)

// DateTime is a time.Time carrying the IMAP date-time textual convention
// (RFC 3501 date-time: "dd-Mmm-yyyy hh:mm:ss +zzzz"). It is produced by
// Parse and rendered by Format; the zero value renders like the zero
// time.Time.
type DateTime time.Time

// New wraps an existing time.Time without changing its zone.
func New(t time.Time) DateTime {
	return DateTime(t)
}

// Time returns the underlying time.Time.
func (dt DateTime) Time() time.Time {
	return time.Time(dt)
}

func (dt DateTime) String() string {
	return Format(dt)
}

// Equal reports whether both values describe the same instant.
func (dt DateTime) Equal(other DateTime) bool {
	return time.Time(dt).Equal(time.Time(other))
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(Format(dt))
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// monthNames maps month numbers 1..12 to the canonical IMAP abbreviations.
// Together with monthNumbers it forms the fixed month table shared by the
// parser and the formatter; neither is ever mutated after initialization.
var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthNumbers = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// MonthNumber looks up a canonical three-letter abbreviation. The match is
// case-exact: "JUL" and "jul" both miss.
func MonthNumber(name string) (time.Month, bool) {
	m, ok := monthNumbers[name]
	return m, ok
}

// MonthName returns the canonical abbreviation for a month number.
func MonthName(m time.Month) (string, bool) {
	if m < time.January || m > time.December {
		return "", false
	}
	return monthNames[m-1], true
}
