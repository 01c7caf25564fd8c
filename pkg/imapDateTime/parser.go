package imapdatetime

import (
	"errors"
	"fmt"
	"time"

	"github.com/jecitDev/jec-imap-helper/pkg/quotedString"
	"github.com/jecitDev/jec-imap-helper/pkg/utils"
)

// Classified parse failures. Every error returned by Parse, ParseDate and
// ParseQuoted wraps exactly one of these sentinels, so callers can switch on
// errors.Is without matching message text.
var (
	ErrMalformedDate       = errors.New("malformed date")
	ErrInvalidMonthName    = errors.New("invalid month name")
	ErrMissingSeparator    = errors.New("missing date-time separator")
	ErrMalformedTime       = errors.New("malformed time")
	ErrMissingTimeZone     = errors.New("missing time zone")
	ErrMalformedTimeZone   = errors.New("malformed time zone")
	ErrTrailingCharacters  = errors.New("trailing characters after date-time")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

// cursor is a read position over an immutable input string. Field parsers
// consume from the front; a failed field aborts the whole parse, so consumed
// positions are never rewound.
type cursor struct {
	input string
	pos   int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) rest() string {
	return c.input[c.pos:]
}

// accept consumes b if it is the next byte.
func (c *cursor) accept(b byte) bool {
	if c.done() || c.input[c.pos] != b {
		return false
	}
	c.pos++
	return true
}

// digits consumes exactly n ASCII digits and returns their numeric value.
func (c *cursor) digits(n int) (int, bool) {
	v := 0
	for i := 0; i < n; i++ {
		if c.done() {
			return 0, false
		}
		b := c.input[c.pos]
		if b < '0' || b > '9' {
			return 0, false
		}
		c.pos++
		v = v*10 + int(b-'0')
	}
	return v, true
}

// takeN consumes exactly n bytes.
func (c *cursor) takeN(n int) (string, bool) {
	if len(c.input)-c.pos < n {
		return "", false
	}
	s := c.input[c.pos : c.pos+n]
	c.pos += n
	return s, true
}

// Parse reads an IMAP date-time string ("dd-Mmm-yyyy hh:mm:ss +zzzz",
// single-digit days optionally space-padded) strictly left to right. It fails
// on the first field that deviates from the grammar; no partial value is ever
// returned.
func Parse(s string) (DateTime, error) {
	c := &cursor{input: s}

	year, month, day, err := parseDate(c)
	if err != nil {
		return DateTime{}, err
	}
	if !c.accept(' ') {
		return DateTime{}, fmt.Errorf("%w: expected space after date in %q", ErrMissingSeparator, s)
	}

	hour, min, sec, err := parseTime(c)
	if err != nil {
		return DateTime{}, err
	}
	if !c.accept(' ') {
		if c.done() {
			return DateTime{}, fmt.Errorf("%w in %q", ErrMissingTimeZone, s)
		}
		return DateTime{}, fmt.Errorf("%w: expected space after time in %q", ErrMissingSeparator, s)
	}

	offsetMinutes, err := parseZone(c)
	if err != nil {
		return DateTime{}, err
	}
	if !c.done() {
		return DateTime{}, fmt.Errorf("%w: %q", ErrTrailingCharacters, c.rest())
	}

	return newValidated(year, month, day, hour, min, sec, offsetMinutes)
}

// ParseDate reads the date-only form ("dd-Mmm-yyyy") used by SEARCH
// criteria. The result is midnight UTC on that date.
func ParseDate(s string) (DateTime, error) {
	c := &cursor{input: s}

	year, month, day, err := parseDate(c)
	if err != nil {
		return DateTime{}, err
	}
	if !c.done() {
		return DateTime{}, fmt.Errorf("%w: %q", ErrTrailingCharacters, c.rest())
	}

	return newValidated(year, month, day, 0, 0, 0, 0)
}

// ParseQuoted reads the quoted wire form carried by INTERNALDATE and APPEND,
// e.g. `"15-Nov-1984 13:37:01 +0730"`.
func ParseQuoted(s string) (DateTime, error) {
	inner, err := quotedstring.Unquote(s)
	if err != nil {
		return DateTime{}, err
	}
	return Parse(inner)
}

// parseDate consumes day "-" month "-" year. The day is one or two digits; a
// single-digit day may be padded with one leading space.
func parseDate(c *cursor) (year int, month time.Month, day int, err error) {
	day, ok := parseDay(c)
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: bad day field in %q", ErrMalformedDate, c.input)
	}
	if !c.accept('-') {
		return 0, 0, 0, fmt.Errorf("%w: expected '-' after day in %q", ErrMalformedDate, c.input)
	}

	name, ok := c.takeN(3)
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: truncated month field in %q", ErrMalformedDate, c.input)
	}
	month, ok = MonthNumber(name)
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonthName, name)
	}

	if !c.accept('-') {
		return 0, 0, 0, fmt.Errorf("%w: expected '-' after month in %q", ErrMalformedDate, c.input)
	}
	year, ok = c.digits(4)
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: bad year field in %q", ErrMalformedDate, c.input)
	}

	return year, month, day, nil
}

func parseDay(c *cursor) (int, bool) {
	if c.accept(' ') {
		// Space padding stands in for the tens digit.
		return c.digits(1)
	}
	v, ok := c.digits(1)
	if !ok {
		return 0, false
	}
	if !c.done() {
		if b := c.input[c.pos]; b >= '0' && b <= '9' {
			c.pos++
			v = v*10 + int(b-'0')
		}
	}
	return v, true
}

// parseTime consumes hh ":" mm ":" ss and checks field ranges.
func parseTime(c *cursor) (hour, min, sec int, err error) {
	bad := func(what string) error {
		return fmt.Errorf("%w: bad %s field in %q", ErrMalformedTime, what, c.input)
	}

	hour, ok := c.digits(2)
	if !ok || hour > 23 {
		return 0, 0, 0, bad("hour")
	}
	if !c.accept(':') {
		return 0, 0, 0, bad("hour-minute")
	}
	min, ok = c.digits(2)
	if !ok || min > 59 {
		return 0, 0, 0, bad("minute")
	}
	if !c.accept(':') {
		return 0, 0, 0, bad("minute-second")
	}
	sec, ok = c.digits(2)
	if !ok || sec > 59 {
		return 0, 0, 0, bad("second")
	}

	return hour, min, sec, nil
}

// parseZone consumes the signed HHMM offset and returns signed minutes.
func parseZone(c *cursor) (int, error) {
	sign := 0
	switch {
	case c.accept('+'):
		sign = 1
	case c.accept('-'):
		sign = -1
	default:
		return 0, fmt.Errorf("%w: expected '+' or '-' in %q", ErrMissingTimeZone, c.input)
	}

	hh, ok := c.digits(2)
	if !ok {
		return 0, fmt.Errorf("%w: bad offset hours in %q", ErrMalformedTimeZone, c.input)
	}
	mm, ok := c.digits(2)
	if !ok {
		return 0, fmt.Errorf("%w: bad offset minutes in %q", ErrMalformedTimeZone, c.input)
	}
	if mm > 59 || hh > 23 {
		return 0, fmt.Errorf("%w: offset %02d%02d out of range", ErrMalformedTimeZone, hh, mm)
	}

	return sign * (hh*60 + mm), nil
}

// newValidated hands the syntactically valid fields to the time package,
// which owns calendar correctness. time.Date normalizes impossible dates
// (Feb 30 becomes Mar 2), so a changed date field means the input named a
// day that does not exist.
func newValidated(year int, month time.Month, day, hour, min, sec, offsetMinutes int) (DateTime, error) {
	loc := utils.FixedZoneFromMinutes(offsetMinutes)
	t := time.Date(year, month, day, hour, min, sec, 0, loc)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return DateTime{}, fmt.Errorf("%w: %d-%s-%04d does not exist", ErrInvalidCalendarDate, day, monthNames[month-1], year)
	}
	return DateTime(t), nil
}
