package imapdatetime

import (
	"fmt"
	"time"

	"github.com/jecitDev/jec-imap-helper/pkg/quotedString"
)

// Format renders the canonical IMAP date-time form: space-padded 2-character
// day, case-exact month abbreviation, 4-digit year, zero-padded time fields
// and a signed HHMM offset. It never fails.
//
// An instant whose zone is exactly UTC always renders "+0000". A zone whose
// raw offset carries a seconds residue (some historical zone definitions do)
// cannot be written as a legal HHMM offset, so the whole instant is
// re-expressed in UTC first; the wall-clock fields change but the instant
// does not.
func Format(dt DateTime) string {
	t := time.Time(dt)

	offsetSeconds := 0
	if t.Location() != time.UTC {
		_, offsetSeconds = t.Zone()
		if offsetSeconds%60 != 0 {
			t = t.UTC()
			offsetSeconds = 0
		}
	}

	sign := byte('+')
	if offsetSeconds < 0 {
		sign = '-'
		offsetSeconds = -offsetSeconds
	}
	offsetMinutes := offsetSeconds / 60

	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	name, _ := MonthName(month)

	return fmt.Sprintf("%2d-%s-%04d %02d:%02d:%02d %c%02d%02d",
		day, name, year, hour, min, sec, sign, offsetMinutes/60, offsetMinutes%60)
}

// FormatDate renders the date-only form used by SEARCH criteria. Single-digit
// days are not padded in this form.
func FormatDate(dt DateTime) string {
	year, month, day := time.Time(dt).Date()
	name, _ := MonthName(month)
	return fmt.Sprintf("%d-%s-%04d", day, name, year)
}

// FormatQuoted renders the quoted wire form used by INTERNALDATE and APPEND.
func FormatQuoted(dt DateTime) string {
	// Format output is plain ASCII with no quote or backslash, so quoting
	// cannot fail.
	q, _ := quotedstring.Quote(Format(dt))
	return q
}
