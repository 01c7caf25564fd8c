package messagedate

import (
	"fmt"
	"regexp"
	"time"
)

// Layouts for the RFC 5322 date-time forms that show up in Date: headers and
// IMAP envelopes, most common first. Permutations cover optional day-of-week,
// two-digit years, missing seconds and named zones.
var layouts = [...]string{
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"_2 Jan 2006 15:04:05 -0700",
	"_2 Jan 2006 15:04:05 MST",
	"_2 Jan 2006 15:04 -0700",
	"_2 Jan 2006 15:04 MST",
	"_2 Jan 06 15:04:05 -0700",
	"_2 Jan 06 15:04:05 MST",
	"_2 Jan 06 15:04 -0700",
	"_2 Jan 06 15:04 MST",
	"Mon, _2 Jan 2006 15:04:05 -0700",
	"Mon, _2 Jan 2006 15:04:05 MST",
	"Mon, _2 Jan 2006 15:04 -0700",
	"Mon, _2 Jan 2006 15:04 MST",
	"Mon, _2 Jan 06 15:04:05 -0700",
	"Mon, _2 Jan 06 15:04:05 MST",
	"Mon, _2 Jan 06 15:04 -0700",
	"Mon, _2 Jan 06 15:04 MST",
}

// Trailing CFWS comments like " (UTC)" are not part of any layout.
var trailingCommentRE = regexp.MustCompile(`[ \t]+\(.*\)$`)

// Parse reads an RFC 5322 message date, trying each known layout in turn.
func Parse(s string) (time.Time, error) {
	s = trailingCommentRE.ReplaceAllString(s, "")
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("message date %q could not be parsed", s)
}

// Format renders t as an RFC 5322 date in UTC with an explicit weekday, the
// shape strict peers expect in generated Date: headers.
func Format(t time.Time) string {
	t = t.UTC()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	weekday := t.Weekday()
	return fmt.Sprintf("%s, %02d %s %04d %02d:%02d:%02d +0000",
		weekday.String()[:3], day, month.String()[:3], year, hour, min, sec)
}
