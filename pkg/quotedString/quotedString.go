package quotedstring

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotQuoted  = errors.New("not a quoted string")
	ErrUnquotable = errors.New("string cannot be sent as a quoted string")
)

// IsQuoted reports whether s is delimited by double quotes.
func IsQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// Quote wraps s in double quotes, escaping '"' and '\' with a backslash.
// Strings containing CR, LF or NUL have no quoted representation and must be
// sent as literals instead.
func Quote(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '\r', '\n', 0:
			return "", fmt.Errorf("%w: contains control byte %q", ErrUnquotable, ch)
		case '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	b.WriteByte('"')
	return b.String(), nil
}

// Unquote strips the surrounding double quotes and resolves backslash
// escapes. Only '"' and '\' may be escaped; a bare '"' or a dangling
// backslash inside the body is an error.
func Unquote(s string) (string, error) {
	if !IsQuoted(s) {
		return "", fmt.Errorf("%w: %q", ErrNotQuoted, s)
	}

	var b strings.Builder
	b.Grow(len(s) - 2)
	body := s[1 : len(s)-1]
	for i := 0; i < len(body); i++ {
		ch := body[i]
		switch ch {
		case '\\':
			i++
			if i >= len(body) {
				return "", fmt.Errorf("%w: dangling escape in %q", ErrNotQuoted, s)
			}
			ch = body[i]
			if ch != '"' && ch != '\\' {
				return "", fmt.Errorf("%w: invalid escape %q", ErrNotQuoted, string(ch))
			}
		case '"':
			return "", fmt.Errorf("%w: unescaped quote inside %q", ErrNotQuoted, s)
		}
		b.WriteByte(ch)
	}
	return b.String(), nil
}
