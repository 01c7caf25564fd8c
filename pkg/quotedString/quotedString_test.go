package quotedstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteUnquote(t *testing.T) {
	q, err := Quote(`15-Nov-1984 13:37:01 +0730`)
	require.NoError(t, err)
	require.Equal(t, `"15-Nov-1984 13:37:01 +0730"`, q)

	back, err := Unquote(q)
	require.NoError(t, err)
	require.Equal(t, `15-Nov-1984 13:37:01 +0730`, back)
}

func TestQuoteEscapes(t *testing.T) {
	q, err := Quote(`say "hi" \ bye`)
	require.NoError(t, err)
	require.Equal(t, `"say \"hi\" \\ bye"`, q)

	back, err := Unquote(q)
	require.NoError(t, err)
	require.Equal(t, `say "hi" \ bye`, back)
}

func TestQuoteRejectsControlBytes(t *testing.T) {
	_, err := Quote("line one\r\nline two")
	require.ErrorIs(t, err, ErrUnquotable)

	_, err = Quote("nul\x00byte")
	require.ErrorIs(t, err, ErrUnquotable)
}

func TestUnquoteRejections(t *testing.T) {
	cases := []string{
		``,
		`"`,
		`no quotes`,
		`"half quoted`,
		`"bad \x escape"`,
		`"dangling \"`,
		`"inner " quote"`,
	}
	for _, in := range cases {
		_, err := Unquote(in)
		require.ErrorIs(t, err, ErrNotQuoted, "input %q", in)
	}
}

func TestIsQuoted(t *testing.T) {
	require.True(t, IsQuoted(`""`))
	require.True(t, IsQuoted(`"x"`))
	require.False(t, IsQuoted(`"`))
	require.False(t, IsQuoted(`x`))
}
