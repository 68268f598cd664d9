package libjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_Success(t *testing.T) {
	code, msg, err := parseStatus([]byte("0::::"))
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "", msg)
}

func TestParseStatus_Failure(t *testing.T) {
	code, msg, err := parseStatus([]byte("-1036::::bad stream"))
	require.NoError(t, err)
	assert.Equal(t, -1036, code)
	assert.Equal(t, "bad stream", msg)
}

// The delimiter split happens at the first occurrence; everything to the
// right is kept verbatim, colons included.
func TestParseStatus_MessageKeptVerbatim(t *testing.T) {
	code, msg, err := parseStatus([]byte("-1025::::ran out: offset 12"))
	require.NoError(t, err)
	assert.Equal(t, -1025, code)
	assert.Equal(t, "ran out: offset 12", msg)
}

func TestParseStatus_Malformed(t *testing.T) {
	for _, raw := range []string{"", "0", "no delimiter here", "abc::::msg", "::::msg"} {
		_, _, err := parseStatus([]byte(raw))
		assert.ErrorIs(t, err, ErrMalformedStatus, "raw %q", raw)
	}
}
