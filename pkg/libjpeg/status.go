package libjpeg

import (
	"bytes"
	"fmt"
	"strconv"
)

// statusDelimiter separates the signed code from the diagnostic text in
// every status token the engine returns, e.g. "0::::" on success or
// "-1036::::stream is no valid jpeg stream" on failure. The protocol
// guarantees the message body never contains the delimiter itself.
const statusDelimiter = "::::"

// parseStatus splits a raw engine status token into its signed code and
// verbatim message.
func parseStatus(raw []byte) (int, string, error) {
	i := bytes.Index(raw, []byte(statusDelimiter))
	if i < 0 {
		return 0, "", fmt.Errorf("%w: no %q in %q", ErrMalformedStatus, statusDelimiter, raw)
	}
	code, err := strconv.Atoi(string(raw[:i]))
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q is not a status code", ErrMalformedStatus, raw[:i])
	}
	return code, string(raw[i+len(statusDelimiter):]), nil
}
