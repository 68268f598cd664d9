package libjpeg

import (
	"fmt"
	"io"
	"os"
)

// normalize turns a source into the single contiguous buffer the engine
// consumes. A source is a filesystem path, an in-memory buffer (used as-is,
// no copy), or a seekable reader drained to the end. File handles are scoped
// to this call and released on every exit path.
func normalize(src any) ([]byte, error) {
	switch s := src.(type) {
	case string:
		buf, err := os.ReadFile(s)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", s, err)
		}
		return buf, nil
	case []byte:
		return s, nil
	case io.ReadSeeker:
		buf, err := io.ReadAll(s)
		if err != nil {
			return nil, fmt.Errorf("reading stream: %w", err)
		}
		return buf, nil
	case io.Reader:
		// read alone is not enough; the engine contract wants
		// seek/tell capable streams
		return nil, fmt.Errorf("%w: reader without seek support", ErrUnsupportedInput)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, src)
	}
}
