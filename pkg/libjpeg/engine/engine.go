// Package engine defines the call surface of the native libjpeg decoding
// engine. The orchestration layer in pkg/libjpeg talks to the engine only
// through this contract; the default implementation is registered by a
// binding package (see the native subpackage) or, in tests, by a scripted
// engine from enginetest.
package engine

import (
	"errors"
	"sync"
)

// Params is the parameter block the engine reports for a compressed stream:
// image geometry plus the declared bits per sample (1-16).
type Params struct {
	Rows       int `json:"rows"`
	Columns    int `json:"columns"`
	Components int `json:"nr_components"`
	Precision  int `json:"precision"`
}

// Engine is the fixed low-level contract of the native decoder.
//
// Every call returns a status token of the form "<signed-int>::::<message>";
// code 0 is success. The engine treats the input buffer as untrusted and
// bounds-checks against the supplied length itself, so callers pass the
// compressed stream through verbatim. Calls are synchronous and retain no
// state between invocations; an Engine must be safe for concurrent use on
// independent inputs.
type Engine interface {
	// Decode fully decodes one compressed stream, applying the given
	// colour transform (0=none, 1=RGB to YCbCr, 2=RCT, 3=freeform).
	Decode(buf []byte, colourTransform int) (status []byte, samples []byte, params Params)

	// GetParameters inspects the stream headers without decoding the
	// entropy-coded data.
	GetParameters(buf []byte) (status []byte, params Params)

	// Reconstruct decodes the JPEG file at fin and writes a PPM/PGM file
	// to fout, plus a PGM alpha plane to falpha when non-empty. It is a
	// command pass-through with no status token.
	Reconstruct(fin, fout string, colourspace int, falpha string, upsample bool) error
}

// ErrNoEngine is returned by Default when no engine has been registered.
var ErrNoEngine = errors.New("no libjpeg engine registered")

var (
	mu         sync.RWMutex
	registered Engine
)

// Register installs e as the engine used by the package-level decode
// functions. Binding packages call this from init.
func Register(e Engine) {
	mu.Lock()
	defer mu.Unlock()
	registered = e
}

// Default returns the registered engine.
func Default() (Engine, error) {
	mu.RLock()
	defer mu.RUnlock()
	if registered == nil {
		return nil, ErrNoEngine
	}
	return registered, nil
}
