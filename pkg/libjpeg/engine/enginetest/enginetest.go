// Package enginetest provides a scripted engine for exercising the decode
// orchestration without a native library present.
package enginetest

import (
	"fmt"
	"sync"

	"github.com/pydicom/libjpeg.go/pkg/libjpeg/engine"
)

// DecodeCall records one Decode invocation.
type DecodeCall struct {
	Buf             []byte
	ColourTransform int
}

// ReconstructCall records one Reconstruct invocation.
type ReconstructCall struct {
	Fin, Fout   string
	Colourspace int
	Alpha       string
	Upsample    bool
}

// Engine returns canned results and records every call it receives.
// The zero value reports success with empty output.
type Engine struct {
	Status  string // raw status token; "" means "0::::"
	Samples []byte
	Params  engine.Params

	ReconstructErr error

	mu           sync.Mutex
	Decodes      []DecodeCall
	ParamQueries [][]byte
	Reconstructs []ReconstructCall
}

// Success builds an engine that decodes to the given geometry, filling the
// sample buffer with a ramp so tests can check content survives untouched.
func Success(rows, columns, components, precision int) *Engine {
	bps := 1
	if precision > 8 {
		bps = 2
	}
	samples := make([]byte, rows*columns*components*bps)
	for i := range samples {
		samples[i] = byte(i)
	}
	return &Engine{
		Samples: samples,
		Params:  engine.Params{Rows: rows, Columns: columns, Components: components, Precision: precision},
	}
}

// Failing builds an engine whose every call reports the given status code
// and diagnostic.
func Failing(code int, msg string) *Engine {
	return &Engine{Status: fmt.Sprintf("%d::::%s", code, msg)}
}

func (e *Engine) status() []byte {
	if e.Status == "" {
		return []byte("0::::")
	}
	return []byte(e.Status)
}

func (e *Engine) Decode(buf []byte, colourTransform int) ([]byte, []byte, engine.Params) {
	e.mu.Lock()
	e.Decodes = append(e.Decodes, DecodeCall{Buf: buf, ColourTransform: colourTransform})
	e.mu.Unlock()
	return e.status(), e.Samples, e.Params
}

func (e *Engine) GetParameters(buf []byte) ([]byte, engine.Params) {
	e.mu.Lock()
	e.ParamQueries = append(e.ParamQueries, buf)
	e.mu.Unlock()
	return e.status(), e.Params
}

func (e *Engine) Reconstruct(fin, fout string, colourspace int, falpha string, upsample bool) error {
	e.mu.Lock()
	e.Reconstructs = append(e.Reconstructs, ReconstructCall{
		Fin: fin, Fout: fout, Colourspace: colourspace, Alpha: falpha, Upsample: upsample,
	})
	e.mu.Unlock()
	return e.ReconstructErr
}
