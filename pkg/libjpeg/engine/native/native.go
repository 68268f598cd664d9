//go:build libjpeg && cgo

// Package native binds the libjpeg interface shim. Building it requires the
// shim library on the link path (build with -tags libjpeg); without the tag
// the module carries no cgo and callers supply their own engine.
package native

/*
#cgo LDFLAGS: -ljpegint -lstdc++

#include <stdlib.h>

// Entry points exported by the libjpeg interface shim. Every status string
// has the form "<code>::::<message>" and is heap-allocated by the shim, as
// is the sample buffer; both are released with jpegint_free.

typedef struct {
    unsigned int rows;
    unsigned int columns;
    unsigned int nr_components;
    unsigned int precision;
} jpegint_params;

extern char *jpegint_decode(const unsigned char *buf, unsigned long len,
                            int colour_transform,
                            unsigned char **out, unsigned long *out_len,
                            jpegint_params *params);
extern char *jpegint_get_parameters(const unsigned char *buf, unsigned long len,
                                    jpegint_params *params);
extern int jpegint_reconstruct(const char *fin, const char *fout, int colourspace,
                               const char *falpha, int upsample);
extern void jpegint_free(void *p);
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/pydicom/libjpeg.go/pkg/libjpeg/engine"
)

func init() {
	engine.Register(Engine{})
}

// Engine is the cgo-backed native engine.
type Engine struct{}

func goParams(p C.jpegint_params) engine.Params {
	return engine.Params{
		Rows:       int(p.rows),
		Columns:    int(p.columns),
		Components: int(p.nr_components),
		Precision:  int(p.precision),
	}
}

func cbuf(buf []byte) *C.uchar {
	if len(buf) == 0 {
		return nil
	}
	return (*C.uchar)(unsafe.Pointer(&buf[0]))
}

func (Engine) Decode(buf []byte, colourTransform int) ([]byte, []byte, engine.Params) {
	var (
		out    *C.uchar
		outLen C.ulong
		params C.jpegint_params
	)
	cs := C.jpegint_decode(cbuf(buf), C.ulong(len(buf)), C.int(colourTransform), &out, &outLen, &params)
	status := []byte(C.GoString(cs))
	C.jpegint_free(unsafe.Pointer(cs))

	var samples []byte
	if out != nil {
		samples = C.GoBytes(unsafe.Pointer(out), C.int(outLen))
		C.jpegint_free(unsafe.Pointer(out))
	}
	return status, samples, goParams(params)
}

func (Engine) GetParameters(buf []byte) ([]byte, engine.Params) {
	var params C.jpegint_params
	cs := C.jpegint_get_parameters(cbuf(buf), C.ulong(len(buf)), &params)
	status := []byte(C.GoString(cs))
	C.jpegint_free(unsafe.Pointer(cs))
	return status, goParams(params)
}

func (Engine) Reconstruct(fin, fout string, colourspace int, falpha string, upsample bool) error {
	cin := C.CString(fin)
	defer C.free(unsafe.Pointer(cin))
	cout := C.CString(fout)
	defer C.free(unsafe.Pointer(cout))

	var calpha *C.char
	if falpha != "" {
		calpha = C.CString(falpha)
		defer C.free(unsafe.Pointer(calpha))
	}

	up := C.int(0)
	if upsample {
		up = 1
	}
	if rc := C.jpegint_reconstruct(cin, cout, C.int(colourspace), calpha, up); rc != 0 {
		return fmt.Errorf("reconstruct of %q failed with rc %d", fin, int(rc))
	}
	return nil
}
