// Package libjpeg decodes JPEG, JPEG-LS and JPEG-XT compressed image
// streams, as found in medical-imaging pixel data, and reports image
// parameters without a full decode. The entropy decoding itself lives in a
// native engine behind the engine.Engine contract; this package normalizes
// heterogeneous inputs, interprets the engine's status protocol, selects
// colour transforms from DICOM metadata, and shapes the engine's raw output
// into typed frames.
//
// All operations are synchronous and stateless; concurrent calls on
// independent inputs are safe.
package libjpeg

import (
	"github.com/pydicom/libjpeg.go/pkg/libjpeg/engine"
	"github.com/pydicom/libjpeg.go/pkg/libjpeg/transfer"
)

type options struct {
	transform    ColourTransform
	transformSet bool
	reshape      bool
	engine       engine.Engine
}

// Option adjusts a decode or parameter query.
type Option func(*options)

// WithTransform sets the colour transform the engine applies, bypassing
// photometric-interpretation selection.
func WithTransform(t ColourTransform) Option {
	return func(o *options) {
		o.transform = t
		o.transformSet = true
	}
}

// WithoutReshape skips the shape consistency check between the engine's
// declared parameters and its output; the frame keeps the flat sample view.
func WithoutReshape() Option {
	return func(o *options) { o.reshape = false }
}

// WithEngine uses e instead of the registered default engine.
func WithEngine(e engine.Engine) Option {
	return func(o *options) { o.engine = e }
}

func newOptions(opts []Option) options {
	o := options{reshape: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) resolveEngine() (engine.Engine, error) {
	if o.engine != nil {
		return o.engine, nil
	}
	return engine.Default()
}

// Decode fully decodes one compressed stream. The source is a file path, a
// byte buffer, or a seekable reader. Engine failures surface as a
// *DecodeError carrying the native code, its category and the engine's
// diagnostic; they are never retried, stream corruption is not transient.
func Decode(src any, opts ...Option) (*Frame, error) {
	o := newOptions(opts)
	eng, err := o.resolveEngine()
	if err != nil {
		return nil, err
	}
	buf, err := normalize(src)
	if err != nil {
		return nil, err
	}

	status, samples, raw := eng.Decode(buf, int(o.transform))
	code, msg, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, newDecodeError("Decode", code, msg)
	}

	params := paramsFromEngine(raw)
	if !o.reshape {
		return &Frame{Parameters: params, data: samples}, nil
	}
	return newFrame(samples, params)
}

// DecodeBytes decodes one compressed stream and returns the undifferentiated
// sample bytes without width reinterpretation or shaping. No colour
// transform is ever applied in this mode.
func DecodeBytes(src any, opts ...Option) ([]byte, Parameters, error) {
	opts = append(opts, WithTransform(TransformNone), WithoutReshape())
	frame, err := Decode(src, opts...)
	if err != nil {
		return nil, Parameters{}, err
	}
	return frame.Bytes(), frame.Parameters, nil
}

// DecodePixelData decodes DICOM pixel data, selecting the colour transform
// from the (0028,0004) Photometric Interpretation value in meta. An explicit
// WithTransform option takes precedence; otherwise a missing value is an
// error and an unrecognized one falls back to no transform with a warning.
// The result is the flat sample byte sequence.
func DecodePixelData(src any, meta Metadata, opts ...Option) ([]byte, Parameters, error) {
	o := newOptions(opts)
	if !o.transformSet {
		t, err := SelectTransform(meta["PhotometricInterpretation"])
		if err != nil {
			return nil, Parameters{}, err
		}
		opts = append(opts, WithTransform(t))
	}
	frame, err := Decode(src, append(opts, WithoutReshape())...)
	if err != nil {
		return nil, Parameters{}, err
	}
	return frame.Bytes(), frame.Parameters, nil
}

// GetParameters reports the image parameters declared by the stream headers
// without decoding the entropy-coded data.
func GetParameters(src any, opts ...Option) (Parameters, error) {
	o := newOptions(opts)
	eng, err := o.resolveEngine()
	if err != nil {
		return Parameters{}, err
	}
	buf, err := normalize(src)
	if err != nil {
		return Parameters{}, err
	}

	status, raw := eng.GetParameters(buf)
	code, msg, err := parseStatus(status)
	if err != nil {
		return Parameters{}, err
	}
	if code != 0 {
		return Parameters{}, newDecodeError("GetJPEGParameters", code, msg)
	}
	return paramsFromEngine(raw), nil
}

// Reconstruct decodes the JPEG file at fin and writes a PPM/PGM file to
// fout, plus a PGM alpha plane when falpha is non-empty. It is a straight
// pass-through of its arguments to the engine's reconstruct command.
func Reconstruct(fin, fout string, colourspace ColourTransform, falpha string, upsample bool) error {
	eng, err := engine.Default()
	if err != nil {
		return err
	}
	return eng.Reconstruct(fin, fout, int(colourspace), falpha, upsample)
}

// PixelDataDecoder decodes encapsulated pixel data using photometric
// metadata, in the shape downstream DICOM plumbing expects.
type PixelDataDecoder func(src any, meta Metadata, opts ...Option) ([]byte, Parameters, error)

// Decoders returns the decoder for each DICOM transfer syntax this library
// handles, keyed by Transfer Syntax UID.
func Decoders() map[transfer.Syntax]PixelDataDecoder {
	out := make(map[transfer.Syntax]PixelDataDecoder)
	for _, ts := range transfer.DecodableSyntaxes() {
		out[ts] = DecodePixelData
	}
	return out
}
