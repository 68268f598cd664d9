package libjpeg

import "log/slog"

// ColourTransform selects the colour conversion the engine applies during
// decode. The values are the engine's own colourspace codes and are passed
// through opaquely.
type ColourTransform int

const (
	TransformNone     ColourTransform = 0 // no transform
	TransformYCbCr    ColourTransform = 1 // RGB to YCbCr
	TransformRCT      ColourTransform = 2 // JPEG-LS pseudo-RCT or RCT
	TransformFreeform ColourTransform = 3
)

func (t ColourTransform) String() string {
	switch t {
	case TransformNone:
		return "none"
	case TransformYCbCr:
		return "ycbcr"
	case TransformRCT:
		return "rct"
	case TransformFreeform:
		return "freeform"
	}
	return "invalid"
}

// Metadata is the mapping-like view of the DICOM elements relevant to pixel
// data decoding. Only PhotometricInterpretation is consulted; no wider
// schema is interpreted.
type Metadata map[string]string

// photometricTransforms maps DICOM (0028,0004) Photometric Interpretation
// values to the colour transform the engine should apply.
var photometricTransforms = map[string]ColourTransform{
	"MONOCHROME1":  TransformNone,
	"MONOCHROME2":  TransformNone,
	"RGB":          TransformYCbCr,
	"YBR_FULL":     TransformNone,
	"YBR_FULL_422": TransformNone,
}

// SelectTransform picks the colour transform for a photometric
// interpretation value. An empty value fails; a value outside the known set
// logs a warning and falls back to no transform, and decoding proceeds.
func SelectTransform(photometricInterpretation string) (ColourTransform, error) {
	if photometricInterpretation == "" {
		return TransformNone, ErrMissingPhotometricInterpretation
	}
	t, ok := photometricTransforms[photometricInterpretation]
	if !ok {
		slog.Warn("unsupported photometric interpretation, no colour transformation will be applied",
			"photometric_interpretation", photometricInterpretation)
		return TransformNone, nil
	}
	return t, nil
}
