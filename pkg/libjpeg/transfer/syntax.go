// Package transfer defines the DICOM Transfer Syntaxes whose pixel data
// this library can decode.
package transfer

// Syntax represents a DICOM Transfer Syntax
type Syntax string

const (
	// JPEG (ISO/IEC 10918)
	JPEGBaseline    Syntax = "1.2.840.10008.1.2.4.50" // Process 1
	JPEGExtended    Syntax = "1.2.840.10008.1.2.4.51" // Processes 2 and 4
	JPEGLossless    Syntax = "1.2.840.10008.1.2.4.57" // Process 14
	JPEGLosslessSV1 Syntax = "1.2.840.10008.1.2.4.70" // Process 14, Selection Value 1

	// JPEG-LS (ISO/IEC 14495)
	JPEGLSLossless     Syntax = "1.2.840.10008.1.2.4.80"
	JPEGLSNearLossless Syntax = "1.2.840.10008.1.2.4.81"
)

// decodable is the fixed set of syntaxes the engine handles.
var decodable = map[Syntax]bool{
	JPEGBaseline:       true,
	JPEGExtended:       true,
	JPEGLossless:       true,
	JPEGLosslessSV1:    true,
	JPEGLSLossless:     true,
	JPEGLSNearLossless: true,
}

// IsDecodable returns true if pixel data in this transfer syntax can be
// decoded by this library.
func (s Syntax) IsDecodable() bool {
	return decodable[s]
}

// Name returns a human-readable name for the transfer syntax
func (s Syntax) Name() string {
	switch s {
	case JPEGBaseline:
		return "JPEG Baseline (Process 1)"
	case JPEGExtended:
		return "JPEG Extended (Processes 2 and 4)"
	case JPEGLossless:
		return "JPEG Lossless (Process 14)"
	case JPEGLosslessSV1:
		return "JPEG Lossless (Process 14, Selection Value 1)"
	case JPEGLSLossless:
		return "JPEG-LS Lossless"
	case JPEGLSNearLossless:
		return "JPEG-LS Near Lossless"
	default:
		return "Unknown (" + string(s) + ")"
	}
}

// DecodableSyntaxes returns the transfer syntaxes this library can decode.
func DecodableSyntaxes() []Syntax {
	return []Syntax{
		JPEGBaseline,
		JPEGExtended,
		JPEGLossless,
		JPEGLosslessSV1,
		JPEGLSLossless,
		JPEGLSNearLossless,
	}
}
