package libjpeg

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedInput is returned when a source is none of the three
	// recognized kinds (path, byte buffer, seekable reader).
	ErrUnsupportedInput = errors.New("unsupported input kind")

	// ErrMalformedStatus is returned when an engine status token cannot
	// be split into a signed code and a message.
	ErrMalformedStatus = errors.New("malformed status token")

	// ErrShapeMismatch is returned when the engine's declared parameters
	// disagree with the sample buffer it actually produced.
	ErrShapeMismatch = errors.New("sample count does not match image parameters")

	// ErrMissingPhotometricInterpretation is returned when pixel-data
	// metadata carries no (0028,0004) Photometric Interpretation value
	// and no explicit transform was given.
	ErrMissingPhotometricInterpretation = errors.New(
		"the (0028,0004) Photometric Interpretation value is missing")
)

// ErrorKind groups the engine's status codes into failure categories.
type ErrorKind int

const (
	KindSuccess ErrorKind = iota
	KindInputExhaustion
	KindStructuralCorruption
	KindParameterMisuse
	KindObjectLifecycle
	KindInternalFault
	KindEncodingDelay
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindInputExhaustion:
		return "input exhaustion"
	case KindStructuralCorruption:
		return "structural corruption"
	case KindParameterMisuse:
		return "parameter misuse"
	case KindObjectLifecycle:
		return "object lifecycle"
	case KindInternalFault:
		return "internal engine fault"
	case KindEncodingDelay:
		return "encoding delay"
	default:
		return "unknown engine error"
	}
}

// engineErrors is the fixed table of known libjpeg status codes with the
// diagnostic text the engine documents for each. Initialized once, never
// mutated, safe for concurrent reads.
var engineErrors = map[int]struct {
	Kind ErrorKind
	Desc string
}{
	-1024: {KindParameterMisuse, "A parameter for a function was out of range"},
	-1025: {KindInputExhaustion, "Stream run out of data"},
	-1026: {KindInputExhaustion, "A code block run out of data"},
	-1027: {KindInputExhaustion, "Tried to perform an unputc or an unget on an empty stream"},
	-1028: {KindParameterMisuse, "Some parameter run out of range"},
	-1029: {KindInternalFault, "The requested operation does not apply"},
	-1030: {KindObjectLifecycle, "Tried to create an already existing object"},
	-1031: {KindObjectLifecycle, "Tried to access a non-existing object"},
	-1032: {KindParameterMisuse, "A non-optional parameter was left out"},
	-1033: {KindEncodingDelay, "Forgot to delay a 0xFF"},
	-1034: {KindInternalFault, "Internal error: the requested operation is not available"},
	-1035: {KindInternalFault, "Internal error: an item computed on a former pass does not coincide with the same item on a later pass"},
	-1036: {KindStructuralCorruption, "The stream passed in is no valid jpeg stream"},
	-1037: {KindStructuralCorruption, "A unique marker turned up more than once. The input stream is most likely corrupt"},
	-1038: {KindStructuralCorruption, "A misplaced marker segment was found"},
	-1040: {KindParameterMisuse, "The specified parameters are valid, but are not supported by the selected profile"},
	-1041: {KindInternalFault, "Internal error: the worker thread that was currently active had to terminate unexpectedly"},
	-1042: {KindInternalFault, "The encoder tried to emit a symbol for which no Huffman code was defined"},
	-2046: {KindObjectLifecycle, "Failed to construct the JPEG object"},
}

// classify is total over the status code space: zero is success and any
// nonzero code absent from the table is KindUnknown, so engine versions that
// introduce new codes stay usable.
func classify(code int) ErrorKind {
	if code == 0 {
		return KindSuccess
	}
	if e, ok := engineErrors[code]; ok {
		return e.Kind
	}
	return KindUnknown
}

// DecodeError reports a failed native call: the numeric status code, its
// category, and the engine's free-text diagnostic. Classification never
// drops information; unknown codes keep their code and message.
type DecodeError struct {
	Op      string // native entry point, e.g. "Decode"
	Code    int
	Kind    ErrorKind
	Desc    string // category description for known codes
	Message string // verbatim engine diagnostic
}

func (e *DecodeError) Error() string {
	if e.Kind == KindUnknown {
		return fmt.Sprintf("unknown error code '%d' returned from %s(): %s",
			e.Code, e.Op, e.Message)
	}
	return fmt.Sprintf("libjpeg error code '%d' returned from %s(): %s - %s",
		e.Code, e.Op, e.Desc, e.Message)
}

func newDecodeError(op string, code int, msg string) *DecodeError {
	err := &DecodeError{Op: op, Code: code, Kind: classify(code), Message: msg}
	if e, ok := engineErrors[code]; ok {
		err.Desc = e.Desc
	}
	return err
}
