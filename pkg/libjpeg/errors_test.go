package libjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Success(t *testing.T) {
	assert.Equal(t, KindSuccess, classify(0))
}

// Every code in the fixed table must land in a real category, never in
// KindUnknown.
func TestClassify_KnownCodesAreCategorized(t *testing.T) {
	for code, entry := range engineErrors {
		kind := classify(code)
		assert.Equal(t, entry.Kind, kind, "code %d", code)
		assert.NotEqual(t, KindUnknown, kind, "code %d", code)
		assert.NotEqual(t, KindSuccess, kind, "code %d", code)
	}
}

func TestClassify_UnknownCodes(t *testing.T) {
	for _, code := range []int{-1, -999, -2047, 7} {
		assert.Equal(t, KindUnknown, classify(code), "code %d", code)
	}
}

func TestClassify_Themes(t *testing.T) {
	assert.Equal(t, KindInputExhaustion, classify(-1025))
	assert.Equal(t, KindStructuralCorruption, classify(-1036))
	assert.Equal(t, KindStructuralCorruption, classify(-1037))
	assert.Equal(t, KindParameterMisuse, classify(-1024))
	assert.Equal(t, KindObjectLifecycle, classify(-2046))
	assert.Equal(t, KindInternalFault, classify(-1041))
	assert.Equal(t, KindEncodingDelay, classify(-1033))
}

func TestDecodeError_KnownCode(t *testing.T) {
	err := newDecodeError("Decode", -1036, "marker scan failed")
	require.Equal(t, -1036, err.Code)
	require.Equal(t, KindStructuralCorruption, err.Kind)
	assert.Equal(t, "marker scan failed", err.Message)

	// code, category description, then the native diagnostic, in that order
	assert.Equal(t,
		"libjpeg error code '-1036' returned from Decode(): "+
			"The stream passed in is no valid jpeg stream - marker scan failed",
		err.Error())
}

// Unknown codes keep their code and message rather than collapsing into a
// generic failure.
func TestDecodeError_UnknownCode(t *testing.T) {
	err := newDecodeError("GetJPEGParameters", -9999, "something new")
	require.Equal(t, -9999, err.Code)
	require.Equal(t, KindUnknown, err.Kind)
	assert.Equal(t, "something new", err.Message)
	assert.Equal(t,
		"unknown error code '-9999' returned from GetJPEGParameters(): something new",
		err.Error())
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "structural corruption", KindStructuralCorruption.String())
	assert.Equal(t, "unknown engine error", KindUnknown.String())
	assert.Equal(t, "success", KindSuccess.String())
}
