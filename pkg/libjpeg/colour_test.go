package libjpeg

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pydicom/libjpeg.go/pkg/logging"
)

func TestSelectTransform_Table(t *testing.T) {
	cases := map[string]ColourTransform{
		"MONOCHROME1":  TransformNone,
		"MONOCHROME2":  TransformNone,
		"RGB":          TransformYCbCr,
		"YBR_FULL":     TransformNone,
		"YBR_FULL_422": TransformNone,
	}
	for label, want := range cases {
		got, err := SelectTransform(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}
}

func TestSelectTransform_MissingLabel(t *testing.T) {
	_, err := SelectTransform("")
	assert.ErrorIs(t, err, ErrMissingPhotometricInterpretation)
}

// An unrecognized label is best-effort: fall back to no transform, warn,
// and let the decode proceed.
func TestSelectTransform_UnknownLabelWarnsAndFallsBack(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.Logger(&buf, false, slog.LevelInfo))
	defer slog.SetDefault(prev)

	got, err := SelectTransform("PALETTE COLOR")
	require.NoError(t, err)
	assert.Equal(t, TransformNone, got)
	assert.Contains(t, buf.String(), "unsupported photometric interpretation")
	assert.Contains(t, buf.String(), "PALETTE COLOR")
}

func TestColourTransform_String(t *testing.T) {
	assert.Equal(t, "none", TransformNone.String())
	assert.Equal(t, "ycbcr", TransformYCbCr.String())
	assert.Equal(t, "rct", TransformRCT.String())
	assert.Equal(t, "freeform", TransformFreeform.String())
}
