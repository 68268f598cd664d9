package libjpeg

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesPerSample_Boundary(t *testing.T) {
	for p := 1; p <= 8; p++ {
		assert.Equal(t, 1, Parameters{Precision: p}.BytesPerSample(), "precision %d", p)
	}
	for p := 9; p <= 16; p++ {
		assert.Equal(t, 2, Parameters{Precision: p}.BytesPerSample(), "precision %d", p)
	}
}

func TestParameters_Shape(t *testing.T) {
	assert.Equal(t, []int{100, 200},
		Parameters{Rows: 100, Columns: 200, Components: 1, Precision: 8}.Shape())
	assert.Equal(t, []int{100, 200, 3},
		Parameters{Rows: 100, Columns: 200, Components: 3, Precision: 8}.Shape())
}

func TestNewFrame_ChecksDeclaredParameters(t *testing.T) {
	p := Parameters{Rows: 2, Columns: 3, Components: 1, Precision: 8}

	frame, err := newFrame(make([]byte, 6), p)
	require.NoError(t, err)
	assert.Equal(t, 6, frame.Len())

	// engine declared 2x3 but produced 5 samples
	_, err = newFrame(make([]byte, 5), p)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// odd byte count for a 16-bit frame
	p16 := Parameters{Rows: 2, Columns: 3, Components: 1, Precision: 12}
	_, err = newFrame(make([]byte, 11), p16)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFrame_Samples8(t *testing.T) {
	p := Parameters{Rows: 1, Columns: 4, Components: 1, Precision: 8}
	frame, err := newFrame([]byte{1, 2, 3, 4}, p)
	require.NoError(t, err)

	assert.Equal(t, []uint8{1, 2, 3, 4}, frame.Samples8())
	assert.Nil(t, frame.Samples16())
}

func TestFrame_Samples16_LittleEndian(t *testing.T) {
	p := Parameters{Rows: 1, Columns: 2, Components: 1, Precision: 16}
	frame, err := newFrame([]byte{0x34, 0x12, 0xFF, 0x00}, p)
	require.NoError(t, err)

	assert.Nil(t, frame.Samples8())
	assert.Equal(t, []uint16{0x1234, 0x00FF}, frame.Samples16())
	assert.Equal(t, 2, frame.Len())
}

func TestFrame_At(t *testing.T) {
	// 2x2 RGB, 8-bit
	p := Parameters{Rows: 2, Columns: 2, Components: 3, Precision: 8}
	data := []byte{
		10, 11, 12, 20, 21, 22,
		30, 31, 32, 40, 41, 42,
	}
	frame, err := newFrame(data, p)
	require.NoError(t, err)

	assert.Equal(t, 10, frame.At(0, 0, 0))
	assert.Equal(t, 22, frame.At(0, 1, 2))
	assert.Equal(t, 31, frame.At(1, 0, 1))
	assert.Equal(t, 42, frame.At(1, 1, 2))
}

func TestFrame_Image(t *testing.T) {
	gray, err := newFrame(make([]byte, 4), Parameters{Rows: 2, Columns: 2, Components: 1, Precision: 8})
	require.NoError(t, err)
	img, err := gray.Image()
	require.NoError(t, err)
	assert.IsType(t, &image.Gray{}, img)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())

	gray16, err := newFrame(make([]byte, 8), Parameters{Rows: 2, Columns: 2, Components: 1, Precision: 12})
	require.NoError(t, err)
	img, err = gray16.Image()
	require.NoError(t, err)
	assert.IsType(t, &image.Gray16{}, img)

	rgb, err := newFrame(make([]byte, 12), Parameters{Rows: 2, Columns: 2, Components: 3, Precision: 8})
	require.NoError(t, err)
	img, err = rgb.Image()
	require.NoError(t, err)
	assert.IsType(t, &image.NRGBA{}, img)

	// 16-bit three component has no stdlib representation
	deepRGB, err := newFrame(make([]byte, 24), Parameters{Rows: 2, Columns: 2, Components: 3, Precision: 16})
	require.NoError(t, err)
	_, err = deepRGB.Image()
	assert.Error(t, err)
}
