package libjpeg

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

// Frame is a decoded image: the engine's raw sample bytes plus the
// parameters describing their layout. The storage width of a sample follows
// the declared precision (see Parameters.BytesPerSample); multi-byte samples
// are little-endian. The caller owns the frame exclusively once returned.
type Frame struct {
	Parameters
	data []byte
}

// newFrame checks the engine's declared parameters against the byte count
// it actually produced before accepting the buffer.
func newFrame(data []byte, p Parameters) (*Frame, error) {
	bps := p.BytesPerSample()
	if len(data)%bps != 0 || len(data)/bps != p.SampleCount() {
		return nil, fmt.Errorf("%w: %d bytes for %dx%dx%d at %d byte(s) per sample",
			ErrShapeMismatch, len(data), p.Rows, p.Columns, p.Components, bps)
	}
	return &Frame{Parameters: p, data: data}, nil
}

// Bytes returns the undifferentiated sample bytes.
func (f *Frame) Bytes() []byte { return f.data }

// Len returns the number of samples in the frame.
func (f *Frame) Len() int { return len(f.data) / f.BytesPerSample() }

// Samples8 returns the samples of a one-byte-per-sample frame, sharing the
// underlying buffer. It returns nil for two-byte frames.
func (f *Frame) Samples8() []uint8 {
	if f.BytesPerSample() != 1 {
		return nil
	}
	return f.data
}

// Samples16 returns the samples of a two-byte-per-sample frame,
// reinterpreted as little-endian. It returns nil for one-byte frames.
func (f *Frame) Samples16() []uint16 {
	if f.BytesPerSample() != 2 {
		return nil
	}
	out := make([]uint16, len(f.data)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(f.data[2*i:])
	}
	return out
}

// At returns the sample at (row, col, component) in the frame's logical
// [rows, columns, components] layout.
func (f *Frame) At(row, col, component int) int {
	idx := (row*f.Columns+col)*f.Components + component
	if f.BytesPerSample() == 2 {
		return int(binary.LittleEndian.Uint16(f.data[2*idx:]))
	}
	return int(f.data[idx])
}

// Image renders the frame as a standard library image: Gray for 8-bit
// single component, Gray16 for deeper single component, NRGBA for 8-bit
// three component data. Other layouts are not representable.
func (f *Frame) Image() (image.Image, error) {
	rect := image.Rect(0, 0, f.Columns, f.Rows)
	switch {
	case f.Components == 1 && f.BytesPerSample() == 1:
		return &image.Gray{Pix: f.data, Stride: f.Columns, Rect: rect}, nil
	case f.Components == 1 && f.BytesPerSample() == 2:
		img := image.NewGray16(rect)
		for i, v := range f.Samples16() {
			img.SetGray16(i%f.Columns, i/f.Columns, color.Gray16{Y: v})
		}
		return img, nil
	case f.Components == 3 && f.BytesPerSample() == 1:
		img := image.NewNRGBA(rect)
		for i := 0; i < f.Rows*f.Columns; i++ {
			img.SetNRGBA(i%f.Columns, i/f.Columns, color.NRGBA{
				R: f.data[3*i],
				G: f.data[3*i+1],
				B: f.data[3*i+2],
				A: 0xFF,
			})
		}
		return img, nil
	}
	return nil, fmt.Errorf("no image representation for %d component(s) at %d byte(s) per sample",
		f.Components, f.BytesPerSample())
}
