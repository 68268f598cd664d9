package libjpeg

import "github.com/pydicom/libjpeg.go/pkg/libjpeg/engine"

// Parameters describes the image geometry and sample precision declared by
// a compressed stream's headers.
type Parameters struct {
	Rows       int `json:"rows"`
	Columns    int `json:"columns"`
	Components int `json:"nr_components"`
	Precision  int `json:"precision"` // bits per sample, 1-16
}

func paramsFromEngine(p engine.Params) Parameters {
	return Parameters{
		Rows:       p.Rows,
		Columns:    p.Columns,
		Components: p.Components,
		Precision:  p.Precision,
	}
}

// BytesPerSample returns the storage width of one decoded sample: one byte
// for precisions up to 8 bits, two bytes above. Defined for every precision
// the stream header can declare.
func (p Parameters) BytesPerSample() int {
	if p.Precision > 8 {
		return 2
	}
	return 1
}

// SampleCount returns the number of samples a conforming decode yields.
func (p Parameters) SampleCount() int {
	return p.Rows * p.Columns * p.Components
}

// Shape returns the logical sample layout: [rows, columns] for a single
// component, [rows, columns, components] otherwise.
func (p Parameters) Shape() []int {
	if p.Components > 1 {
		return []int{p.Rows, p.Columns, p.Components}
	}
	return []int{p.Rows, p.Columns}
}
