package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntax_IsDecodable(t *testing.T) {
	for _, s := range DecodableSyntaxes() {
		assert.True(t, s.IsDecodable(), string(s))
	}
	assert.False(t, Syntax("1.2.840.10008.1.2").IsDecodable(), "uncompressed")
	assert.False(t, Syntax("1.2.840.10008.1.2.4.90").IsDecodable(), "JPEG 2000")
}

func TestSyntax_Name(t *testing.T) {
	assert.Equal(t, "JPEG Baseline (Process 1)", JPEGBaseline.Name())
	assert.Equal(t, "JPEG-LS Lossless", JPEGLSLossless.Name())
	assert.Contains(t, Syntax("1.2.3").Name(), "Unknown")
}
