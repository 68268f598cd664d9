package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopEngine struct{}

func (nopEngine) Decode(buf []byte, colourTransform int) ([]byte, []byte, Params) {
	return []byte("0::::"), nil, Params{}
}

func (nopEngine) GetParameters(buf []byte) ([]byte, Params) {
	return []byte("0::::"), Params{}
}

func (nopEngine) Reconstruct(fin, fout string, colourspace int, falpha string, upsample bool) error {
	return nil
}

func TestDefault_Unregistered(t *testing.T) {
	Register(nil)
	_, err := Default()
	assert.ErrorIs(t, err, ErrNoEngine)
}

func TestRegisterAndDefault(t *testing.T) {
	Register(nopEngine{})
	defer Register(nil)

	e, err := Default()
	require.NoError(t, err)
	assert.Equal(t, nopEngine{}, e)
}
