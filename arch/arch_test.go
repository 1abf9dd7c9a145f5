package arch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zghodsi/safetynets-gkr/network"
)

func TestReadParsesLayerDims(t *testing.T) {
	src := "2\n4\n4\n4\n"
	dims, err := Read(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, []network.LayerDims{
		{E: 1, D: 2, F: 2},
		{E: 1, D: 2, F: 2},
	}, dims)
}

func TestReadDegenerateWidths(t *testing.T) {
	// batch=1, input=1, one layer of output dim 2, one layer of output dim 1.
	src := "1\n1\n2\n1\n"
	dims, err := Read(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, []network.LayerDims{
		{E: 0, D: 0, F: 1},
		{E: 0, D: 1, F: 0},
	}, dims)
}

func TestReadRejectsMissingLayers(t *testing.T) {
	_, err := Read(strings.NewReader("2\n4\n"))
	assert.Error(t, err)
}

func TestReadRejectsNonNumeric(t *testing.T) {
	_, err := Read(strings.NewReader("2\n4\nabc\n"))
	assert.Error(t, err)
}
