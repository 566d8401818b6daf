package tsplib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInstance = `NAME : toy4
COMMENT : four cities on a unit square
TYPE : TSP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0.0 0.0
2 0.0 1.0
3 1.0 1.0
4 1.0 0.0
EOF
`

func TestParseSampleInstance(t *testing.T) {
	ins, err := Parse(strings.NewReader(sampleInstance))
	require.NoError(t, err)

	assert.Equal(t, "toy4", ins.Name)
	assert.Equal(t, 4, ins.Dimension)
	require.Len(t, ins.Points, 4)
	assert.Equal(t, 1.0, ins.Points[2].X)
	assert.Equal(t, 1.0, ins.Points[2].Y)

	m, err := ins.Matrix()
	require.NoError(t, err)
	d, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d, "rounded diagonal of the unit square")
}

func TestParseWithoutDimensionHeader(t *testing.T) {
	input := strings.NewReader(`EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 4
`)
	ins, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, 2, ins.Dimension, "dimension inferred from the rows")
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{
			"unsupported weight type",
			"EDGE_WEIGHT_TYPE : GEO\n",
			ErrUnsupportedWeightType,
		},
		{
			"missing weight type",
			"NODE_COORD_SECTION\n1 0 0\n",
			ErrBadFormat,
		},
		{
			"no coordinates",
			"EDGE_WEIGHT_TYPE : EUC_2D\nEOF\n",
			ErrBadFormat,
		},
		{
			"bad coordinate row",
			"EDGE_WEIGHT_TYPE : EUC_2D\nNODE_COORD_SECTION\n1 zero 0\n",
			ErrBadFormat,
		},
		{
			"dimension disagrees",
			"DIMENSION : 3\nEDGE_WEIGHT_TYPE : EUC_2D\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n",
			ErrDimensionMismatch,
		},
		{
			"negative dimension",
			"DIMENSION : -2\nEDGE_WEIGHT_TYPE : EUC_2D\nNODE_COORD_SECTION\n1 0 0\n",
			ErrBadFormat,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("definitely/not/here.tsp")
	assert.Error(t, err)
}
