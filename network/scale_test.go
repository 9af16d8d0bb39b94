package network_test

import (
	"testing"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScale_DefaultsAndDomains checks the initial selection and the domains
// derived from the store's cached statistics.
func TestScale_DefaultsAndDomains(t *testing.T) {
	a, err := conmat.DenseOf([][]float64{
		{0, -4},
		{-4, 0},
	})
	require.NoError(t, err)
	b, err := conmat.DenseOf([][]float64{
		{0, 9},
		{9, 0},
	})
	require.NoError(t, err)
	set, err := conmat.NewSet([]*conmat.Dense{a, b}, []string{"corr", "alt"},
		conmat.WithAux("degree", []float64{3, 11}))
	require.NoError(t, err)

	nw, err := network.Construct(set, network.WithThreshold(passthrough{}))
	require.NoError(t, err)

	s := nw.ScaleState()
	assert.Equal(t, 0, s.EdgeWidthIndex)
	assert.Equal(t, 0, s.EdgeColourIndex)
	assert.Equal(t, 0, s.NodeColourIndex)
	assert.Equal(t, [2]float64{0, 4}, s.WidthDomain, "width uses absolute bounds")
	assert.Equal(t, [2]float64{-4, 0}, s.ColourDomain, "colour uses signed bounds")
	assert.Equal(t, [2]float64{3, 11}, s.NodeColourDomain)

	require.NoError(t, nw.SetEdgeWidthIndex(1))
	require.NoError(t, nw.SetEdgeColourIndex(1))
	s = nw.ScaleState()
	assert.Equal(t, [2]float64{0, 9}, s.WidthDomain)
	assert.Equal(t, [2]float64{0, 9}, s.ColourDomain)
}

// TestScale_IndexErrors verifies each selection index is validated against
// its own count and never clamped.
func TestScale_IndexErrors(t *testing.T) {
	set := storeOf(t, [][]float64{{0, 1}, {1, 0}}) // one matrix, no aux

	nw, err := network.Construct(set, network.WithThreshold(passthrough{}))
	require.NoError(t, err)

	assert.ErrorIs(t, nw.SetEdgeWidthIndex(1), network.ErrIndex)
	assert.ErrorIs(t, nw.SetEdgeColourIndex(-1), network.ErrIndex)
	assert.ErrorIs(t, nw.SetNodeColourIndex(0), network.ErrIndex, "no aux sources at all")
	assert.Equal(t, -1, nw.ScaleState().NodeColourIndex, "unset without aux data")
}
