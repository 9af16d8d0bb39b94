package export_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/dendro"
	"github.com/katalvlaran/connectome/export"
	"github.com/katalvlaran/connectome/network"
	"github.com/katalvlaran/connectome/threshold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthrough clones its input unchanged; the fixtures below are already
// thresholded.
type passthrough struct{}

func (passthrough) Apply(m *conmat.Dense, _ []threshold.Param) (*conmat.Dense, error) {
	return m.Clone(), nil
}

func fixture(t *testing.T) *network.Network {
	t.Helper()
	nan := math.NaN()
	m, err := conmat.DenseOf([][]float64{
		{0, 5, nan},
		{5, 0, 1},
		{nan, 1, 0},
	})
	require.NoError(t, err)
	set, err := conmat.NewSet([]*conmat.Dense{m}, []string{"corr"},
		conmat.WithAux("degree", []float64{1, 2, 3}))
	require.NoError(t, err)

	nw, err := network.Construct(set,
		network.WithThreshold(passthrough{}),
		network.WithLinkage([]dendro.LinkageRow{
			{Left: 1, Right: 2, Distance: 0.1},
			{Left: 4, Right: 3, Distance: 0.5},
		}),
		network.WithClusterCount(2))
	require.NoError(t, err)

	return nw
}

// TestDocument snapshots the network and round-trips it through JSON.
func TestDocument(t *testing.T) {
	nw := fixture(t)

	doc := export.Document(nw)
	require.Len(t, doc.Nodes, 3)
	require.Len(t, doc.Links, 2)

	assert.Equal(t, "1", doc.Nodes[0].Name)
	assert.Equal(t, []float64{2}, doc.Nodes[1].Aux)
	assert.Equal(t, doc.Nodes[0].Cluster, doc.Nodes[1].Cluster)
	assert.NotEqual(t, doc.Nodes[0].Cluster, doc.Nodes[2].Cluster)
	assert.Equal(t, 0, doc.Links[0].Source)
	assert.Equal(t, 1, doc.Links[0].Target)
	assert.Equal(t, []float64{5}, doc.Links[0].Weights)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"links"`)

	// Snapshot semantics: the document survives a later mutation.
	require.NoError(t, nw.SetClusterCount(1))
	assert.NotEqual(t, doc.Nodes[0].Cluster, doc.Nodes[2].Cluster)
}

// TestAdjacencyDense checks the symmetric dense snapshot and zero-fill.
func TestAdjacencyDense(t *testing.T) {
	nw := fixture(t)

	adj, err := export.AdjacencyDense(nw, 0)
	require.NoError(t, err)

	r, c := adj.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 5.0, adj.At(0, 1))
	assert.Equal(t, 5.0, adj.At(1, 0))
	assert.Equal(t, 1.0, adj.At(1, 2))
	assert.Equal(t, 0.0, adj.At(0, 2), "absent edges are zero")

	_, err = export.AdjacencyDense(nw, 1)
	assert.ErrorIs(t, err, network.ErrIndex)
}

// TestWeightedGraph checks node ids, edge membership, and weights in the
// gonum graph view.
func TestWeightedGraph(t *testing.T) {
	nw := fixture(t)

	g, err := export.WeightedGraph(nw, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Nodes().Len())
	assert.True(t, g.HasEdgeBetween(0, 1))
	assert.True(t, g.HasEdgeBetween(2, 1))
	assert.False(t, g.HasEdgeBetween(0, 2))
	w, ok := g.Weight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 5.0, w)

	_, err = export.WeightedGraph(nw, -1)
	assert.ErrorIs(t, err, network.ErrIndex)
}
