package network_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/network"
	"github.com/katalvlaran/connectome/threshold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// egoFixture is a 4-node network with edges (0,1)=5, (0,2)=2, (2,3)=7:
// node 0's ego covers {0,1,2}, node 3's covers {2,3}.
func egoFixture(t *testing.T) *network.Network {
	t.Helper()
	nan := math.NaN()
	set := storeOf(t, [][]float64{
		{0, 5, 2, nan},
		{5, 0, nan, nan},
		{2, nan, 0, 7},
		{nan, nan, 7, 0},
	}, conmat.WithAux("degree", []float64{10, 20, 30, 40}))

	// The dummy parameter keeps SetThresholdParam exercisable on the
	// extracted network; passthrough itself ignores it.
	nw, err := network.Construct(set,
		network.WithThreshold(passthrough{}, threshold.Param{Name: "p", Value: 0.5}))
	require.NoError(t, err)

	return nw
}

// TestExtractSubnetwork_Containment checks the candidate set, the Source
// back-references, and the inherited display names.
func TestExtractSubnetwork_Containment(t *testing.T) {
	nw := egoFixture(t)

	sub, err := nw.ExtractSubnetwork(0)
	require.NoError(t, err)

	require.Equal(t, 3, sub.N(), "root plus two neighbours")
	wantSource := []int{0, 1, 2}
	wantName := []string{"1", "2", "3"}
	for i, node := range sub.Nodes() {
		assert.Equal(t, wantSource[i], node.Source)
		assert.Equal(t, wantName[i], node.Name, "names inherited, not renumbered")
		assert.Equal(t, i, node.Index, "fresh arena identity")
	}

	root, _ := nw.Node(0)
	allowed := map[int]bool{0: true}
	for _, j := range root.Neighbors {
		allowed[j] = true
	}
	for _, node := range sub.Nodes() {
		assert.True(t, allowed[node.Source], "node %d maps outside the ego set", node.Index)
	}
}

// TestExtractSubnetwork_InducedEdges verifies the extracted edge set is
// exactly the induced subgraph — (1,2) must stay absent even though both
// endpoints are present.
func TestExtractSubnetwork_InducedEdges(t *testing.T) {
	nw := egoFixture(t)

	sub, err := nw.ExtractSubnetwork(0)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 1}, {0, 2}}, edgeSet(sub))
	e, _ := sub.Edge(0)
	assert.Equal(t, []float64{5}, e.Weights, "weights gathered from the induced matrices")
}

// TestExtractSubnetwork_SingleCluster verifies the synthetic one-cluster
// tree and the gathered aux data.
func TestExtractSubnetwork_SingleCluster(t *testing.T) {
	nw := egoFixture(t)

	sub, err := nw.ExtractSubnetwork(3)
	require.NoError(t, err)

	require.Equal(t, 2, sub.N())
	require.NotNil(t, sub.Tree())
	assert.Equal(t, 1, sub.ActiveClusters())
	assert.Equal(t, 1, sub.ClusterCount())
	for _, node := range sub.Nodes() {
		assert.Equal(t, 0, node.Cluster)
	}
	assert.Equal(t, []string{"3", "4"}, []string{sub.Nodes()[0].Name, sub.Nodes()[1].Name})
	assert.Equal(t, []float64{30}, sub.Nodes()[0].Aux, "aux gathered in sorted index order")
	assert.Equal(t, []float64{40}, sub.Nodes()[1].Aux)
	assert.Equal(t, [][2]int{{0, 1}}, edgeSet(sub))
}

// TestExtractSubnetwork_IndependentMutation verifies the sub-network owns
// its state: mutating its threshold leaves the parent untouched.
func TestExtractSubnetwork_IndependentMutation(t *testing.T) {
	nw := egoFixture(t)
	parentEdges := edgeSet(nw)

	sub, err := nw.ExtractSubnetwork(0)
	require.NoError(t, err)
	require.NoError(t, sub.SetThresholdParam(0, 0.9))

	assert.Equal(t, parentEdges, edgeSet(nw), "parent unaffected")
}

// TestExtractSubnetwork_BadRoot validates the root index.
func TestExtractSubnetwork_BadRoot(t *testing.T) {
	nw := egoFixture(t)

	_, err := nw.ExtractSubnetwork(-1)
	assert.ErrorIs(t, err, network.ErrIndex)
	_, err = nw.ExtractSubnetwork(4)
	assert.ErrorIs(t, err, network.ErrIndex)
}
