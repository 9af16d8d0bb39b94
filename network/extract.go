package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/dendro"
	"github.com/katalvlaran/connectome/threshold"
	"go.uber.org/zap"
)

// ExtractSubnetwork builds the ego-graph of root: a fresh Network over root
// and its current neighbours, candidate indices sorted ascending. Every
// matrix, the current thresholded adjacency, and every aux array are gathered
// through the induced row/column selection; the builder then runs on the
// gathered adjacency as-is, so the extracted edge set is exactly the induced
// subgraph of the parent's current edges (re-thresholding the sub-matrices
// would change per-row maxima and break that). Node names are inherited
// unchanged from the parent; Node.Source records each node's parent index.
// The sub-network carries a single synthetic root cluster (no re-clustering)
// and a copy of the parent's threshold rule and parameters, so later
// mutations on it re-threshold its own sub-matrices independently.
//
// Returns ErrIndex on an out-of-range root. Complexity: O(M·k²) for k
// gathered nodes.
func (nw *Network) ExtractSubnetwork(root int) (*Network, error) {
	if root < 0 || root >= len(nw.nodes) {
		return nil, fmt.Errorf("ExtractSubnetwork(%d): %w", root, ErrIndex)
	}

	idxs := append([]int{root}, nw.nodes[root].Neighbors...)
	sort.Ints(idxs)

	subMats := make([]*conmat.Dense, len(nw.matrices))
	labels := make([]string, len(nw.matrices))
	for m, mat := range nw.matrices {
		sub, err := mat.Induced(idxs, idxs)
		if err != nil {
			return nil, fmt.Errorf("ExtractSubnetwork(%d): matrix %d: %w", root, m, err)
		}
		subMats[m] = sub
		labels[m], _ = nw.set.Label(m)
	}
	subAdj, err := nw.adj.Induced(idxs, idxs)
	if err != nil {
		return nil, fmt.Errorf("ExtractSubnetwork(%d): adjacency: %w", root, err)
	}

	opts := make([]conmat.SetOption, 0, nw.set.AuxCount()+1)
	for a := 0; a < nw.set.AuxCount(); a++ {
		src, auxErr := nw.set.Aux(a)
		if auxErr != nil {
			return nil, fmt.Errorf("ExtractSubnetwork(%d): %w", root, auxErr)
		}
		label, _ := nw.set.AuxLabel(a)
		gathered := make([]float64, len(idxs))
		for t, p := range idxs {
			gathered[t] = src[p]
		}
		opts = append(opts, conmat.WithAux(label, gathered))
	}
	thumbs := make([]string, len(idxs))
	for t, p := range idxs {
		thumbs[t] = nw.nodes[p].Thumbnail
	}
	opts = append(opts, conmat.WithThumbnails(thumbs))

	subSet, err := conmat.NewSet(subMats, labels, opts...)
	if err != nil {
		return nil, fmt.Errorf("ExtractSubnetwork(%d): %w", root, err)
	}

	params := make([]threshold.Param, len(nw.params))
	copy(params, nw.params)

	sub := &Network{
		set:      subSet,
		matrices: subMats,
		tree:     dendro.SingleCluster(len(idxs)),
		fn:       nw.fn,
		params:   params,
		thIdx:    nw.thIdx,
		k:        1,
		adj:      subAdj,
		log:      nw.log,
	}
	if err = sub.buildNodes(subSet); err != nil {
		return nil, fmt.Errorf("ExtractSubnetwork(%d): %w", root, err)
	}
	// Fresh node objects, identity mapped back to the parent network.
	for t, p := range idxs {
		sub.nodes[t].Name = nw.nodes[p].Name
		sub.nodes[t].Source = p
	}
	sub.rebuildEdges("extract")
	sub.assignClusters()
	sub.scale = defaultScale(subSet)
	sub.recomputeScale()

	nw.log.Debug("sub-network extracted",
		zap.Int("root", root),
		zap.Int("nodes", len(sub.nodes)),
		zap.Int("edges", len(sub.edges)))

	return sub, nil
}
