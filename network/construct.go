package network

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/dendro"
	"go.uber.org/zap"
)

// Construct builds a Network from a validated matrix store.
//
// Pipeline: nodes from the store's dimension → dendrogram from the linkage
// table (when given) → threshold pass over the selected matrix → edge arena
// with per-matrix weight statistics → reduction to the cluster target →
// cluster assignments → scale domains. Every stage completes before
// Construct returns; the result is never observable half-built.
//
// Errors: ErrNilSet; ErrIndex for an out-of-range threshold matrix index;
// dendro.ErrCluster for a cluster target below 1; dendro.ErrLinkage for a
// malformed linkage table; any error of the threshold rule.
//
// Complexity: O(M·N²) for M matrices of dimension N.
func Construct(set *conmat.Set, opts ...Option) (*Network, error) {
	if set == nil {
		return nil, fmt.Errorf("Construct: %w", ErrNilSet)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.thIdx < 0 || cfg.thIdx >= set.MatrixCount() {
		return nil, fmt.Errorf("Construct: threshold matrix %d of %d: %w", cfg.thIdx, set.MatrixCount(), ErrIndex)
	}
	if cfg.k < 1 {
		return nil, fmt.Errorf("Construct: cluster count %d: %w", cfg.k, dendro.ErrCluster)
	}

	nw := &Network{
		set:    set,
		fn:     cfg.fn,
		params: cfg.params,
		thIdx:  cfg.thIdx,
		k:      cfg.k,
		log:    cfg.log,
	}
	nw.matrices = make([]*conmat.Dense, set.MatrixCount())
	for i := range nw.matrices {
		m, err := set.Matrix(i)
		if err != nil {
			return nil, fmt.Errorf("Construct: %w", err)
		}
		nw.matrices[i] = m
	}

	if err := nw.buildNodes(set); err != nil {
		return nil, fmt.Errorf("Construct: %w", err)
	}

	if cfg.linkage != nil {
		tree, err := dendro.Build(set.N(), cfg.linkage)
		if err != nil {
			return nil, fmt.Errorf("Construct: %w", err)
		}
		nw.tree = tree
	}

	if err := nw.rethreshold("construct"); err != nil {
		return nil, fmt.Errorf("Construct: %w", err)
	}

	if nw.tree != nil {
		if err := nw.tree.ReduceToK(nw.k); err != nil {
			return nil, fmt.Errorf("Construct: %w", err)
		}
		nw.assignClusters()
	}

	nw.scale = defaultScale(set)
	nw.recomputeScale()

	nw.log.Debug("network constructed",
		zap.Int("nodes", len(nw.nodes)),
		zap.Int("edges", len(nw.edges)),
		zap.Int("matrices", set.MatrixCount()),
		zap.Int("clusters", nw.ActiveClusters()))

	return nw, nil
}

// buildNodes creates the node arena once per construction: display names are
// 1-based, aux vectors and thumbnails gathered from the store, relations
// empty until the first edge pass.
func (nw *Network) buildNodes(set *conmat.Set) error {
	n := set.N()
	nw.nodes = make([]Node, n)
	for i := 0; i < n; i++ {
		aux, err := set.NodeAux(i)
		if err != nil {
			return err
		}
		thumb, err := set.Thumbnail(i)
		if err != nil {
			return err
		}
		nw.nodes[i] = Node{
			Index:      i,
			Name:       strconv.Itoa(i + 1),
			Aux:        aux,
			Thumbnail:  thumb,
			Cluster:    -1,
			TreeParent: -1,
			Source:     i,
		}
	}

	return nil
}

// assignClusters pulls the current assignment and immediate parents off the
// tree into the node arena.
func (nw *Network) assignClusters() {
	asg := nw.tree.Assignments()
	for i := range nw.nodes {
		nw.nodes[i].Cluster = asg[i]
		nw.nodes[i].TreeParent = nw.tree.LeafParent(i)
	}
}
