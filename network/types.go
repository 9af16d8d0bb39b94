package network

import (
	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/dendro"
	"github.com/katalvlaran/connectome/threshold"
	"go.uber.org/zap"
)

// Node is one graph node in the network's arena. All relations are indices
// into the owning network's arenas; Node holds no pointers.
type Node struct {
	// Index is the node's identity within its network, in [0, N).
	Index int

	// Name is the display name, 1-based by construction. Extracted
	// sub-network nodes inherit the parent network's name unchanged.
	Name string

	// Aux holds one scalar per auxiliary data source, nil when the store has
	// none.
	Aux []float64

	// Thumbnail is an opaque reference for the renderer, "" when absent.
	Thumbnail string

	// Cluster is the assignment derived from the reduced dendrogram, -1
	// until a tree exists.
	Cluster int

	// Neighbors lists adjacent node indices; rebuilt on every threshold
	// pass, always symmetric with the edge set.
	Neighbors []int

	// Edges lists incident edge indices into the network's edge arena.
	Edges []int

	// TreeParent is the arena index of the node's immediate dendrogram
	// parent, -1 when the network has no tree or the leaf is an orphan.
	TreeParent int

	// Source is the node's index in the network it was extracted from; equal
	// to Index on a full network.
	Source int
}

// Edge is one undirected edge in the network's arena. U < V canonically.
// Weights holds matrix[U][V] for every matrix in the store, in store order;
// an entry may be NaN when a non-threshold matrix has no value for the pair
// (absence of the edge itself is expressed by omission, never by NaN).
type Edge struct {
	Index   int
	U, V    int
	Weights []float64
}

// Scale is the active scale/style selection: which matrix drives edge width
// and colour, which aux source drives node colour, and the value domains
// derived for each from the store's cached statistics. The colour math
// itself belongs to the renderer; the network only keeps the selection and
// its domains current.
type Scale struct {
	// EdgeWidthIndex and EdgeColourIndex select matrices; NodeColourIndex
	// selects an aux source and is -1 when the store has none.
	EdgeWidthIndex  int
	EdgeColourIndex int
	NodeColourIndex int

	// WidthDomain is [absolute min, absolute max] of the width matrix;
	// ColourDomain and NodeColourDomain are [min, max] of their sources.
	WidthDomain      [2]float64
	ColourDomain     [2]float64
	NodeColourDomain [2]float64
}

// Network owns one connectivity graph and every derived structure. See the
// package documentation for the ownership and concurrency contract.
type Network struct {
	set      *conmat.Set
	matrices []*conmat.Dense // gathered once from set, index-aligned
	tree     *dendro.Tree

	nodes []Node
	edges []Edge
	stats []conmat.Stats // per-matrix weight stats over the current edges

	fn     threshold.Func
	params []threshold.Param
	thIdx  int
	k      int
	adj    *conmat.Dense // current thresholded adjacency

	scale Scale
	log   *zap.Logger
}
