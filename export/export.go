package export

import (
	"fmt"
	"math"

	"github.com/katalvlaran/connectome/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// NodeDoc is one node of the JSON document.
type NodeDoc struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Cluster   int       `json:"cluster"`
	Aux       []float64 `json:"aux,omitempty"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Source    int       `json:"source"`
}

// LinkDoc is one edge of the JSON document. Weights are index-aligned with
// the network's matrices.
type LinkDoc struct {
	Source  int       `json:"source"`
	Target  int       `json:"target"`
	Weights []float64 `json:"weights"`
}

// GraphDoc is the renderer-facing JSON view of one network.
type GraphDoc struct {
	Nodes []NodeDoc `json:"nodes"`
	Links []LinkDoc `json:"links"`
}

// Document snapshots the network into a GraphDoc. Complexity: O(N+E).
func Document(nw *network.Network) *GraphDoc {
	doc := &GraphDoc{
		Nodes: make([]NodeDoc, 0, nw.N()),
		Links: make([]LinkDoc, 0, nw.EdgeCount()),
	}
	for _, n := range nw.Nodes() {
		aux := make([]float64, len(n.Aux))
		copy(aux, n.Aux)
		if len(aux) == 0 {
			aux = nil
		}
		doc.Nodes = append(doc.Nodes, NodeDoc{
			ID:        n.Index,
			Name:      n.Name,
			Cluster:   n.Cluster,
			Aux:       aux,
			Thumbnail: n.Thumbnail,
			Source:    n.Source,
		})
	}
	for _, e := range nw.Edges() {
		weights := make([]float64, len(e.Weights))
		copy(weights, e.Weights)
		doc.Links = append(doc.Links, LinkDoc{Source: e.U, Target: e.V, Weights: weights})
	}

	return doc
}

// AdjacencyDense snapshots the current edge set into a gonum dense adjacency
// matrix of the chosen weight matrix: symmetric, 0 where no edge exists and
// where the edge's weight for that matrix is NaN (dense consumers cannot
// represent absence any other way). Returns network.ErrIndex on an
// out-of-range matrix index. Complexity: O(N²).
func AdjacencyDense(nw *network.Network, matrixIdx int) (*mat.Dense, error) {
	if matrixIdx < 0 || matrixIdx >= nw.Set().MatrixCount() {
		return nil, fmt.Errorf("AdjacencyDense(%d): %w", matrixIdx, network.ErrIndex)
	}

	out := mat.NewDense(nw.N(), nw.N(), nil)
	for _, e := range nw.Edges() {
		w := e.Weights[matrixIdx]
		if math.IsNaN(w) {
			continue
		}
		out.Set(e.U, e.V, w)
		out.Set(e.V, e.U, w)
	}

	return out, nil
}

// WeightedGraph snapshots the current edge set into a gonum simple weighted
// undirected graph: node ids equal network node indices, edge weights come
// from the chosen matrix. Edges whose weight is NaN for that matrix are
// skipped, matching AdjacencyDense. Returns network.ErrIndex on an
// out-of-range matrix index. Complexity: O(N+E).
func WeightedGraph(nw *network.Network, matrixIdx int) (*simple.WeightedUndirectedGraph, error) {
	if matrixIdx < 0 || matrixIdx >= nw.Set().MatrixCount() {
		return nil, fmt.Errorf("WeightedGraph(%d): %w", matrixIdx, network.ErrIndex)
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, n := range nw.Nodes() {
		g.AddNode(simple.Node(n.Index))
	}
	for _, e := range nw.Edges() {
		w := e.Weights[matrixIdx]
		if math.IsNaN(w) {
			continue
		}
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.U),
			T: simple.Node(e.V),
			W: w,
		})
	}

	return g, nil
}
