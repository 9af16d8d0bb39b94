package dendro

import (
	"fmt"
	"math"
)

// LinkageRow is one merge of the linkage table: Left and Right are 1-indexed
// ids (ids ≤ N name leaves, ids > N name earlier merge rows), Distance is the
// merge distance. Ids stay float64 until Build so that NaN from a malformed
// text token fails at build time, not silently.
type LinkageRow struct {
	Left     float64
	Right    float64
	Distance float64
}

// internal is one dendrogram internal node in the tree's arena. Children are
// refs: [0,N) leaves, N+k the k-th internal node. The builder creates every
// internal node with exactly two children; splicing during reduction
// re-attaches children, so the arity grows and the slice representation is
// load-bearing.
type internal struct {
	children []int
	parent   int // arena index of the parent internal node, -1 at a root
	distance float64
	removed  bool
}

// Tree is the dendrogram over one network's leaves. The arena exclusively
// owns its internal nodes; leaves are referenced by index only and belong to
// the network. Tree is not goroutine-safe; the owning pipeline is
// single-threaded by contract.
type Tree struct {
	n          int
	leafParent []int // arena index of each leaf's immediate parent, -1 = orphan
	nodes      []internal
}

// resolveRef converts a 1-indexed linkage id to an arena ref, given that
// `built` internal nodes exist so far. Reports ErrLinkage on NaN,
// non-integral, or out-of-range ids (forward references included).
func resolveRef(id float64, n, built int) (int, error) {
	if math.IsNaN(id) || id != math.Trunc(id) {
		return 0, fmt.Errorf("dendro: id %v is not an integer: %w", id, ErrLinkage)
	}
	ref := int(id) - 1
	if ref < 0 || ref >= n+built {
		return 0, fmt.Errorf("dendro: id %d outside constructed range [1,%d]: %w", int(id), n+built, ErrLinkage)
	}

	return ref, nil
}

// Build converts a linkage table into a dendrogram over n leaves. Row i
// defines synthetic id n+i+1; rows are processed in table order, which
// standard agglomerative output guarantees is topologically sorted. Both
// children of every new internal node get their parent pointer set.
// Returns ErrLinkage on any malformed reference.
// Complexity: O(rows).
func Build(n int, rows []LinkageRow) (*Tree, error) {
	if n < 1 {
		return nil, fmt.Errorf("dendro.Build: %d leaves: %w", n, ErrLinkage)
	}
	t := &Tree{
		n:          n,
		leafParent: make([]int, n),
		nodes:      make([]internal, 0, len(rows)),
	}
	for i := range t.leafParent {
		t.leafParent[i] = -1
	}

	for i, row := range rows {
		left, err := resolveRef(row.Left, n, i)
		if err != nil {
			return nil, fmt.Errorf("dendro.Build: row %d left: %w", i, err)
		}
		right, err := resolveRef(row.Right, n, i)
		if err != nil {
			return nil, fmt.Errorf("dendro.Build: row %d right: %w", i, err)
		}

		idx := len(t.nodes)
		t.nodes = append(t.nodes, internal{
			children: []int{left, right},
			parent:   -1,
			distance: row.Distance,
		})
		t.setParent(left, idx)
		t.setParent(right, idx)
	}

	return t, nil
}

// SingleCluster builds the degenerate one-cluster tree used for extracted
// sub-networks: one synthetic internal node at distance 0 holding every leaf.
// Complexity: O(n).
func SingleCluster(n int) *Tree {
	t := &Tree{
		n:          n,
		leafParent: make([]int, n),
		nodes:      make([]internal, 1),
	}
	root := internal{children: make([]int, n), parent: -1}
	for i := 0; i < n; i++ {
		root.children[i] = i
		t.leafParent[i] = 0
	}
	t.nodes[0] = root

	return t
}

// setParent records idx as the parent of ref (leaf or internal).
func (t *Tree) setParent(ref, idx int) {
	if ref < t.n {
		t.leafParent[ref] = idx
	} else {
		t.nodes[ref-t.n].parent = idx
	}
}

// Leaves returns the leaf count. Complexity: O(1).
func (t *Tree) Leaves() int { return t.n }

// InternalCount returns the number of live (not spliced) internal nodes.
// Complexity: O(internal nodes).
func (t *Tree) InternalCount() int {
	count := 0
	for i := range t.nodes {
		if !t.nodes[i].removed {
			count++
		}
	}

	return count
}

// LeafParent returns the arena index of leaf i's immediate live parent, or
// -1 when the leaf is an orphan (its parent chain was fully spliced) or i is
// out of range. Complexity: O(1).
func (t *Tree) LeafParent(i int) int {
	if i < 0 || i >= t.n {
		return -1
	}

	return t.leafParent[i]
}
