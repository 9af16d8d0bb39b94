package dendro

import "fmt"

// orphanBucket is the pseudo-parent shared by leaves whose parent chain was
// fully spliced. It counts as one active cluster and maps to one cluster id.
const orphanBucket = -1

// activeClusters returns the distinct immediate leaf parents in
// first-encounter order, scanning leaves 0..N-1. Orphan leaves contribute
// the shared orphanBucket entry once. Complexity: O(N).
func (t *Tree) activeClusters() []int {
	var order []int
	seen := make(map[int]bool, 8)
	for leaf := 0; leaf < t.n; leaf++ {
		p := t.leafParent[leaf]
		if !seen[p] {
			seen[p] = true
			order = append(order, p)
		}
	}

	return order
}

// ClusterCount returns the current number of active clusters.
// Complexity: O(N).
func (t *Tree) ClusterCount() int { return len(t.activeClusters()) }

// ReduceToK collapses the dendrogram until at most k active clusters remain:
// repeatedly splice out the active internal node with the minimum merge
// distance, re-parenting its children to its own parent. Ties on the minimum
// distance break first-encountered in the scan order (implementation-defined,
// not a stability guarantee). A k at or above the current cluster count is a
// no-op; reduction never re-grows the cluster count.
// Returns ErrCluster when k < 1.
// Complexity: O(N) per splice.
func (t *Tree) ReduceToK(k int) error {
	if k < 1 {
		return fmt.Errorf("Tree.ReduceToK(%d): %w", k, ErrCluster)
	}

	for {
		active := t.activeClusters()
		if len(active) <= k {
			return nil
		}
		best := -1
		for _, idx := range active {
			if idx == orphanBucket {
				continue
			}
			if best == -1 || t.nodes[idx].distance < t.nodes[best].distance {
				best = idx
			}
		}
		if best == -1 {
			// Only the orphan bucket remains; nothing left to splice.
			return nil
		}
		t.splice(best)
	}
}

// splice removes internal node x from the tree: its children are re-parented
// to x's parent (or orphaned when x was a root), x is flagged removed and
// detached. The arena slot is kept; removal is logical.
func (t *Tree) splice(x int) {
	p := t.nodes[x].parent
	if p >= 0 {
		// Replace x's slot in the parent's child list with x's children.
		pc := t.nodes[p].children
		ref := t.n + x
		for i, c := range pc {
			if c == ref {
				pc = append(pc[:i], pc[i+1:]...)

				break
			}
		}
		t.nodes[p].children = append(pc, t.nodes[x].children...)
	}
	for _, c := range t.nodes[x].children {
		t.setParent(c, p)
	}
	t.nodes[x].children = nil
	t.nodes[x].parent = -1
	t.nodes[x].removed = true
}

// Assignments derives the per-leaf cluster assignment from the current
// frontier: each distinct live leaf parent gets a stable small-integer id in
// first-encounter order scanning leaves 0..N-1; orphan leaves share one id.
// Complexity: O(N).
func (t *Tree) Assignments() []int {
	out := make([]int, t.n)
	ids := make(map[int]int, 8)
	for leaf := 0; leaf < t.n; leaf++ {
		p := t.leafParent[leaf]
		id, ok := ids[p]
		if !ok {
			id = len(ids)
			ids[p] = id
		}
		out[leaf] = id
	}

	return out
}
