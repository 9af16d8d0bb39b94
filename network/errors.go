package network

import "errors"

// Sentinel errors for network operations. Shape violations surface as
// conmat.ErrShape and cluster-count violations as dendro.ErrCluster; the
// taxonomy is shared across the pipeline, not redefined per package.
var (
	// ErrNilSet indicates Construct was handed a nil matrix store.
	ErrNilSet = errors.New("network: nil matrix set")

	// ErrIndex indicates an out-of-range model-level index: a threshold
	// matrix or parameter index, a scale selection index, a node or edge
	// index, or a sub-network root. Never clamped.
	ErrIndex = errors.New("network: index out of range")
)
