package dendro

import "errors"

// Sentinel errors for dendrogram construction and reduction. Callers branch
// with errors.Is.
var (
	// ErrLinkage indicates a malformed linkage table: a row without exactly
	// three fields, a NaN or non-integral id, or an id referencing a leaf or
	// merge row outside the range constructed so far.
	ErrLinkage = errors.New("dendro: malformed linkage reference")

	// ErrCluster indicates an invalid requested cluster count (K < 1).
	ErrCluster = errors.New("dendro: invalid cluster count")
)
