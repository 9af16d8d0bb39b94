package conmat

import "fmt"

// Set is the validated matrix store one network is built from: an ordered
// list of equal-dimension square matrices with labels, optional auxiliary
// per-node data arrays (one scalar per node per source), and optional
// per-node thumbnail references. All shape invariants are enforced once, in
// NewSet; per-matrix and per-aux Stats are cached at the same time and never
// recomputed. Set is immutable after construction.
type Set struct {
	n          int
	matrices   []*Dense
	labels     []string
	matStats   []Stats
	aux        [][]float64
	auxLabels  []string
	auxStats   []Stats
	thumbnails []string
}

// SetOption customizes NewSet (auxiliary data, thumbnails).
type SetOption func(*setConfig)

type setConfig struct {
	aux        [][]float64
	auxLabels  []string
	thumbnails []string
}

// WithAux attaches one auxiliary node-data array under the given label.
// Options are applied in call order, which fixes the aux source index.
func WithAux(label string, values []float64) SetOption {
	return func(c *setConfig) {
		c.auxLabels = append(c.auxLabels, label)
		c.aux = append(c.aux, values)
	}
}

// WithThumbnails attaches one thumbnail reference per node (length N,
// validated in NewSet). Empty strings mean "no thumbnail".
func WithThumbnails(refs []string) SetOption {
	return func(c *setConfig) {
		c.thumbnails = refs
	}
}

// NewSet validates and assembles a matrix store.
//
// Requirements, violations reported immediately and never coerced:
//   - at least one matrix (ErrShape), none nil (ErrNilMatrix);
//   - every matrix square with dimension equal to the first matrix's N
//     (ErrShape);
//   - len(labels) == len(matrices) (ErrShape);
//   - every aux array length N, every thumbnail slice length N (ErrShape).
//
// Complexity: O(M·N²) for M matrices of dimension N (one stats pass each).
func NewSet(matrices []*Dense, labels []string, opts ...SetOption) (*Set, error) {
	if len(matrices) == 0 {
		return nil, fmt.Errorf("NewSet: no matrices: %w", ErrShape)
	}
	if len(labels) != len(matrices) {
		return nil, fmt.Errorf("NewSet: %d labels for %d matrices: %w", len(labels), len(matrices), ErrShape)
	}

	var cfg setConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var n int
	s := &Set{
		matrices:  matrices,
		labels:    labels,
		matStats:  make([]Stats, len(matrices)),
		aux:       cfg.aux,
		auxLabels: cfg.auxLabels,
	}
	for i, m := range matrices {
		if m == nil {
			return nil, fmt.Errorf("NewSet: matrix %d: %w", i, ErrNilMatrix)
		}
		if !m.Square() {
			return nil, fmt.Errorf("NewSet: matrix %d is %dx%d: %w", i, m.Rows(), m.Cols(), ErrShape)
		}
		if i == 0 {
			n = m.Rows()
		} else if m.Rows() != n {
			return nil, fmt.Errorf("NewSet: matrix %d has dimension %d, want %d: %w", i, m.Rows(), n, ErrShape)
		}
		s.matStats[i] = statsOf(m.data)
	}
	s.n = n

	s.auxStats = make([]Stats, len(cfg.aux))
	for i, a := range cfg.aux {
		if len(a) != n {
			return nil, fmt.Errorf("NewSet: aux %q has %d values, want %d: %w", cfg.auxLabels[i], len(a), n, ErrShape)
		}
		s.auxStats[i] = statsOf(a)
	}
	if cfg.thumbnails != nil {
		if len(cfg.thumbnails) != n {
			return nil, fmt.Errorf("NewSet: %d thumbnails for %d nodes: %w", len(cfg.thumbnails), n, ErrShape)
		}
		s.thumbnails = cfg.thumbnails
	}

	return s, nil
}

// N returns the shared matrix dimension (= node count). Complexity: O(1).
func (s *Set) N() int { return s.n }

// MatrixCount returns the number of matrices. Complexity: O(1).
func (s *Set) MatrixCount() int { return len(s.matrices) }

// AuxCount returns the number of auxiliary data sources. Complexity: O(1).
func (s *Set) AuxCount() int { return len(s.aux) }

// Matrix returns the i-th matrix. The caller must treat it as read-only.
// Returns ErrIndex when i is out of range. Complexity: O(1).
func (s *Set) Matrix(i int) (*Dense, error) {
	if i < 0 || i >= len(s.matrices) {
		return nil, fmt.Errorf("Set.Matrix(%d): %w", i, ErrIndex)
	}

	return s.matrices[i], nil
}

// Label returns the i-th matrix label. Returns ErrIndex when i is out of
// range. Complexity: O(1).
func (s *Set) Label(i int) (string, error) {
	if i < 0 || i >= len(s.labels) {
		return "", fmt.Errorf("Set.Label(%d): %w", i, ErrIndex)
	}

	return s.labels[i], nil
}

// Aux returns the i-th auxiliary array (read-only for the caller).
// Returns ErrIndex when i is out of range. Complexity: O(1).
func (s *Set) Aux(i int) ([]float64, error) {
	if i < 0 || i >= len(s.aux) {
		return nil, fmt.Errorf("Set.Aux(%d): %w", i, ErrIndex)
	}

	return s.aux[i], nil
}

// AuxLabel returns the i-th auxiliary source label. Returns ErrIndex when i
// is out of range. Complexity: O(1).
func (s *Set) AuxLabel(i int) (string, error) {
	if i < 0 || i >= len(s.auxLabels) {
		return "", fmt.Errorf("Set.AuxLabel(%d): %w", i, ErrIndex)
	}

	return s.auxLabels[i], nil
}

// MatrixStats returns the cached statistics of the i-th matrix.
// Returns ErrIndex when i is out of range. Complexity: O(1).
func (s *Set) MatrixStats(i int) (Stats, error) {
	if i < 0 || i >= len(s.matStats) {
		return Stats{}, fmt.Errorf("Set.MatrixStats(%d): %w", i, ErrIndex)
	}

	return s.matStats[i], nil
}

// AuxStats returns the cached statistics of the i-th auxiliary array.
// Returns ErrIndex when i is out of range. Complexity: O(1).
func (s *Set) AuxStats(i int) (Stats, error) {
	if i < 0 || i >= len(s.auxStats) {
		return Stats{}, fmt.Errorf("Set.AuxStats(%d): %w", i, ErrIndex)
	}

	return s.auxStats[i], nil
}

// Thumbnail returns the i-th node's thumbnail reference, or "" when no
// thumbnails were attached. Returns ErrIndex when i is out of range.
// Complexity: O(1).
func (s *Set) Thumbnail(i int) (string, error) {
	if i < 0 || i >= s.n {
		return "", fmt.Errorf("Set.Thumbnail(%d): %w", i, ErrIndex)
	}
	if s.thumbnails == nil {
		return "", nil
	}

	return s.thumbnails[i], nil
}

// NodeAux gathers node i's value from every auxiliary source, in source
// order. Returns nil when the set has no aux sources; ErrIndex when i is out
// of range. Complexity: O(aux count).
func (s *Set) NodeAux(i int) ([]float64, error) {
	if i < 0 || i >= s.n {
		return nil, fmt.Errorf("Set.NodeAux(%d): %w", i, ErrIndex)
	}
	if len(s.aux) == 0 {
		return nil, nil
	}
	out := make([]float64, len(s.aux))
	for k, a := range s.aux {
		out[k] = a[i]
	}

	return out, nil
}
