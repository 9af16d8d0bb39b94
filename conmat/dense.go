package conmat

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float64 values backed by one flat slice
// (offset = row*cols + col). NaN entries are ordinary data and mean "no
// relationship"; no numeric policy rejects them. Dense is not goroutine-safe;
// the pipeline that owns it is single-threaded by contract.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // flat backing storage, length r*c
}

// denseErrorf attaches method context and coordinates to a sentinel error.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an rows×cols matrix initialized to zeros.
// Returns ErrShape if rows or cols is not positive.
// Complexity: O(rows·cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// DenseOf builds a matrix from row slices, copying the values. All rows must
// share one length; returns ErrShape on empty or ragged input.
// Complexity: O(rows·cols).
func DenseOf(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("DenseOf: empty input: %w", ErrShape)
	}
	c := len(rows[0])
	m, err := NewDense(len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("DenseOf: row %d has %d values, want %d: %w", i, len(row), c, ErrShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Square reports whether the matrix is square. Complexity: O(1).
func (m *Dense) Square() bool { return m.r == m.c }

// indexOf computes the flat offset for (row, col) or reports ErrIndex.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndex)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndex)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col), which may be NaN.
// Returns ErrIndex on out-of-range coordinates. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v (any float64, NaN included) at (row, col).
// Returns ErrIndex on out-of-range coordinates. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns the i-th row as a slice sharing the matrix's backing storage.
// The caller must treat it as read-only. Returns nil when i is out of range.
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy. Complexity: O(rows·cols).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Induced materializes the submatrix selected by the given row and column
// index lists, in list order (copy-based gather; the result owns its storage).
// Any out-of-range index yields ErrIndex. Complexity: O(len(rows)·len(cols)).
func (m *Dense) Induced(rows, cols []int) (*Dense, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("Dense.Induced: empty index list: %w", ErrShape)
	}
	res, err := NewDense(len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	// Deterministic double loop with direct offset math in both matrices.
	for i, ri := range rows {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.Induced: row index %d: %w", ri, ErrIndex)
		}
		base := ri * m.c
		dst := i * len(cols)
		for j, cj := range cols {
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.Induced: col index %d: %w", cj, ErrIndex)
			}
			res.data[dst+j] = m.data[base+cj]
		}
	}

	return res, nil
}

// String renders the matrix for debugging; NaN prints as "." to keep
// suppressed entries visually distinct.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			v := m.data[i*m.c+j]
			if math.IsNaN(v) {
				b.WriteString(".")
			} else {
				fmt.Fprintf(&b, "%g", v)
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
