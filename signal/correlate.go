package signal

import (
	"fmt"

	"github.com/katalvlaran/connectome/conmat"
	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix computes the N×N Pearson correlation matrix over N
// per-node series. Every series must have the same length L ≥ 2
// (conmat.ErrShape otherwise). The diagonal is exactly 1; off-diagonal
// entries are symmetric by construction. A constant series yields NaN
// against every other — the pipeline's "no relationship" value, so it flows
// through thresholding naturally.
// Complexity: O(N²·L).
func CorrelationMatrix(series [][]float64) (*conmat.Dense, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("CorrelationMatrix: no series: %w", conmat.ErrShape)
	}
	l := len(series[0])
	if l < 2 {
		return nil, fmt.Errorf("CorrelationMatrix: series length %d, need at least 2: %w", l, conmat.ErrShape)
	}
	for i, s := range series {
		if len(s) != l {
			return nil, fmt.Errorf("CorrelationMatrix: series %d has length %d, want %d: %w", i, len(s), l, conmat.ErrShape)
		}
	}

	n := len(series)
	out, err := conmat.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = out.Set(i, i, 1)
		for j := i + 1; j < n; j++ {
			r := stat.Correlation(series[i], series[j], nil)
			_ = out.Set(i, j, r)
			_ = out.Set(j, i, r)
		}
	}

	return out, nil
}
