package signal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/connectome/conmat"
)

// DTWMatrix computes the N×N Dynamic Time Warping distance matrix over N
// per-node series. Every series must be non-empty and share one length
// (conmat.ErrShape otherwise). The diagonal is 0 and the matrix is symmetric
// (DTW distance is symmetric for a symmetric step cost). With a window w > 0
// the warping path may deviate at most w steps off the diagonal; a too-tight
// window for the inputs yields +Inf distance, never an error.
// Complexity: O(N²·L²).
func DTWMatrix(series [][]float64, opts Options) (*conmat.Dense, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("DTWMatrix: no series: %w", conmat.ErrShape)
	}
	l := len(series[0])
	if l == 0 {
		return nil, fmt.Errorf("DTWMatrix: empty series: %w", conmat.ErrShape)
	}
	for i, s := range series {
		if len(s) != l {
			return nil, fmt.Errorf("DTWMatrix: series %d has length %d, want %d: %w", i, len(s), l, conmat.ErrShape)
		}
	}

	n := len(series)
	out, err := conmat.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Two shared DP rows, reused across all pairs.
	prev := make([]float64, l+1)
	curr := make([]float64, l+1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dtwDistance(series[i], series[j], opts, prev, curr)
			_ = out.Set(i, j, d)
			_ = out.Set(j, i, d)
		}
	}

	return out, nil
}

// dtwDistance runs the rolling two-row DTW recurrence:
//
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+sp, D[i][j-1]+sp, D[i-1][j-1])
//
// over the (optionally banded) grid, returning D[n][m]. prev and curr are
// caller-provided scratch rows of length m+1.
func dtwDistance(a, b []float64, opts Options, prev, curr []float64) float64 {
	n, m := len(a), len(b)
	window := opts.Window
	if window <= 0 {
		window = n + m // no constraint
	}

	inf := math.Inf(1)
	prev[0] = 0
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf

				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			best := prev[j-1] // diagonal match
			if v := prev[j] + opts.SlopePenalty; v < best {
				best = v
			}
			if v := curr[j-1] + opts.SlopePenalty; v < best {
				best = v
			}
			curr[j] = cost + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
