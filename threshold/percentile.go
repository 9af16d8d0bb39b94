package threshold

import (
	"fmt"
	"math"

	"github.com/katalvlaran/connectome/conmat"
)

// PercentileParamName is the name of the built-in rule's single parameter.
const PercentileParamName = "p"

// Percentile is the built-in per-row percentile rule.
//
// Semantics: for each row i, rowMax_i = max(|m[i][*]|) over non-NaN entries.
// Entry (i,j) is suppressed iff |m[i][j]| < rowMax_i·p OR |m[j][i]| <
// rowMax_j·p. The OR over both orientations makes suppression symmetric even
// though the per-row test is not. NaN input entries stay NaN.
//
// p's intended domain is [0,1] and the rule is monotone in p: p ≤ 0
// suppresses nothing, p ≥ 1 keeps only exact row maxima. Out-of-domain
// values are never clamped.
//
// Complexity: O(N²) time, O(N²) space for the result.
type Percentile struct{}

// NewPercentile returns the built-in rule together with its parameter list,
// ready to hand to network construction.
func NewPercentile(p float64) (Func, []Param) {
	return Percentile{}, []Param{{Name: PercentileParamName, Value: p}}
}

// Apply implements Func. The matrix must be square (the two-orientation test
// reads the transposed entry); params[0] is p.
func (Percentile) Apply(m *conmat.Dense, params []Param) (*conmat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Percentile.Apply: %w", conmat.ErrNilMatrix)
	}
	if !m.Square() {
		return nil, fmt.Errorf("Percentile.Apply: %dx%d input: %w", m.Rows(), m.Cols(), conmat.ErrShape)
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("Percentile.Apply: needs %q: %w", PercentileParamName, ErrParam)
	}
	p := params[0].Value

	n := m.Rows()
	// One pass for per-row absolute maxima, NaN entries skipped.
	rowMax := make([]float64, n)
	for i := 0; i < n; i++ {
		maxAbs := 0.0
		for _, v := range m.Row(i) {
			if math.IsNaN(v) {
				continue
			}
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		rowMax[i] = maxAbs
	}

	out := m.Clone()
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j, v := range row {
			if math.IsNaN(v) {
				continue
			}
			tv, _ := m.At(j, i)
			if math.Abs(v) < rowMax[i]*p || math.Abs(tv) < rowMax[j]*p {
				_ = out.Set(i, j, math.NaN())
			}
		}
	}

	return out, nil
}
