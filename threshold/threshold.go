package threshold

import (
	"errors"

	"github.com/katalvlaran/connectome/conmat"
)

// Sentinel errors for thresholding. Callers branch with errors.Is.
var (
	// ErrNilFunc indicates a nil Func was handed to the network.
	ErrNilFunc = errors.New("threshold: nil threshold function")

	// ErrParam indicates a rule was invoked without a parameter it requires.
	ErrParam = errors.New("threshold: missing or invalid parameter")

	// ErrShapeMismatch indicates a rule returned a matrix whose shape differs
	// from its input. A conforming Func never triggers it.
	ErrShapeMismatch = errors.New("threshold: result shape differs from input")
)

// Param is one ordered named parameter of a threshold rule. Value carries
// numeric parameters; Text carries string parameters for custom rules (the
// built-in rule ignores it).
type Param struct {
	Name  string
	Value float64
	Text  string
}

// Func maps a raw matrix plus the current parameters to a same-shape matrix
// in which suppressed entries are NaN. Implementations must not mutate the
// input matrix and must preserve NaN input entries as NaN.
type Func interface {
	Apply(m *conmat.Dense, params []Param) (*conmat.Dense, error)
}
