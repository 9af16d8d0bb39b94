// Package threshold defines the pluggable rule that turns a raw connectivity
// matrix into an adjacency matrix: entries the rule suppresses become NaN,
// and only non-NaN entries become graph edges downstream.
//
// What:
//
//   - Func: the capability interface "map a matrix plus ordered named
//     parameters to a same-shape matrix with suppressed entries as NaN".
//     The rule is selected explicitly at network construction; there is no
//     hidden default closure.
//   - Param: one ordered named parameter (numeric value, optional text) of
//     the active rule. The network stores the current parameter values and
//     re-invokes the rule whenever any of them, or the source matrix index,
//     changes.
//   - Percentile: the built-in per-row percentile rule (reference
//     semantics, see NewPercentile).
//
// Errors:
//
//   - ErrNilFunc: a nil Func handed to the network.
//   - ErrParam: a rule invoked without the parameters it requires.
//   - ErrShapeMismatch: a rule returned a matrix of a different shape than
//     its input (guarded by the caller; a correct Func never triggers it).
package threshold
