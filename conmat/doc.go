// Package conmat stores the connectivity matrices a network is built from,
// together with optional per-node data arrays, and exposes the validated,
// statistics-cached view the rest of the pipeline consumes.
//
// What:
//
//   - Dense: a row-major float64 matrix in which NaN is ordinary data
//     ("no relationship"), with safe indexed access and copy-based
//     row/column gathering (Induced) for sub-network extraction.
//   - Set: an ordered collection of equal-dimension square matrices with
//     human-readable labels, optional auxiliary node-data arrays (one scalar
//     per node per source) and optional per-node thumbnail references.
//     Construction validates every shape up front; per-matrix and per-aux
//     Stats (min/max and absolute min/max, NaN entries skipped) are cached
//     once and never recomputed.
//   - ParseDense / ParseVector: the whitespace-delimited text formats the
//     system has always consumed. Non-numeric tokens become NaN in-place;
//     this lossy behavior is deliberate and is not an error.
//
// Why:
//
//   - Every downstream stage (thresholding, graph building, scale domains,
//     sub-network extraction) assumes the dimension invariant "all matrices
//     and aux arrays share one N". Enforcing it in exactly one place keeps
//     the stages themselves branch-free.
//
// Complexity:
//
//   - NewSet: O(M·N²) for M matrices of dimension N (one stats pass each).
//   - Dense.At/Set: O(1). Dense.Induced: O(k²) for k gathered indices.
//   - ParseDense: O(rows·cols) over the input text.
//
// Errors:
//
//   - ErrShape: non-square matrix, dimension mismatch across matrices or aux
//     arrays, ragged text rows, label/data count mismatch.
//   - ErrIndex: out-of-range row, column, matrix, or aux index.
//   - ErrNilMatrix: a nil *Dense handed to the store.
//
// All sentinels are matched with errors.Is; call sites attach context with
// fmt.Errorf("...: %w", err).
package conmat
