// Package signal derives connectivity matrices from per-node time series —
// the upstream step that produces what the rest of the pipeline consumes.
//
// What:
//
//   - CorrelationMatrix: N×N Pearson correlation over N equal-length series
//     (diagonal 1, symmetric).
//   - DTWMatrix: N×N Dynamic Time Warping distance matrix (diagonal 0,
//     symmetric), with an optional Sakoe–Chiba window and slope penalty.
//     Only distances are computed; warping paths are not needed for
//     connectivity, so the DP keeps two rolling rows.
//
// Errors: conmat.ErrShape on empty input, series shorter than required, or
// unequal series lengths.
//
// Complexity: CorrelationMatrix is O(N²·L); DTWMatrix is O(N²·L²) (L = series
// length) — both run once per dataset, ahead of interaction.
package signal
