package signal

// Options configures DTWMatrix.
//
// Fields:
//   - Window       — maximum |i-j| deviation of the warping path
//     (Sakoe–Chiba band). 0 or negative means no constraint.
//   - SlopePenalty — additive cost of insertion/deletion steps; 0 is the
//     classic unpenalized recurrence.
type Options struct {
	Window       int
	SlopePenalty float64
}

// DefaultOptions returns the unconstrained, unpenalized configuration.
func DefaultOptions() Options {
	return Options{}
}
