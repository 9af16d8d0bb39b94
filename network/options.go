package network

import (
	"github.com/katalvlaran/connectome/dendro"
	"github.com/katalvlaran/connectome/threshold"
	"go.uber.org/zap"
)

// Defaults applied by Construct when no option overrides them. Single source
// of truth; never duplicated at call sites.
const (
	// DefaultPercentile is the p of the built-in per-row percentile rule.
	DefaultPercentile = 0.75

	// DefaultClusterCount is the dendrogram reduction target.
	DefaultClusterCount = 4

	// DefaultThresholdMatrix is the matrix index the threshold reads.
	DefaultThresholdMatrix = 0
)

// Option customizes Construct by mutating its config before any work begins.
type Option func(*config)

type config struct {
	linkage []dendro.LinkageRow
	fn      threshold.Func
	params  []threshold.Param
	thIdx   int
	k       int
	log     *zap.Logger
}

func defaultConfig() config {
	fn, params := threshold.NewPercentile(DefaultPercentile)

	return config{
		fn:     fn,
		params: params,
		thIdx:  DefaultThresholdMatrix,
		k:      DefaultClusterCount,
		log:    zap.NewNop(),
	}
}

// WithLinkage attaches the agglomerative-clustering linkage table; Construct
// builds and reduces the dendrogram from it. Without it the network has no
// tree and no cluster assignments.
func WithLinkage(rows []dendro.LinkageRow) Option {
	return func(c *config) {
		c.linkage = rows
	}
}

// WithThreshold selects the threshold rule and its initial parameter values.
// Panics on a nil rule to surface the programmer error at the call site;
// construction itself never panics.
func WithThreshold(fn threshold.Func, params ...threshold.Param) Option {
	if fn == nil {
		panic("network: WithThreshold(nil)")
	}

	return func(c *config) {
		c.fn = fn
		c.params = params
	}
}

// WithThresholdMatrix selects which matrix the threshold rule reads.
// Validated against the store in Construct (ErrIndex).
func WithThresholdMatrix(idx int) Option {
	return func(c *config) {
		c.thIdx = idx
	}
}

// WithClusterCount sets the dendrogram reduction target. Validated in
// Construct (dendro.ErrCluster when k < 1).
func WithClusterCount(k int) Option {
	return func(c *config) {
		c.k = k
	}
}

// WithLogger attaches a logger for construction and rebuild diagnostics; the
// default is a no-op logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("network: WithLogger(nil)")
	}

	return func(c *config) {
		c.log = l
	}
}
