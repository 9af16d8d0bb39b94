package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/dendro"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyRequest indicates a Request without matrix sources.
var ErrEmptyRequest = errors.New("fetch: request has no matrix sources")

// Request names every artifact of one batch. Matrices is mandatory; Aux and
// Linkage are optional.
type Request struct {
	Matrices []Source
	Aux      []Source
	Linkage  Source
}

// Option customizes Load.
type Option func(*loadConfig)

type loadConfig struct {
	concurrency int
	log         *zap.Logger
}

// WithConcurrency bounds the number of sources fetched at once; n ≤ 0 means
// unbounded.
func WithConcurrency(n int) Option {
	return func(c *loadConfig) {
		c.concurrency = n
	}
}

// WithLogger attaches a logger for fetch diagnostics; the default is a no-op
// logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("fetch: WithLogger(nil)")
	}

	return func(c *loadConfig) {
		c.log = l
	}
}

// Load fetches and parses every source of the request concurrently, joining
// before return: all results present, or the first error with the rest
// cancelled. Results land in request order, independent of completion order.
// Labels are the sources' names.
// Complexity: bounded by the slowest source plus one parse per artifact.
func Load(ctx context.Context, req Request, opts ...Option) (*Bundle, error) {
	if len(req.Matrices) == 0 {
		return nil, fmt.Errorf("Load: %w", ErrEmptyRequest)
	}
	cfg := loadConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Bundle{
		Matrices:     make([]*conmat.Dense, len(req.Matrices)),
		MatrixLabels: make([]string, len(req.Matrices)),
		Aux:          make([][]float64, len(req.Aux)),
		AuxLabels:    make([]string, len(req.Aux)),
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.concurrency > 0 {
		g.SetLimit(cfg.concurrency)
	}

	for i, src := range req.Matrices {
		b.MatrixLabels[i] = src.Name()
		g.Go(func() error {
			m, err := readWith(gctx, src, conmat.ParseDense)
			if err != nil {
				return err
			}
			b.Matrices[i] = m

			return nil
		})
	}
	for i, src := range req.Aux {
		b.AuxLabels[i] = src.Name()
		g.Go(func() error {
			v, err := readWith(gctx, src, conmat.ParseVector)
			if err != nil {
				return err
			}
			b.Aux[i] = v

			return nil
		})
	}
	if req.Linkage != nil {
		g.Go(func() error {
			rows, err := readWith(gctx, req.Linkage, dendro.ParseLinkage)
			if err != nil {
				return err
			}
			b.Linkage = rows

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	cfg.log.Debug("bundle loaded",
		zap.Int("matrices", len(b.Matrices)),
		zap.Int("aux", len(b.Aux)),
		zap.Bool("linkage", b.Linkage != nil))

	return b, nil
}

// readWith opens one source and runs the given parser over it, attaching the
// source name to any failure.
func readWith[T any](ctx context.Context, src Source, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	rc, err := src.Open(ctx)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", src.Name(), err)
	}
	defer rc.Close()

	out, err := parse(rc)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", src.Name(), err)
	}

	return out, nil
}
