// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tekkamanmaverick/BoxRemap/lattice"
	"github.com/tekkamanmaverick/BoxRemap/remap"
)

// DefaultMaxBound is the largest accepted search bound. Run time and output
// size grow faster than bound⁶, so larger values are impractical.
const DefaultMaxBound = 20

// chunksPerWorker oversubscribes the pool so that uneven chunks balance out.
const chunksPerWorker = 4

// Options configures Build.
type Options struct {
	// MaxBound is the largest accepted bound (inclusive).
	MaxBound int
	// Workers is the number of concurrent chunks; 0 means GOMAXPROCS.
	Workers int
	// Weights scores candidates of the same shape.
	Weights remap.Weights
	// Logger receives progress diagnostics; nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns MaxBound=DefaultMaxBound, Workers=0 (GOMAXPROCS),
// Weights=remap.DefaultWeights() and no logging.
func DefaultOptions() Options {
	return Options{
		MaxBound: DefaultMaxBound,
		Weights:  remap.DefaultWeights(),
	}
}

// Stats summarizes one Build run.
type Stats struct {
	Bound   int           // search bound
	Triples int           // primitive directions in [−bound,+bound]³
	Bases   int           // unimodular bases evaluated
	Shapes  int           // distinct cuboid shapes kept
	Chunks  int           // partial tables merged
	Elapsed time.Duration // wall time of the enumeration
}

// ValidateBound checks bound against [1, maxBound].
func ValidateBound(bound, maxBound int) error {
	switch {
	case bound < 1:
		return fmt.Errorf("bound %d: %w", bound, ErrBoundTooSmall)
	case bound > maxBound:
		return fmt.Errorf("bound %d > %d: %w", bound, maxBound, ErrBoundTooLarge)
	}
	return nil
}

// Build enumerates all unimodular bases whose rows are primitive directions in
// [−bound,+bound]³ and returns the canonical remapping per shape.
//
// Stages:
//  1. Validate bound and options before any work.
//  2. Generate the primitive directions once.
//  3. Split the u1 indices into contiguous chunks and fill one partial Table
//     per chunk on an errgroup limited to opts.Workers goroutines.
//  4. Merge the partial tables in ascending chunk order.
//
// Errors:
//   - ErrBoundTooSmall, ErrBoundTooLarge, ErrBadOptions.
//   - ctx.Err() if ctx is cancelled while enumerating.
//
// Determinism: the returned table does not depend on opts.Workers.
func Build(ctx context.Context, bound int, opts Options) (*Table, Stats, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MaxBound < 1 || opts.Workers < 0 {
		return nil, Stats{}, catalogErrorf(opBuild, ErrBadOptions)
	}
	if err := ValidateBound(bound, opts.MaxBound); err != nil {
		return nil, Stats{}, catalogErrorf(opBuild, err)
	}
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	triples, err := lattice.CoprimeTriples(bound)
	if err != nil {
		return nil, Stats{}, catalogErrorf(opBuild, err)
	}
	log.Debug("generated primitive directions",
		zap.Int("bound", bound),
		zap.Int("triples", len(triples)))

	chunks := splitRange(len(triples), workers*chunksPerWorker)
	partial := make([]*Table, len(chunks))
	counts := make([]int, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range chunks {
		g.Go(func() error {
			t := NewTable(opts.Weights)
			n := 0
			for i1 := c.lo; i1 < c.hi; i1++ {
				if err := gctx.Err(); err != nil {
					return catalogErrorf(opChunk, err)
				}
				for b := range lattice.UnimodularBasesFrom(triples, i1) {
					t.Insert(remap.MustNew(b))
					n++
				}
			}
			partial[i], counts[i] = t, n
			log.Debug("chunk done",
				zap.Int("chunk", i),
				zap.Int("u1_from", c.lo),
				zap.Int("u1_to", c.hi),
				zap.Int("bases", n),
				zap.Int("shapes", t.Len()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, catalogErrorf(opBuild, err)
	}

	table := NewTable(opts.Weights)
	stats := Stats{Bound: bound, Triples: len(triples), Chunks: len(chunks)}
	for i, t := range partial {
		table.Merge(t)
		stats.Bases += counts[i]
	}
	stats.Shapes = table.Len()
	stats.Elapsed = time.Since(start)

	log.Info("catalogue built",
		zap.Int("bound", bound),
		zap.Int("triples", stats.Triples),
		zap.Int("bases", stats.Bases),
		zap.Int("shapes", stats.Shapes),
		zap.Int("workers", workers),
		zap.Duration("elapsed", stats.Elapsed))

	return table, stats, nil
}

// span is a half-open index range [lo, hi).
type span struct{ lo, hi int }

// splitRange cuts [0, n) into at most parts contiguous, ascending, non-empty spans.
func splitRange(n, parts int) []span {
	if n == 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	out := make([]span, 0, parts)
	size, rem := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		out = append(out, span{lo, hi})
		lo = hi
	}
	return out
}
