package catalog_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tekkamanmaverick/BoxRemap/catalog"
	"github.com/tekkamanmaverick/BoxRemap/lattice"
	"github.com/tekkamanmaverick/BoxRemap/remap"
)

func TestBuild_BoundErrors(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		bound int
		max   int
		err   error
	}{
		{"Zero", 0, catalog.DefaultMaxBound, catalog.ErrBoundTooSmall},
		{"Negative", -3, catalog.DefaultMaxBound, catalog.ErrBoundTooSmall},
		{"AboveDefault", catalog.DefaultMaxBound + 1, catalog.DefaultMaxBound, catalog.ErrBoundTooLarge},
		{"AboveCustom", 3, 2, catalog.ErrBoundTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := catalog.DefaultOptions()
			opts.MaxBound = tc.max
			_, _, err := catalog.Build(ctx, tc.bound, opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBuild_BadOptions(t *testing.T) {
	opts := catalog.DefaultOptions()
	opts.Workers = -1
	_, _, err := catalog.Build(context.Background(), 1, opts)
	assert.ErrorIs(t, err, catalog.ErrBadOptions)

	opts = catalog.DefaultOptions()
	opts.MaxBound = 0
	_, _, err = catalog.Build(context.Background(), 1, opts)
	assert.ErrorIs(t, err, catalog.ErrBadOptions)
}

// TestBuild_BoundOne checks the identity row and one sheared shape.
func TestBuild_BoundOne(t *testing.T) {
	tbl, stats, err := catalog.Build(context.Background(), 1, catalog.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 26, stats.Triples)
	assert.Equal(t, tbl.Len(), stats.Shapes)
	assert.Positive(t, stats.Bases)

	id, ok := tbl.Lookup(remap.ShapeKey{Max: 1, Mid: 1, Min: 1})
	require.True(t, ok)
	assert.Equal(t, lattice.Identity(), id.Basis())
	assert.Equal(t, "123", id.Markers())

	_, ok = tbl.Lookup(remap.NewShapeKey(math.Sqrt2, 1, 1/math.Sqrt2))
	assert.True(t, ok, "√2 × 1 × 1/√2 is reachable at bound 1")
}

// TestBuild_CanonicalChoice compares the table with a direct sequential
// reference at bound 2: the stored score is the minimum over all candidates
// of the shape and, among minima, the last one enumerated is kept.
func TestBuild_CanonicalChoice(t *testing.T) {
	const bound = 2
	w := remap.DefaultWeights()
	tbl, stats, err := catalog.Build(context.Background(), bound, catalog.DefaultOptions())
	require.NoError(t, err)

	vs, err := lattice.CoprimeTriples(bound)
	require.NoError(t, err)

	type best struct {
		score int
		last  lattice.Basis
	}
	ref := map[remap.GridKey]best{}
	bases := 0
	for b := range lattice.UnimodularBases(vs) {
		r := remap.MustNew(b)
		s := w.Score(r)
		k := r.Key().Grid()
		bases++
		if old, ok := ref[k]; !ok || s <= old.score {
			ref[k] = best{score: s, last: b}
		}
	}

	assert.Equal(t, bases, stats.Bases)
	require.Equal(t, len(ref), tbl.Len(), "one entry per shape")
	for _, r := range tbl.Entries() {
		want, ok := ref[r.Key().Grid()]
		require.True(t, ok, "unexpected shape %v", r.Key())
		got, _ := tbl.Score(r.Key())
		assert.Equal(t, want.score, got, "shape %v", r.Key())
		assert.Equal(t, want.last, r.Basis(), "shape %v", r.Key())
	}
}

// TestBuild_WorkersDeterministic checks that every worker count yields the same table.
func TestBuild_WorkersDeterministic(t *testing.T) {
	ctx := context.Background()
	opts := catalog.DefaultOptions()
	opts.Workers = 1
	ref, refStats, err := catalog.Build(ctx, 2, opts)
	require.NoError(t, err)
	assert.Equal(t, 1*4, refStats.Chunks)

	for _, w := range []int{2, 3, 7, 64} {
		opts.Workers = w
		got, stats, err := catalog.Build(ctx, 2, opts)
		require.NoError(t, err)
		assert.Equal(t, refStats.Bases, stats.Bases, "workers=%d", w)
		if diff := cmp.Diff(ref.Entries(), got.Entries(), cmp.AllowUnexported(remap.Remapping{})); diff != "" {
			t.Errorf("workers=%d entries differ (-1 worker +%d workers):\n%s", w, w, diff)
		}
	}
}

// TestBuild_CustomWeights flips the descending bonus into a penalty: the
// √2 × 1 × 1/√2 shape is then represented by a basis whose edges are not in
// descending order, e.g. (1,0,0),(0,1,1),(0,0,1).
func TestBuild_CustomWeights(t *testing.T) {
	ctx := context.Background()
	shape := remap.NewShapeKey(math.Sqrt2, 1, 1/math.Sqrt2)
	descending := func(r remap.Remapping) bool {
		l := r.Lengths()
		return l[0] > l[1] && l[1] > l[2]
	}

	def, _, err := catalog.Build(ctx, 1, catalog.DefaultOptions())
	require.NoError(t, err)
	r, ok := def.Lookup(shape)
	require.True(t, ok)
	assert.True(t, descending(r), "default weights prefer %v", r.Basis())

	opts := catalog.DefaultOptions()
	opts.Weights.Descending = 100
	pen, _, err := catalog.Build(ctx, 1, opts)
	require.NoError(t, err)
	r, ok = pen.Lookup(shape)
	require.True(t, ok)
	assert.False(t, descending(r), "penalized weights avoid %v", r.Basis())
	assert.Equal(t, def.Len(), pen.Len(), "weights never change the set of shapes")
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := catalog.Build(ctx, 2, catalog.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBuild_Logs checks that a summary line is emitted at info level.
func TestBuild_Logs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	opts := catalog.DefaultOptions()
	opts.Logger = zap.New(core)

	_, _, err := catalog.Build(context.Background(), 1, opts)
	require.NoError(t, err)

	entries := logs.FilterMessage("catalogue built").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].ContextMap()["bound"])
}
