package remap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tekkamanmaverick/BoxRemap/lattice"
	"github.com/tekkamanmaverick/BoxRemap/remap"
)

const tol = 1e-9

// TestNew_RejectsNonUnimodular covers det −1, 0 and 2 through the validating constructor.
func TestNew_RejectsNonUnimodular(t *testing.T) {
	cases := []struct {
		name string
		b    lattice.Basis
	}{
		{"Mirror", lattice.Basis{{Y: 1}, {X: 1}, {Z: 1}}},
		{"Degenerate", lattice.Basis{{X: 1}, {X: 1}, {Z: 1}}},
		{"Volume2", lattice.Basis{{X: 2}, {Y: 1}, {Z: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := remap.New(tc.b)
			assert.ErrorIs(t, err, remap.ErrNotUnimodular)
			assert.Panics(t, func() { remap.MustNew(tc.b) })
		})
	}
}

func TestIdentity(t *testing.T) {
	r := remap.Identity()
	assert.Equal(t, lattice.Identity(), r.Basis())
	assert.Equal(t, [3]float64{1, 1, 1}, r.Lengths())
	assert.Equal(t, "123", r.Markers())
	assert.Equal(t, 3, remap.DefaultWeights().Score(r))
}

// TestNew_Sheared checks a hand-computed basis: u1=(1,1,0), u2=(0,0,1), u3=(1,0,0)
// gives e2=(0,0,1), e3=(½,−½,0) and L=(√2, 1, 1/√2).
func TestNew_Sheared(t *testing.T) {
	r, err := remap.New(lattice.Basis{{X: 1, Y: 1}, {Z: 1}, {X: 1}})
	require.NoError(t, err)

	e := r.Edges()
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 0}, e[0])
	assert.InDelta(t, 0, r3.Norm(r3.Sub(e[1], r3.Vec{Z: 1})), tol)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(e[2], r3.Vec{X: 0.5, Y: -0.5})), tol)

	l := r.Lengths()
	assert.InDelta(t, math.Sqrt2, l[0], tol)
	assert.InDelta(t, 1, l[1], tol)
	assert.InDelta(t, 1/math.Sqrt2, l[2], tol)
	assert.Equal(t, "12", r.Markers())
}

// TestNew_Invariants walks every accepted basis at bound 2 and checks the
// orthogonalization invariants.
func TestNew_Invariants(t *testing.T) {
	vs, err := lattice.CoprimeTriples(2)
	require.NoError(t, err)

	n := 0
	for b := range lattice.UnimodularBases(vs) {
		r, err := remap.New(b)
		require.NoError(t, err)
		n++

		e, l := r.Edges(), r.Lengths()
		if e[0] != b[0].R3() {
			t.Fatalf("%v: e1 %v differs from u1", b, e[0])
		}
		if d := r3.Dot(e[1], e[0]); math.Abs(d) > tol {
			t.Fatalf("%v: e2·e1 = %g", b, d)
		}
		if d := r3.Dot(e[2], e[0]); math.Abs(d) > tol {
			t.Fatalf("%v: e3·e1 = %g", b, d)
		}
		if d := r3.Dot(e[2], e[1]); math.Abs(d) > tol {
			t.Fatalf("%v: e3·e2 = %g", b, d)
		}
		for i := range l {
			if l[i] <= 0 {
				t.Fatalf("%v: L%d = %g", b, i+1, l[i])
			}
			if d := math.Abs(l[i] - r3.Norm(e[i])); d > tol {
				t.Fatalf("%v: L%d differs from |e%d| by %g", b, i+1, i+1, d)
			}
		}
		if v := l[0] * l[1] * l[2]; math.Abs(v-1) > tol {
			t.Fatalf("%v: volume %g", b, v)
		}
	}
	assert.Positive(t, n)
}

// TestNew_LargeCoefficients uses a basis with mixed signs from the demo set.
func TestNew_LargeCoefficients(t *testing.T) {
	r, err := remap.New(lattice.Basis{{X: 3, Y: 2, Z: 1}, {X: -1, Y: 1, Z: 2}, {X: 1, Y: 1, Z: 1}})
	require.NoError(t, err)

	e := r.Edges()
	assert.InDelta(t, 0, r3.Dot(e[0], e[1]), tol)
	assert.InDelta(t, 0, r3.Dot(e[0], e[2]), tol)
	assert.InDelta(t, 0, r3.Dot(e[1], e[2]), tol)
	assert.InDelta(t, math.Sqrt(14), r.Lengths()[0], tol)
	assert.Equal(t, "1", r.Markers())
}

// TestRemapping_Immutable verifies that accessors hand out copies.
func TestRemapping_Immutable(t *testing.T) {
	r := remap.Identity()
	e := r.Edges()
	e[0].X = 42
	l := r.Lengths()
	l[0] = 42
	b := r.Basis()
	b[0].X = 42

	assert.Equal(t, 1.0, r.Edges()[0].X)
	assert.Equal(t, 1.0, r.Lengths()[0])
	assert.Equal(t, 1, r.Basis()[0].X)
}
