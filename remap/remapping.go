// SPDX-License-Identifier: MIT

package remap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tekkamanmaverick/BoxRemap/lattice"
)

// IntegerTolerance bounds the distance from an integer under which an edge
// vector component is treated as integral by Markers.
const IntegerTolerance = 1e-9

// Remapping is the cuboid produced by one unimodular basis. It is immutable:
// all accessors return copies.
type Remapping struct {
	u lattice.Basis
	e [3]r3.Vec
	l [3]float64
}

// New orthogonalizes b, anchored on its first row:
//
//	e1 = u1
//	e2 = u2 + α·u1                 with e2·u1 = 0
//	e3 = u3 + β·u1 + γ·u2          with e3·u1 = e3·u2 = 0
//
// α = −d12/s1, γ = −(α·d13 + d23)/(α·d12 + s2), β = −(d13 + γ·d12)/s1, where
// s1 = |u1|², s2 = |u2|² and dij = ui·uj. Both denominators are non-zero for a
// basis of determinant 1.
//
// The lengths come from integer Gram quantities rather than from the float
// vectors: with c = |u1×u2|², L1² = s1, L2² = c/s1 and L3² = 1/c (because
// L1·L2·L3 = Det = 1). Equal lengths from different bases therefore compare
// bit-identical.
//
// Returns ErrNotUnimodular if b.Det() != 1.
func New(b lattice.Basis) (Remapping, error) {
	if d := b.Det(); d != 1 {
		return Remapping{}, fmt.Errorf("New: basis %v has det %d: %w", b, d, ErrNotUnimodular)
	}
	u1, u2, u3 := b[0], b[1], b[2]

	s1 := float64(u1.Norm2())
	s2 := float64(u2.Norm2())
	d12 := float64(u1.Dot(u2))
	d13 := float64(u1.Dot(u3))
	d23 := float64(u2.Dot(u3))

	alpha := -d12 / s1
	gamma := -(alpha*d13 + d23) / (alpha*d12 + s2)
	beta := -(d13 + gamma*d12) / s1

	f1, f2, f3 := u1.R3(), u2.R3(), u3.R3()
	e1 := f1
	e2 := r3.Add(f2, r3.Scale(alpha, f1))
	e3 := r3.Add(f3, r3.Add(r3.Scale(beta, f1), r3.Scale(gamma, f2)))

	c := float64(u1.Cross(u2).Norm2())

	return Remapping{
		u: b,
		e: [3]r3.Vec{e1, e2, e3},
		l: [3]float64{
			math.Sqrt(s1),
			math.Sqrt(c / s1),
			math.Sqrt(1 / c),
		},
	}, nil
}

// MustNew is like New but panics on a non-unimodular basis.
func MustNew(b lattice.Basis) Remapping {
	r, err := New(b)
	if err != nil {
		panic(err)
	}
	return r
}

// Identity returns the trivial remapping of the unit cube onto itself.
func Identity() Remapping {
	return MustNew(lattice.Identity())
}

// Basis returns the generating integer basis (rows u1, u2, u3).
func (r Remapping) Basis() lattice.Basis { return r.u }

// Edges returns the orthogonal edge vectors e1, e2, e3.
func (r Remapping) Edges() [3]r3.Vec { return r.e }

// Lengths returns L1, L2, L3 in edge order (not sorted).
func (r Remapping) Lengths() [3]float64 { return r.l }

// Key returns the shape of the cuboid.
func (r Remapping) Key() ShapeKey {
	return NewShapeKey(r.l[0], r.l[1], r.l[2])
}

// Markers lists, in order, the edges whose vectors are integral within
// IntegerTolerance: "1" for e1, "2" for e2, "3" for e3. Such an edge stays
// aligned with a single lattice direction, so the cuboid is periodic along it.
func (r Remapping) Markers() string {
	var out []byte
	for i, e := range r.e {
		if isIntegral(e) {
			out = append(out, byte('1'+i))
		}
	}
	return string(out)
}

func isIntegral(v r3.Vec) bool {
	return nearInt(v.X) && nearInt(v.Y) && nearInt(v.Z)
}

func nearInt(x float64) bool {
	return math.Abs(x-math.Round(x)) < IntegerTolerance
}
