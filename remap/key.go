// SPDX-License-Identifier: MIT

package remap

import (
	"cmp"
	"math"
)

// KeyResolution is the grid spacing used to quantize edge lengths into
// exact map keys.
const KeyResolution = 1e-9

// ShapeKey is the sorted edge-length triple Max ≥ Mid ≥ Min of a cuboid.
type ShapeKey struct {
	Max, Mid, Min float64
}

// GridKey is a ShapeKey rounded to multiples of KeyResolution. Two shapes
// share a GridKey exactly when their quantized lengths are equal, so GridKey
// is safe as a map key and totally ordered.
type GridKey [3]int64

// NewShapeKey sorts the three lengths descending.
func NewShapeKey(l1, l2, l3 float64) ShapeKey {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	if l2 < l3 {
		l2, l3 = l3, l2
	}
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return ShapeKey{Max: l1, Mid: l2, Min: l3}
}

// Grid quantizes k onto the KeyResolution grid.
func (k ShapeKey) Grid() GridKey {
	return GridKey{quantize(k.Max), quantize(k.Mid), quantize(k.Min)}
}

func quantize(x float64) int64 {
	return int64(math.Round(x / KeyResolution))
}

// Compare orders grid keys lexicographically by (Max, Mid, Min).
func (g GridKey) Compare(o GridKey) int {
	for i := range g {
		if c := cmp.Compare(g[i], o[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Compare orders shape keys lexicographically by (Max, Mid, Min), treating
// component differences of at most tol as equal. The relation is not
// transitive across chains of near-equal values; use Grid for map keys.
func (k ShapeKey) Compare(o ShapeKey, tol float64) int {
	a := [3]float64{k.Max, k.Mid, k.Min}
	b := [3]float64{o.Max, o.Mid, o.Min}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return cmp.Compare(a[i], b[i])
		}
	}
	return 0
}
