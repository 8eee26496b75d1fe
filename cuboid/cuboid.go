// SPDX-License-Identifier: MIT

package cuboid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tekkamanmaverick/BoxRemap/lattice"
	"github.com/tekkamanmaverick/BoxRemap/remap"
)

// plane is the half-space n·x + d ≥ 0.
type plane struct {
	n r3.Vec
	d float64
}

// newPlane returns the plane through p with inward normal n.
func newPlane(p, n r3.Vec) plane {
	return plane{n: n, d: -r3.Dot(p, n)}
}

func (p plane) test(x r3.Vec) float64 {
	return r3.Dot(p.n, x) + p.d
}

// unitCubeCorners are the eight vertices of [0,1]³.
var unitCubeCorners = [8]r3.Vec{
	{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 1},
	{X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1},
}

// side classifies the unit cube against p: +1 if it lies inside (touching
// allowed), −1 if outside, 0 if the plane cuts it.
func side(p plane) int {
	above, below := 0, 0
	for _, c := range unitCubeCorners {
		switch s := p.test(c); {
		case s > 0:
			above = 1
		case s < 0:
			below = 1
		}
	}
	return above - below
}

// cell is an integer translation k together with the faces that cut the
// unit cube once the cuboid is shifted by −k. A point x of the unit cube
// lies in this cell when it passes every face test; x+k is then inside the
// cuboid.
type cell struct {
	k     r3.Vec
	faces []plane
}

// violation returns the largest distance by which x lies outside one of
// the cell's faces, or 0 if x passes every face test.
func (c cell) violation(x r3.Vec) float64 {
	worst := 0.0
	for _, f := range c.faces {
		worst = math.Max(worst, -f.test(x))
	}
	return worst
}

// Face tolerances, relative to the longest cuboid edge. A point within
// FaceTolerance of a cell is accepted at once; otherwise Transform falls
// back to the nearest cell if it lies within SnapTolerance of it.
const (
	FaceTolerance = 1e-12
	SnapTolerance = 1e-9
)

// Cuboid is the point transform of one remapping.
type Cuboid struct {
	r     remap.Remapping
	n     [3]r3.Vec // unit edge directions
	cells []cell
	eps   float64 // absolute FaceTolerance
	snap  float64 // absolute SnapTolerance
}

// New prepares the transform for basis b.
//
// Errors: remap.ErrNotUnimodular if b.Det() != 1.
func New(b lattice.Basis) (*Cuboid, error) {
	r, err := remap.New(b)
	if err != nil {
		return nil, fmt.Errorf("cuboid: %w", err)
	}
	e, l := r.Edges(), r.Lengths()
	c := &Cuboid{r: r}
	for i := range c.n {
		c.n[i] = r3.Scale(1/l[i], e[i])
	}
	scale := math.Max(l[0], math.Max(l[1], l[2]))
	c.eps, c.snap = FaceTolerance*scale, SnapTolerance*scale

	// Corners of the cuboid: v[4a+2b+c] = a·e1 + b·e2 + c·e3.
	var v [8]r3.Vec
	for i := range v {
		if i&4 != 0 {
			v[i] = r3.Add(v[i], e[0])
		}
		if i&2 != 0 {
			v[i] = r3.Add(v[i], e[1])
		}
		if i&1 != 0 {
			v[i] = r3.Add(v[i], e[2])
		}
	}
	lo, hi := v[0], v[0]
	for _, p := range v[1:] {
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}

	for ix := int(math.Floor(lo.X)); ix < int(math.Ceil(hi.X)); ix++ {
		for iy := int(math.Floor(lo.Y)); iy < int(math.Ceil(hi.Y)); iy++ {
			for iz := int(math.Floor(lo.Z)); iz < int(math.Ceil(hi.Z)); iz++ {
				k := r3.Vec{X: float64(ix), Y: float64(iy), Z: float64(iz)}
				if cl, ok := c.cutCell(v, k); ok {
					c.cells = append(c.cells, cl)
				}
			}
		}
	}
	if len(c.cells) == 0 {
		// The cuboid is the unit cube itself.
		c.cells = append(c.cells, cell{})
	}

	return c, nil
}

// cutCell classifies the six faces of the cuboid shifted by −k against the
// unit cube. It reports false when the shifted cuboid misses the cube or
// when no face cuts it.
func (c *Cuboid) cutCell(v [8]r3.Vec, k r3.Vec) (cell, bool) {
	shift := r3.Scale(-1, k)
	at := func(p r3.Vec) r3.Vec { return r3.Add(p, shift) }
	faces := [6]plane{
		newPlane(at(v[0]), c.n[0]),
		newPlane(at(v[4]), r3.Scale(-1, c.n[0])),
		newPlane(at(v[0]), c.n[1]),
		newPlane(at(v[2]), r3.Scale(-1, c.n[1])),
		newPlane(at(v[0]), c.n[2]),
		newPlane(at(v[1]), r3.Scale(-1, c.n[2])),
	}
	out := cell{k: k}
	for _, f := range faces {
		switch side(f) {
		case -1:
			return cell{}, false
		case 0:
			out.faces = append(out.faces, f)
		}
	}
	if len(out.faces) == 0 {
		return cell{}, false
	}
	return out, true
}

// Remapping returns the underlying remapping.
func (c *Cuboid) Remapping() remap.Remapping { return c.r }

// Basis returns the integer basis of the remapping.
func (c *Cuboid) Basis() lattice.Basis { return c.r.Basis() }

// Lengths returns the cuboid edge lengths L1, L2, L3.
func (c *Cuboid) Lengths() [3]float64 { return c.r.Lengths() }

// Cells returns the number of integer translations the transform tests.
func (c *Cuboid) Cells() int { return len(c.cells) }

// Transform maps x to cuboid coordinates (r1, r2, r3) with 0 ≤ ri ≤ Li.
// x is first wrapped into [0,1)³, so any representative of a periodic
// point is accepted.
//
// A point on a face shared by two cells goes to the first cell that accepts
// it within FaceTolerance.
//
// Errors: ErrUncovered if x is farther than SnapTolerance from every cell.
func (c *Cuboid) Transform(x r3.Vec) (r3.Vec, error) {
	x = wrap(x)
	best, bestV := -1, math.Inf(1)
	for i, cl := range c.cells {
		v := cl.violation(x)
		if v <= c.eps {
			best, bestV = i, v
			break
		}
		if v < bestV {
			best, bestV = i, v
		}
	}
	if best < 0 || bestV > c.snap {
		return r3.Vec{}, fmt.Errorf("Transform %v: off by %g: %w", x, bestV, ErrUncovered)
	}
	p := r3.Add(x, c.cells[best].k)
	return r3.Vec{X: r3.Dot(p, c.n[0]), Y: r3.Dot(p, c.n[1]), Z: r3.Dot(p, c.n[2])}, nil
}

// InverseTransform maps cuboid coordinates back into the unit cube [0,1)³.
func (c *Cuboid) InverseTransform(r r3.Vec) r3.Vec {
	p := r3.Add(r3.Scale(r.X, c.n[0]), r3.Add(r3.Scale(r.Y, c.n[1]), r3.Scale(r.Z, c.n[2])))
	return wrap(p)
}

// InUnitCube reports whether every coordinate of x lies in [0,1).
func InUnitCube(x r3.Vec) bool {
	return x.X >= 0 && x.X < 1 && x.Y >= 0 && x.Y < 1 && x.Z >= 0 && x.Z < 1
}

func wrap(x r3.Vec) r3.Vec {
	return r3.Vec{X: wrap1(x.X), Y: wrap1(x.Y), Z: wrap1(x.Z)}
}

// wrap1 reduces x into [0,1).
func wrap1(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		// x was a tiny negative number and x+1 rounded to 1.
		x = 0
	}
	return x
}
