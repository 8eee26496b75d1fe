// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is an integer lattice vector.
type Vec struct {
	X, Y, Z int
}

// Dot returns the scalar product v·w.
func (v Vec) Dot(w Vec) int {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v×w.
func (v Vec) Cross(w Vec) Vec {
	return Vec{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Norm2 returns the squared Euclidean length v·v.
func (v Vec) Norm2() int {
	return v.Dot(v)
}

// IsZero reports whether all components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// R3 converts v to a real vector. The conversion is exact for every
// component below 2⁵³ in magnitude.
func (v Vec) R3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// String renders v as "(x,y,z)".
func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}
