// SPDX-License-Identifier: MIT

// Package boxremap enumerates and applies cuboid remappings of the periodic
// unit cube.
//
// A unimodular integer matrix U (det U = +1) maps the lattice Z³ onto itself,
// so the cuboid spanned by the Gram–Schmidt orthogonalization of U's rows is
// another fundamental domain of the same periodic space. Reshaping a periodic
// simulation box into such a cuboid preserves every point and the volume,
// while changing the aspect ratio.
//
// Packages:
//
//	lattice/   primitive integer directions and determinant-+1 bases
//	remap/     the cuboid of one basis, its shape key and selection score
//	catalog/   concurrent enumeration keeping one canonical basis per shape
//	report/    the plain-text catalogue layout
//	cuboid/    point transform between the unit cube and a cuboid
//
// Commands:
//
//	cmd/genremap   print the catalogue for a search bound
//	cmd/remap      remap a stream of points
//
// Example, a 1 × 1 × 1 cube reshaped into √2 × 1 × 1/√2:
//
//	u1 = (1, 1, 0)    e1 = (1, 1, 0)
//	u2 = (0, 0, 1)    e2 = (0, 0, 1)
//	u3 = (1, 0, 0)    e3 = (½, −½, 0)
package boxremap
