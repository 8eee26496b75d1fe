// SPDX-License-Identifier: MIT

// Package lattice enumerates the integer building blocks of cuboid remappings:
// primitive lattice directions and the orientation-preserving unimodular bases
// they form.
//
// What:
//
//   - Vec is an integer 3-vector (a direction of the periodic lattice Z³).
//   - CoprimeTriples lists every primitive direction in the cube [−n,+n]³.
//   - Basis is an ordered row triple (u1,u2,u3); Det is its triple scalar product.
//   - UnimodularBases walks every ordered triple of directions and yields those
//     with Det == +1, the only bases accepted downstream.
//
// Why:
//
//   - A determinant of +1 keeps the unit cell volume (periodicity is preserved)
//     and the orientation (no mirror images in the catalogue).
//
// Complexity:
//
//   - CoprimeTriples: O(n³·log n) time, O(n³) memory.
//   - UnimodularBases: O(M³) determinant evaluations for M primitive directions,
//     i.e. O(n⁹). This term dominates every run.
//
// Determinism:
//
//   - Directions are produced in lexicographic (X, Y, Z) order and bases in
//     (i1, i2, i3) index order, so downstream tie-breaks are reproducible.
//
// Errors:
//
//   - ErrBound: the search bound is below 1.
//   - ErrBasisShape: a textual matrix does not carry exactly nine integers.
package lattice
