// SPDX-License-Identifier: MIT

// Package remap turns one unimodular lattice basis into a cuboid remapping:
// three mutually orthogonal edge vectors obtained by a one-sided Gram-Schmidt
// process anchored on the first basis vector, and the edge lengths of the
// resulting cuboid.
//
// The package also owns the two notions the catalogue is built on:
//
//   - ShapeKey, the edge lengths sorted descending, which identifies a cuboid
//     shape independently of the basis that produced it, together with its
//     quantized form GridKey used as an exact map key;
//   - Weights.Score, the presentation heuristic that picks one basis per shape.
//
// Constructors:
//
//   - New validates Det == +1 and returns ErrNotUnimodular otherwise.
//   - MustNew panics instead; it is used where the enumerator has already
//     filtered the basis, so a failure is a logic defect.
package remap
