// SPDX-License-Identifier: MIT

// Package cuboid maps points of the periodic unit cube into the cuboid of a
// remapping, and back.
//
// The cuboid spanned by the orthogonal edges e1, e2, e3 of a unimodular
// remapping is a fundamental domain of the lattice Z³: every point of the
// unit cube has exactly one integer translate inside it (up to boundaries).
// New precomputes the integer translations ("cells") that can bring part of
// the unit cube into the cuboid, together with the cuboid faces that cut the
// cube for each of them; Transform then only tests those faces.
//
// Complexity:
//
//   - New: O(V) for the V integer cells overlapping the cuboid's bounding box.
//   - Transform: O(C) face tests for the C retained cells; O(1) per point for
//     a fixed basis.
package cuboid
