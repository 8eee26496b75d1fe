// SPDX-License-Identifier: MIT

// Package catalog selects one canonical remapping per cuboid shape.
//
// 🚀 What:
//
//	Build enumerates every unimodular basis within a search bound, turns each
//	into a remapping and folds it into a Table keyed by shape. Per shape the
//	table keeps the lowest-scoring remapping; on equal scores the candidate
//	produced later in enumeration order wins.
//
// ⚙️ Usage:
//
//	opts := catalog.DefaultOptions()
//	opts.Workers = 4
//	table, stats, err := catalog.Build(ctx, 3, opts)
//	if err != nil {
//	  // ErrBoundTooSmall, ErrBoundTooLarge or a context error
//	}
//	for _, r := range table.Entries() { ... }
//
// Concurrency:
//
//   - The u1 index range is cut into contiguous chunks processed on an
//     errgroup; each chunk fills a private Table.
//   - Partial tables are merged in ascending chunk order, which reproduces
//     the single-threaded tie-break exactly. Output does not depend on
//     Options.Workers.
//
// Complexity:
//
//   - Time O(n⁹) for bound n (the determinant walk), memory O(n³ + S·W) for
//     S distinct shapes and W chunks.
package catalog
