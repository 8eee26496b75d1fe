// SPDX-License-Identifier: MIT

package catalog

import (
	"slices"

	"github.com/tekkamanmaverick/BoxRemap/remap"
)

// entry is a stored remapping with its cached score.
type entry struct {
	r     remap.Remapping
	score int
}

// Table maps each cuboid shape to the best remapping seen for it.
// A Table is not safe for concurrent mutation; Build gives every worker its own.
type Table struct {
	weights remap.Weights
	entries map[remap.GridKey]entry
}

// NewTable returns an empty table scoring candidates with w.
func NewTable(w remap.Weights) *Table {
	return &Table{
		weights: w,
		entries: make(map[remap.GridKey]entry),
	}
}

// Insert folds r into the table: it is stored if its shape is new, or if its
// score is ≤ the stored score (the later candidate wins ties).
// Reports whether the table changed.
// Complexity: O(1) amortized.
func (t *Table) Insert(r remap.Remapping) bool {
	return t.put(r.Key().Grid(), entry{r: r, score: t.weights.Score(r)})
}

func (t *Table) put(k remap.GridKey, e entry) bool {
	if old, ok := t.entries[k]; ok && e.score > old.score {
		return false
	}
	t.entries[k] = e
	return true
}

// Merge folds every entry of other into t with the Insert rule, treating
// other's entries as produced after t's. Merging partial tables in
// enumeration order therefore matches inserting every candidate into one
// table. Scores are recomputed with t's weights when they differ.
// Complexity: O(|other|).
func (t *Table) Merge(other *Table) {
	for k, e := range other.entries {
		if other.weights != t.weights {
			e.score = t.weights.Score(e.r)
		}
		t.put(k, e)
	}
}

// Len returns the number of distinct shapes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the remapping stored for shape k, if any.
func (t *Table) Lookup(k remap.ShapeKey) (remap.Remapping, bool) {
	e, ok := t.entries[k.Grid()]
	return e.r, ok
}

// Score returns the stored score for shape k, if any.
func (t *Table) Score(k remap.ShapeKey) (int, bool) {
	e, ok := t.entries[k.Grid()]
	return e.score, ok
}

// Entries returns the stored remappings ordered ascending by shape
// (Max, then Mid, then Min).
func (t *Table) Entries() []remap.Remapping {
	keys := t.keys()
	out := make([]remap.Remapping, len(keys))
	for i, k := range keys {
		out[i] = t.entries[k].r
	}
	return out
}

func (t *Table) keys() []remap.GridKey {
	keys := make([]remap.GridKey, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, remap.GridKey.Compare)
	return keys
}
