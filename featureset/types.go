// SPDX-License-Identifier: MIT
// Package: nhdbn/featureset
//
// types.go — FeatureSet value type and MoveType enumeration.
//
// Contract (strict):
//   - A FeatureSet is always canonical: strictly ascending, duplicate-free.
//   - Every operation returns a fresh set; receivers are never mutated.
//   - Ids are 1-based ([1..numFeatures]); 0 belongs to the intercept and is
//     never a member.

package featureset

import "sort"

// FeatureSet is the candidate parent set Π: distinct 1-based feature ids in
// canonical ascending order. The zero value is the empty set and is valid.
//
// Order carries no meaning for callers; the canonical form exists so that
// Equal, Complement and deterministic pool construction need no sorting at
// use sites.
type FeatureSet struct {
	ids []int // strictly ascending, no duplicates
}

// New builds a FeatureSet from the given ids, discarding duplicates and
// sorting into canonical order. Ids are taken as-is; range checks against
// numFeatures happen at operation boundaries, not construction.
// Complexity: O(n log n) time, O(n) space.
func New(ids ...int) FeatureSet {
	if len(ids) == 0 {
		return FeatureSet{}
	}
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	// Compact in place: keep the first occurrence of each run.
	out := sorted[:1]
	for _, id := range sorted[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}

	return FeatureSet{ids: out}
}

// Len reports the cardinality |Π|.
func (s FeatureSet) Len() int { return len(s.ids) }

// Contains reports whether id is a member.
// Complexity: O(log n) via binary search on the canonical order.
func (s FeatureSet) Contains(id int) bool {
	i := sort.SearchInts(s.ids, id)

	return i < len(s.ids) && s.ids[i] == id
}

// IDs returns the members in ascending order. The slice is a copy; mutating
// it does not affect the set.
func (s FeatureSet) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)

	return out
}

// Clone returns an independent copy of the set.
func (s FeatureSet) Clone() FeatureSet {
	return FeatureSet{ids: s.IDs()}
}

// Equal reports whether both sets hold exactly the same members.
func (s FeatureSet) Equal(o FeatureSet) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for i, id := range s.ids {
		if o.ids[i] != id {
			return false
		}
	}

	return true
}

// With returns a new set containing all members of s plus id. Adding an
// existing member returns an equal set (set semantics, no duplicates).
// Complexity: O(n) time, O(n) space.
func (s FeatureSet) With(id int) FeatureSet {
	if s.Contains(id) {
		return s.Clone()
	}
	i := sort.SearchInts(s.ids, id)
	out := make([]int, 0, len(s.ids)+1)
	out = append(out, s.ids[:i]...)
	out = append(out, id)
	out = append(out, s.ids[i:]...)

	return FeatureSet{ids: out}
}

// Without returns a new set containing all members of s except id. Removing
// a non-member returns an equal set.
// Complexity: O(n) time, O(n) space.
func (s FeatureSet) Without(id int) FeatureSet {
	if !s.Contains(id) {
		return s.Clone()
	}
	i := sort.SearchInts(s.ids, id)
	out := make([]int, 0, len(s.ids)-1)
	out = append(out, s.ids[:i]...)
	out = append(out, s.ids[i+1:]...)

	return FeatureSet{ids: out}
}

// Complement returns every id in [1..numFeatures] that is not a member of s,
// in ascending order. Ids of s outside that interval are ignored here; the
// move operators reject them up front.
// Complexity: O(numFeatures) time and space.
func (s FeatureSet) Complement(numFeatures int) []int {
	capacity := numFeatures - len(s.ids)
	if capacity < 0 {
		capacity = 0
	}
	out := make([]int, 0, capacity)
	for id := minFeatureID; id <= numFeatures; id++ {
		if !s.Contains(id) {
			out = append(out, id)
		}
	}

	return out
}

// MoveType identifies one of the three reversible-jump proposal operators.
type MoveType int

const (
	// MoveAdd grows Π by one uniformly drawn non-member.
	MoveAdd MoveType = iota

	// MoveDelete shrinks Π by one uniformly drawn member.
	MoveDelete

	// MoveExchange swaps one uniformly drawn member for a drawn candidate.
	MoveExchange
)

// String renders the move name used in wrapped error contexts.
func (m MoveType) String() string {
	switch m {
	case MoveAdd:
		return "add"
	case MoveDelete:
		return "delete"
	case MoveExchange:
		return "exchange"
	default:
		return "unknown"
	}
}
