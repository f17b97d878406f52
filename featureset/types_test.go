// SPDX-License-Identifier: MIT
// Package featureset_test verifies the FeatureSet value type: canonical
// form, set algebra, and immutability of receivers.
package featureset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhdbn-lab/nhdbn/featureset"
)

// TestNew_CanonicalForm ensures construction sorts and de-duplicates.
func TestNew_CanonicalForm(t *testing.T) {
	pi := featureset.New(6, 2, 4, 2, 6)

	assert.Equal(t, []int{2, 4, 6}, pi.IDs(), "ids must come back ascending and unique")
	assert.Equal(t, 3, pi.Len(), "duplicates must not inflate cardinality")
}

// TestNew_Empty ensures the zero-argument constructor and the zero value
// agree on emptiness.
func TestNew_Empty(t *testing.T) {
	var zero featureset.FeatureSet
	pi := featureset.New()

	assert.Equal(t, 0, pi.Len(), "New() must be empty")
	assert.True(t, pi.Equal(zero), "New() must equal the zero value")
}

// TestContains covers members, non-members, and ids outside the canon.
func TestContains(t *testing.T) {
	pi := featureset.New(2, 4, 6)

	assert.True(t, pi.Contains(4), "member must be found")
	assert.False(t, pi.Contains(3), "non-member must not be found")
	assert.False(t, pi.Contains(7), "id beyond the largest member must not be found")
}

// TestWith_Without exercises the pure add/remove primitives, including the
// idempotent paths (adding a member, removing a non-member).
func TestWith_Without(t *testing.T) {
	pi := featureset.New(2, 4, 6)

	grown := pi.With(3)
	assert.Equal(t, []int{2, 3, 4, 6}, grown.IDs(), "With must insert in canonical position")
	assert.Equal(t, []int{2, 4, 6}, pi.IDs(), "receiver must stay untouched")

	same := pi.With(4)
	assert.True(t, same.Equal(pi), "adding an existing member is a no-op")

	shrunk := pi.Without(4)
	assert.Equal(t, []int{2, 6}, shrunk.IDs(), "Without must remove exactly one member")
	assert.Equal(t, []int{2, 4, 6}, pi.IDs(), "receiver must stay untouched")

	unchanged := pi.Without(5)
	assert.True(t, unchanged.Equal(pi), "removing a non-member is a no-op")
}

// TestComplement checks "all features minus Pi" in ascending order, plus
// the degenerate full and empty cases.
func TestComplement(t *testing.T) {
	pi := featureset.New(2, 4, 6)

	assert.Equal(t, []int{1, 3, 5}, pi.Complement(6), "complement within [1..6]")
	assert.Empty(t, featureset.New(1, 2, 3).Complement(3), "full set has empty complement")

	var empty featureset.FeatureSet
	assert.Equal(t, []int{1, 2, 3}, empty.Complement(3), "empty set complements to the full range")
}

// TestClone_Independence ensures a clone shares no storage with its origin.
func TestClone_Independence(t *testing.T) {
	pi := featureset.New(1, 2)
	cp := pi.Clone()

	require.True(t, cp.Equal(pi), "clone must start equal")

	ids := cp.IDs()
	ids[0] = 99
	assert.True(t, cp.Equal(pi), "mutating an IDs() copy must not leak into the set")
}

// TestMoveType_String pins the names used in wrapped error contexts.
func TestMoveType_String(t *testing.T) {
	assert.Equal(t, "add", featureset.MoveAdd.String())
	assert.Equal(t, "delete", featureset.MoveDelete.String())
	assert.Equal(t, "exchange", featureset.MoveExchange.String())
	assert.Equal(t, "unknown", featureset.MoveType(42).String())
}
