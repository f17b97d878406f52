// SPDX-License-Identifier: MIT
// Package: nhdbn/dataset
//
// dataset.go — the Dataset type and the Select projection.
//
// Contract (strict):
//   - Feature columns iterate in insertion order; that order is stable and
//     observable through FeatureNames.
//   - Every column (feature or response) shares one sample count; the first
//     inserted column fixes it.
//   - Select is a pure projection: no column data is copied lazily or
//     mutated, and the response namespace is not carried through.

package dataset

import (
	"fmt"
	"strconv"

	"github.com/nhdbn-lab/nhdbn/featureset"
)

// ResponseKey is the conventional response column name.
const ResponseKey = "y"

// featureKeyPrefix prefixes 1-based feature ids in column names ("X1"...).
const featureKeyPrefix = "X"

// FeatureName renders the column name of feature id ("X" + id). It is the
// single place where ids become keys; Select and Generate both go through
// it.
func FeatureName(id int) string {
	return featureKeyPrefix + strconv.Itoa(id)
}

// Dataset is a named collection of numeric columns in two namespaces:
// features (predictors, keys "X1".."XN") and responses (key "y" by
// convention). The zero value is not usable; construct with New.
type Dataset struct {
	order    []string             // feature insertion order
	features map[string][]float64 // feature name → column
	response map[string][]float64 // response name → column
}

// New returns an empty Dataset ready for column insertion.
func New() *Dataset {
	return &Dataset{
		features: make(map[string][]float64),
		response: make(map[string][]float64),
	}
}

// NumSamples reports the shared column length; 0 for an empty dataset.
func (d *Dataset) NumSamples() int {
	for _, name := range d.order {
		return len(d.features[name])
	}
	for _, col := range d.response {
		return len(col)
	}

	return 0
}

// NumFeatures reports how many feature columns the dataset holds.
func (d *Dataset) NumFeatures() int { return len(d.order) }

// FeatureNames returns the feature column names in insertion order. The
// slice is a copy.
func (d *Dataset) FeatureNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)

	return out
}

// Feature returns the named feature column and whether it exists. The
// returned slice is the backing storage; callers must not mutate it.
func (d *Dataset) Feature(name string) ([]float64, bool) {
	col, ok := d.features[name]

	return col, ok
}

// Response returns the named response column and whether it exists.
func (d *Dataset) Response(name string) ([]float64, bool) {
	col, ok := d.response[name]

	return col, ok
}

// AddFeature inserts (or replaces) a feature column. A replaced column
// keeps its original position in the iteration order. The first column
// inserted into an empty dataset fixes the sample count; later columns
// must match it (ErrLengthMismatch).
func (d *Dataset) AddFeature(name string, col []float64) error {
	if name == "" {
		return fmt.Errorf("AddFeature: %w", ErrEmptyName)
	}
	if err := d.checkLength(name, col); err != nil {
		return fmt.Errorf("AddFeature: %w", err)
	}

	if _, exists := d.features[name]; !exists {
		d.order = append(d.order, name)
	}
	d.features[name] = col

	return nil
}

// SetResponse inserts (or replaces) a response column under the same
// length rule as AddFeature.
func (d *Dataset) SetResponse(name string, col []float64) error {
	if name == "" {
		return fmt.Errorf("SetResponse: %w", ErrEmptyName)
	}
	if err := d.checkLength(name, col); err != nil {
		return fmt.Errorf("SetResponse: %w", err)
	}

	d.response[name] = col

	return nil
}

// checkLength enforces the shared sample count, ignoring the column being
// replaced (its own previous length does not constrain the new one when it
// is the only column).
func (d *Dataset) checkLength(name string, col []float64) error {
	n := d.NumSamples()
	if n == 0 {
		return nil
	}
	// A sole column may be replaced with a different length.
	if len(d.features)+len(d.response) == 1 {
		if _, sole := d.features[name]; sole {
			return nil
		}
		if _, sole := d.response[name]; sole {
			return nil
		}
	}
	if len(col) != n {
		return fmt.Errorf("column %q has %d samples, dataset has %d: %w",
			name, len(col), n, ErrLengthMismatch)
	}

	return nil
}

// Select projects d onto the columns named by pi, in the set's canonical
// ascending order. The result carries features only — callers needing the
// response fetch it from the full dataset. A feature id with no matching
// "Xi" column fails with ErrUnknownFeature naming the missing key.
// Complexity: O(|Π|) time; column data is shared, not copied.
func Select(d *Dataset, pi featureset.FeatureSet) (*Dataset, error) {
	out := New()
	for _, id := range pi.IDs() {
		key := FeatureName(id)
		col, ok := d.features[key]
		if !ok {
			return nil, fmt.Errorf("Select: column %q: %w", key, ErrUnknownFeature)
		}
		out.order = append(out.order, key)
		out.features[key] = col
	}

	return out, nil
}
