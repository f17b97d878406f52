// SPDX-License-Identifier: MIT
// Package: nhdbn/design
//
// design.go — design-matrix and prior-mean construction.
//
// Contract (strict):
//   - Column 0 is the intercept (all ones); columns 1..k follow the
//     dataset's feature insertion order.
//   - Output row count always equals numSamples; column count equals
//     1 + d.NumFeatures().
//   - Zero selected features ⇒ (numSamples, 1) ones matrix: the null
//     model, never an error.
//   - Pure: input columns are copied into the matrix, never aliased.

package design

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nhdbn-lab/nhdbn/dataset"
	"github.com/nhdbn-lab/nhdbn/featureset"
)

// interceptValue fills design-matrix column 0.
const interceptValue = 1.0

// BuildDesignMatrix stacks an intercept column of numSamples ones and the
// feature columns of d, in insertion order, into a (numSamples, 1+k) dense
// matrix for a regression-style likelihood.
// Complexity: O(numSamples · k) time and space.
func BuildDesignMatrix(d *dataset.Dataset, numSamples int) (*mat.Dense, error) {
	const op = "BuildDesignMatrix"

	if d == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilDataset)
	}
	if numSamples < 1 {
		return nil, fmt.Errorf("%s: numSamples=%d: %w", op, numSamples, ErrBadSampleCount)
	}

	names := d.FeatureNames()
	x := mat.NewDense(numSamples, 1+len(names), nil)

	for row := 0; row < numSamples; row++ {
		x.Set(row, 0, interceptValue)
	}

	for j, name := range names {
		col, _ := d.Feature(name) // names came from d, lookup cannot miss
		if len(col) != numSamples {
			return nil, fmt.Errorf("%s: column %q has %d samples, want %d: %w",
				op, name, len(col), numSamples, ErrSampleMismatch)
		}
		x.SetCol(j+1, col)
	}

	return x, nil
}

// MuVector returns the prior mean on the regression coefficients of pi: a
// zero column vector of length |Π|+1, the +1 being the intercept
// coefficient. Pure in the set's cardinality; the member ids are not
// inspected.
func MuVector(pi featureset.FeatureSet) *mat.VecDense {
	return mat.NewVecDense(pi.Len()+1, nil)
}
