// Package design builds the regression-side quantities the acceptance
// ratio needs from a selected dataset: the design matrix and the prior
// mean vector, both as gonum/mat values.
//
// The design matrix always carries an intercept column of ones at column
// 0, followed by the dataset's feature columns in their insertion order —
// the order Select established.  An empty selection is the null model and
// yields the intercept-only matrix, not an error.
//
// The prior mean is the zero vector of length |Π|+1 (intercept plus one
// coefficient per selected feature); it depends on cardinality only.
package design
