// SPDX-License-Identifier: MIT
// Package: nhdbn/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy: sentinels only, matched via errors.Is; context is attached
// at call sites with %w wrapping. Lookup failures are configuration errors
// and propagate unrecovered; nothing here is retried internally.

package dataset

import "errors"

// ErrUnknownFeature indicates a feature set names a column the dataset does
// not hold (e.g. id 7 with no "X7" key). This is a programming or
// configuration error, not a sampler-level condition.
// Usage: if errors.Is(err, ErrUnknownFeature) { /* fix ids vs. data */ }.
var ErrUnknownFeature = errors.New("dataset: unknown feature column")

// ErrLengthMismatch indicates a column whose length disagrees with the
// dataset's established sample count.
var ErrLengthMismatch = errors.New("dataset: column length mismatch")

// ErrEmptyName indicates an empty column name on insertion.
var ErrEmptyName = errors.New("dataset: empty column name")

// ErrBadCoefLine indicates a coefficient-file line with a non-numeric
// token. The wrapped context carries the line number and the offending
// line for diagnosis.
// Usage: if errors.Is(err, ErrBadCoefLine) { /* report file location */ }.
var ErrBadCoefLine = errors.New("dataset: malformed coefficient line")

// ErrBadGenConfig indicates a synthetic-generation parameter outside its
// domain (samples < 1, dimensions < 1, dependent < 0 or ≥ dimensions).
var ErrBadGenConfig = errors.New("dataset: invalid generation parameter")

// ErrTooFewIndependent indicates dependent columns were requested with
// fewer than two independent columns to derive them from (the linear
// combination reads X1 and X2).
var ErrTooFewIndependent = errors.New("dataset: dependent columns need at least two independent columns")

// ErrNeedRandSource indicates Generate was invoked without a random source
// (neither WithGenSource nor WithGenSeed was supplied).
var ErrNeedRandSource = errors.New("dataset: rng is required")
