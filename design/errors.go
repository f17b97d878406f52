// SPDX-License-Identifier: MIT
// Package: nhdbn/design
//
// errors.go — sentinel errors for the design package.

package design

import "errors"

// ErrNilDataset indicates a nil *dataset.Dataset argument.
var ErrNilDataset = errors.New("design: dataset is nil")

// ErrBadSampleCount indicates numSamples < 1.
var ErrBadSampleCount = errors.New("design: numSamples must be >= 1")

// ErrSampleMismatch indicates a feature column whose length differs from
// the requested numSamples.
var ErrSampleMismatch = errors.New("design: column length does not match numSamples")
