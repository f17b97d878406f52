// SPDX-License-Identifier: MIT
// Package: nhdbn/featureset
//
// errors.go — sentinel errors for the featureset package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Call sites attach context via fmt.Errorf("Func: ...: %w", ErrX).
//   - No operation panics on user-triggered conditions; validation panics
//     are confined to option constructors (WithX...).

package featureset

import "errors"

// ErrDeleteBelowMin indicates a delete on a set of cardinality below 2.
// Deleting from such a set would leave an empty or undersized model, so the
// cardinality of Π cannot go below 2 for a deletion.
// Usage: if errors.Is(err, ErrDeleteBelowMin) { /* move inapplicable */ }.
var ErrDeleteBelowMin = errors.New("featureset: cannot delete when card(Pi) < 2")

// ErrFanInExceeded indicates an add on a set already at the fan-in ceiling:
// the cardinality of Π may not exceed the fan-in restriction.
// Usage: if errors.Is(err, ErrFanInExceeded) { /* move inapplicable */ }.
var ErrFanInExceeded = errors.New("featureset: cardinality would exceed the fan-in restriction")

// ErrEmptyExchange indicates an exchange on an empty set; at least one
// member is required so there is something to exchange.
var ErrEmptyExchange = errors.New("featureset: cannot exchange on an empty feature set")

// ErrNoCandidate indicates the candidate pool for an add or exchange is
// empty (every admissible id is already a member). Reachable only when the
// fan-in restriction equals the total feature count.
var ErrNoCandidate = errors.New("featureset: no candidate feature available")

// ErrFanInTooLarge indicates fanInRestriction > numFeatures at initial-set
// generation: drawing that many distinct ids without replacement is
// impossible.
var ErrFanInTooLarge = errors.New("featureset: fan-in restriction exceeds feature count")

// ErrBadFanIn indicates a non-positive fan-in restriction.
var ErrBadFanIn = errors.New("featureset: fan-in restriction must be >= 1")

// ErrBadFeatureCount indicates a non-positive numFeatures.
var ErrBadFeatureCount = errors.New("featureset: numFeatures must be >= 1")

// ErrBadFeatureID indicates a set member outside [1..numFeatures]. This is
// a configuration error: such a set cannot have come from this package's
// own generators under the same numFeatures.
var ErrBadFeatureID = errors.New("featureset: feature id out of range")

// ErrNeedRandSource indicates a stochastic operation was invoked without a
// generator (neither WithRand nor WithSeed was supplied).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("featureset: rng is required")

// ErrUnknownMove indicates a MoveType outside the three defined operators.
var ErrUnknownMove = errors.New("featureset: unknown move type")
