// SPDX-License-Identifier: MIT
// Package: nhdbn/featureset
//
// moves.go — the add / delete / exchange reversible-jump operators.
//
// Contract (strict):
//   - Pure: the input set is never mutated; a fresh FeatureSet is returned.
//   - Uniform draws only, from the exact pools documented per operator, so
//     the external sampler's detailed-balance arithmetic stays valid.
//   - Validate early, return only sentinel errors wrapped with the move
//     name; never panic on user input.
//   - Stochastic paths require a non-nil RNG (ErrNeedRandSource otherwise).
//
// Determinism:
//   - Pools are built in ascending id order over the canonical set form, so
//     a fixed seed yields an identical move sequence on every run.

package featureset

import (
	"fmt"
)

// Domain constants (no magic literals).
const (
	// minFeatureID is the smallest valid feature id; 0 is the intercept.
	minFeatureID = 1

	// minDeleteCard is the smallest cardinality a delete may act on.
	minDeleteCard = 2

	// minExchangeCard is the smallest cardinality an exchange may act on.
	minExchangeCard = 1
)

// Delete removes one uniformly drawn member from pi and returns the reduced
// set. Forward proposal probability: 1/|Π|.
//
// Preconditions: |Π| ≥ 2 (ErrDeleteBelowMin otherwise) and every member of
// pi within [1..numFeatures]. The fanInRestriction parameter is validated
// for domain sanity but imposes no bound on a shrinking move.
// Complexity: O(numFeatures) time, O(|Π|) space.
func Delete(pi FeatureSet, numFeatures, fanInRestriction int, opts ...Option) (FeatureSet, error) {
	cfg := newConfig(opts...)
	if err := validateMoveInput(MoveDelete, pi, numFeatures, fanInRestriction, cfg); err != nil {
		return FeatureSet{}, err
	}
	if pi.Len() < minDeleteCard {
		return FeatureSet{}, fmt.Errorf("%s: card(Pi)=%d < %d, cardinality cannot go below %d for deletion: %w",
			MoveDelete, pi.Len(), minDeleteCard, minDeleteCard, ErrDeleteBelowMin)
	}

	// Uniform member draw over the canonical order.
	elToDel := pi.ids[cfg.rng.Intn(pi.Len())]

	return pi.Without(elToDel), nil
}

// Add appends one uniformly drawn non-member of pi and returns the grown
// set. The candidate pool is [1..numFeatures] \ Π. Forward proposal
// probability: 1/(numFeatures − |Π|).
//
// Preconditions: |Π| ≤ fanInRestriction−1 (ErrFanInExceeded otherwise) and
// a non-empty pool (ErrNoCandidate when Π already covers every id).
// Complexity: O(numFeatures) time and space.
func Add(pi FeatureSet, numFeatures, fanInRestriction int, opts ...Option) (FeatureSet, error) {
	cfg := newConfig(opts...)
	if err := validateMoveInput(MoveAdd, pi, numFeatures, fanInRestriction, cfg); err != nil {
		return FeatureSet{}, err
	}
	if pi.Len() > fanInRestriction-1 {
		return FeatureSet{}, fmt.Errorf("%s: card(Pi)=%d at fan-in restriction %d: %w",
			MoveAdd, pi.Len(), fanInRestriction, ErrFanInExceeded)
	}

	pool := pi.Complement(numFeatures)
	if len(pool) == 0 {
		return FeatureSet{}, fmt.Errorf("%s: all %d features already in Pi: %w",
			MoveAdd, numFeatures, ErrNoCandidate)
	}

	elToAdd := pool[cfg.rng.Intn(len(pool))]

	return pi.With(elToAdd), nil
}

// Exchange removes one uniformly drawn member (elToExchange) and adds one
// uniformly drawn candidate, leaving the cardinality unchanged.
//
// Pool semantics:
//   - default (true swap): pool = [1..numFeatures] \ Π, so the added id is
//     never a current member and |Π| is always preserved. Forward proposal
//     probability: 1/(|Π|·(numFeatures−|Π|)).
//   - WithNarrowExchange: pool = [1..numFeatures] \ {elToExchange}, built
//     before the removal, so the draw may return one of the remaining
//     members and collapse the set to |Π|−1. Forward proposal probability:
//     1/(|Π|·(numFeatures−1)).
//
// Preconditions: |Π| ≥ 1 (ErrEmptyExchange otherwise); a non-empty pool
// (ErrNoCandidate, reachable in swap mode when Π covers every id).
// Complexity: O(numFeatures) time and space.
func Exchange(pi FeatureSet, numFeatures, fanInRestriction int, opts ...Option) (FeatureSet, error) {
	cfg := newConfig(opts...)
	if err := validateMoveInput(MoveExchange, pi, numFeatures, fanInRestriction, cfg); err != nil {
		return FeatureSet{}, err
	}
	if pi.Len() < minExchangeCard {
		return FeatureSet{}, fmt.Errorf("%s: at least one element is required to exchange: %w",
			MoveExchange, ErrEmptyExchange)
	}

	// Draw the outgoing member first; both pool variants depend on it only
	// through the exclusion set.
	elToExchange := pi.ids[cfg.rng.Intn(pi.Len())]

	var pool []int
	if cfg.narrowExchange {
		pool = New(elToExchange).Complement(numFeatures)
	} else {
		pool = pi.Complement(numFeatures)
	}
	if len(pool) == 0 {
		return FeatureSet{}, fmt.Errorf("%s: no candidate outside Pi among %d features: %w",
			MoveExchange, numFeatures, ErrNoCandidate)
	}

	elToAdd := pool[cfg.rng.Intn(len(pool))]

	return pi.Without(elToExchange).With(elToAdd), nil
}

// Propose dispatches to the operator named by mv. Unknown move types fail
// with ErrUnknownMove.
func Propose(mv MoveType, pi FeatureSet, numFeatures, fanInRestriction int, opts ...Option) (FeatureSet, error) {
	switch mv {
	case MoveAdd:
		return Add(pi, numFeatures, fanInRestriction, opts...)
	case MoveDelete:
		return Delete(pi, numFeatures, fanInRestriction, opts...)
	case MoveExchange:
		return Exchange(pi, numFeatures, fanInRestriction, opts...)
	default:
		return FeatureSet{}, fmt.Errorf("Propose: move type %d: %w", int(mv), ErrUnknownMove)
	}
}

// ProposalProb returns the forward proposal probability of drawing any
// single candidate via mv from state pi, for use in the external
// Metropolis-Hastings ratio. The move's preconditions apply: an
// inapplicable move has no defined probability and fails with the same
// sentinel the move itself would return.
//
// WithNarrowExchange changes the exchange denominator from
// |Π|·(numFeatures−|Π|) to |Π|·(numFeatures−1); WithRand/WithSeed are
// accepted and ignored (no draw happens here).
func ProposalProb(mv MoveType, pi FeatureSet, numFeatures int, opts ...Option) (float64, error) {
	cfg := newConfig(opts...)
	if numFeatures < minFeatureID {
		return 0, fmt.Errorf("ProposalProb: numFeatures=%d: %w", numFeatures, ErrBadFeatureCount)
	}
	if err := validateMembers(mv.String(), pi, numFeatures); err != nil {
		return 0, err
	}

	switch mv {
	case MoveDelete:
		if pi.Len() < minDeleteCard {
			return 0, fmt.Errorf("ProposalProb: %s on card(Pi)=%d: %w", mv, pi.Len(), ErrDeleteBelowMin)
		}

		return 1 / float64(pi.Len()), nil

	case MoveAdd:
		if pi.Len() >= numFeatures {
			return 0, fmt.Errorf("ProposalProb: %s with full Pi: %w", mv, ErrNoCandidate)
		}

		return 1 / float64(numFeatures-pi.Len()), nil

	case MoveExchange:
		if pi.Len() < minExchangeCard {
			return 0, fmt.Errorf("ProposalProb: %s on empty Pi: %w", mv, ErrEmptyExchange)
		}
		if cfg.narrowExchange {
			if numFeatures < 2 {
				return 0, fmt.Errorf("ProposalProb: %s with a single feature: %w", mv, ErrNoCandidate)
			}

			return 1 / float64(pi.Len()*(numFeatures-1)), nil
		}
		if pi.Len() >= numFeatures {
			return 0, fmt.Errorf("ProposalProb: %s with full Pi: %w", mv, ErrNoCandidate)
		}

		return 1 / float64(pi.Len()*(numFeatures-pi.Len())), nil

	default:
		return 0, fmt.Errorf("ProposalProb: move type %d: %w", int(mv), ErrUnknownMove)
	}
}

// validateMoveInput runs the checks shared by all three operators:
// domain sanity, member range, RNG presence. Order is fixed and part of the
// contract (domain → members → rng).
func validateMoveInput(mv MoveType, pi FeatureSet, numFeatures, fanInRestriction int, cfg config) error {
	if numFeatures < minFeatureID {
		return fmt.Errorf("%s: numFeatures=%d: %w", mv, numFeatures, ErrBadFeatureCount)
	}
	if fanInRestriction < 1 {
		return fmt.Errorf("%s: fanInRestriction=%d: %w", mv, fanInRestriction, ErrBadFanIn)
	}
	if err := validateMembers(mv.String(), pi, numFeatures); err != nil {
		return err
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", mv, ErrNeedRandSource)
	}

	return nil
}

// validateMembers rejects any member outside [1..numFeatures].
func validateMembers(context string, pi FeatureSet, numFeatures int) error {
	for _, id := range pi.ids {
		if id < minFeatureID || id > numFeatures {
			return fmt.Errorf("%s: feature id %d not in [%d..%d]: %w",
				context, id, minFeatureID, numFeatures, ErrBadFeatureID)
		}
	}

	return nil
}
