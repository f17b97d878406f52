// SPDX-License-Identifier: MIT
// Package: nhdbn/featureset
//
// initial.go — bootstrap of the sampler's first feature set.

package featureset

import "fmt"

// GenerateInitial draws fanInRestriction distinct feature ids uniformly
// without replacement from [1..numFeatures] and returns them as the
// sampler's starting Π. Internally a 0-based permutation is drawn and every
// value shifted by +1 into the public 1-based id space.
//
// Preconditions: numFeatures ≥ 1, 1 ≤ fanInRestriction ≤ numFeatures, and a
// supplied RNG (WithRand / WithSeed).
// Complexity: O(numFeatures) time and space.
func GenerateInitial(numFeatures, fanInRestriction int, opts ...Option) (FeatureSet, error) {
	const op = "GenerateInitial"

	cfg := newConfig(opts...)
	if numFeatures < minFeatureID {
		return FeatureSet{}, fmt.Errorf("%s: numFeatures=%d: %w", op, numFeatures, ErrBadFeatureCount)
	}
	if fanInRestriction < 1 {
		return FeatureSet{}, fmt.Errorf("%s: fanInRestriction=%d: %w", op, fanInRestriction, ErrBadFanIn)
	}
	if fanInRestriction > numFeatures {
		return FeatureSet{}, fmt.Errorf("%s: fanInRestriction=%d > numFeatures=%d, cannot sample without replacement: %w",
			op, fanInRestriction, numFeatures, ErrFanInTooLarge)
	}
	if cfg.rng == nil {
		return FeatureSet{}, fmt.Errorf("%s: %w", op, ErrNeedRandSource)
	}

	// A full permutation prefix is a uniform without-replacement draw.
	perm := cfg.rng.Perm(numFeatures)
	ids := make([]int, fanInRestriction)
	for i := 0; i < fanInRestriction; i++ {
		ids[i] = perm[i] + minFeatureID // 0-based draw → 1-based id
	}

	return New(ids...), nil
}
