// Package nhdbn provides the proposal primitives for structure search in
// non-homogeneous dynamic Bayesian networks (NhDBN).
//
// 🚀 What is nhdbn?
//
//	A small, deterministic library that supplies everything a
//	Metropolis-Hastings / reversible-jump sampler needs to walk the space
//	of candidate parent sets:
//		• Feature sets: canonical set algebra over 1-based feature ids
//		• Moves: the add / delete / exchange reversible-jump operators
//		• Data selection: projecting a dataset onto a feature set
//		• Design matrices: intercept + selected columns, gonum-backed
//		• Prior means: zero vectors sized to intercept + coefficients
//
// ✨ Why choose nhdbn?
//
//   - Explicit randomness – every stochastic call takes a caller-owned,
//     seedable generator; no global RNG state, no hidden draws
//   - Pure proposals – a move never mutates its input set, so one chain's
//     history is always reconstructible from its seed
//   - Sentinel errors – every constraint violation is a distinct, Is-able
//     error; nothing is silently corrected
//
// Under the hood, everything is organized under three subpackages:
//
//	featureset/ — FeatureSet type, initial-set generation, move operators
//	dataset/    — Dataset type, selection, coefficient files, synthetic data
//	design/     — design-matrix and prior-mean construction (gonum/mat)
//
// Control flow at the sampler boundary:
//
//	pi ← featureset.GenerateInitial(N, fanIn, featureset.WithSeed(s))
//	loop:
//	  cand ← featureset.Propose(move, pi, N, fanIn, featureset.WithRand(rng))
//	  sel  ← dataset.Select(data, cand)
//	  X    ← design.BuildDesignMatrix(sel, numSamples)
//	  mu   ← design.MuVector(cand)
//	  ...external likelihood & acceptance decide whether pi = cand
//
// The acceptance/rejection arithmetic itself lives in the external sampler;
// this library only guarantees that each move's sampling distribution and
// failure modes are exactly as documented, so detailed-balance computations
// stay valid.
package nhdbn
