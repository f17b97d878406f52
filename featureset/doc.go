// Package featureset implements the feature-set (Π) abstraction and the
// three reversible-jump move operators used by NhDBN structure search.
//
// 🚀 What is a feature set?
//
//	The candidate parent set of the response variable: a set of distinct
//	1-based feature ids drawn from [1..numFeatures], bounded above by the
//	fan-in restriction.  Feature id i names dataset column "Xi"; id 0 is
//	reserved for the intercept added at design-matrix time.
//
// ✨ Key features:
//   - FeatureSet value type with native membership, difference and
//     complement operations (canonical ascending order internally)
//   - GenerateInitial: uniform without-replacement bootstrap of size fanIn
//   - Add / Delete / Exchange: the proposal moves, each pure — the input
//     set is never mutated, a fresh set is returned
//   - Propose: dispatch by MoveType for samplers that draw the move kind
//   - ProposalProb: forward proposal probability per move, for the
//     external Metropolis-Hastings ratio
//
// ⚙️ Randomness:
//
//	Stochastic operations draw from a caller-supplied generator
//	(WithRand / WithSeed, golang.org/x/exp/rand).  A stochastic call
//	without a source fails with ErrNeedRandSource — there is no global
//	fallback, so seeded move sequences are reproducible and parallel
//	chains stay uncorrelated by owning one generator each.
//
// Exchange-pool semantics are an explicit design point: the default is a
// true swap (the added id is never a current member); WithNarrowExchange
// reproduces the historical pool that excludes only the removed id.  See
// Exchange for the consequences of each choice.
package featureset
