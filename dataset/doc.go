// Package dataset holds the time-series data model consumed by NhDBN
// structure search, plus its two external collaborators: coefficient-file
// parsing and synthetic benchmark generation.
//
// 🚀 The data model:
//
//	A Dataset keeps feature columns under the naming convention "Xi" for
//	feature id i (1-based), in stable insertion order, and response
//	columns (conventionally "y") in a separate namespace.  Every column
//	shares one sample count.
//
// ✨ Key operations:
//   - Select: project a full dataset onto a feature set (features only;
//     the response is fetched separately by callers that need it)
//   - ParseCoefs / ParseCoefsFile: read bracketed coefficient vectors,
//     one per line, for synthetic benchmarks
//   - Generate: synthetic data with configurable sample count, dimension
//     count, and linearly-derived dependent columns (gonum distuv draws)
//
// The insertion order of feature columns is part of the contract: the
// design package stacks columns in exactly that order, so a likelihood
// computed from a selected dataset lines up with its coefficient vector.
package dataset
