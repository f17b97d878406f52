// SPDX-License-Identifier: MIT
// Package: nhdbn/dataset
//
// generate.go — synthetic benchmark data for testing the search core.
//
// Model (fixed, matching the reference benchmarks):
//   - independent columns X1..Xm ~ N(0,1) i.i.d.
//   - each dependent column = -0.2·X1 + 0.7·X2 + N(0,0.1) noise, appended
//     after the independents ("X{m+1}".."X{dims}")
//   - response y ~ N(0,1), uncorrelated with the features
//
// Determinism: all draws go through one caller-supplied source
// (WithGenSource / WithGenSeed); there is no global-RNG fallback.

package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generation defaults and the fixed dependent-column model.
const (
	DefaultSamples    = 100 // column length
	DefaultDimensions = 3   // total feature columns
	DefaultDependent  = 1   // trailing linearly-derived columns

	depCoefX1     = -0.2 // weight of X1 in every dependent column
	depCoefX2     = 0.7  // weight of X2 in every dependent column
	depNoiseSigma = 0.1  // stdev of the additive Gaussian noise

	// minIndependent: the dependent-column formula reads X1 and X2.
	minIndependent = 2
)

// GenOption customizes Generate.
type GenOption func(*genConfig)

type genConfig struct {
	samples    int
	dimensions int
	dependent  int
	src        rand.Source
}

// WithSamples sets the column length. Panics on n < 1 (programmer error;
// runtime validation still guards option-free misuse).
func WithSamples(n int) GenOption {
	if n < 1 {
		panic("dataset: WithSamples(n<1)")
	}
	return func(c *genConfig) { c.samples = n }
}

// WithDimensions sets the total number of feature columns.
func WithDimensions(n int) GenOption {
	if n < 1 {
		panic("dataset: WithDimensions(n<1)")
	}
	return func(c *genConfig) { c.dimensions = n }
}

// WithDependent sets how many trailing columns are linear combinations of
// X1 and X2 (zero is valid: fully independent data).
func WithDependent(n int) GenOption {
	if n < 0 {
		panic("dataset: WithDependent(n<0)")
	}
	return func(c *genConfig) { c.dependent = n }
}

// WithGenSource provides the random source for all draws. Panics on nil.
func WithGenSource(src rand.Source) GenOption {
	if src == nil {
		panic("dataset: WithGenSource(nil)")
	}
	return func(c *genConfig) { c.src = src }
}

// WithGenSeed is shorthand for WithGenSource(rand.NewSource(seed)).
func WithGenSeed(seed uint64) GenOption {
	return func(c *genConfig) { c.src = rand.NewSource(seed) }
}

// Generate produces a synthetic Dataset per the fixed model above.
// Defaults: 100 samples, 3 dimensions, 1 dependent column. A source is
// required; dependent > 0 requires at least two independent columns.
func Generate(opts ...GenOption) (*Dataset, error) {
	cfg := genConfig{
		samples:    DefaultSamples,
		dimensions: DefaultDimensions,
		dependent:  DefaultDependent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.samples < 1 || cfg.dimensions < 1 || cfg.dependent < 0 || cfg.dependent >= cfg.dimensions {
		return nil, fmt.Errorf("Generate: samples=%d dimensions=%d dependent=%d: %w",
			cfg.samples, cfg.dimensions, cfg.dependent, ErrBadGenConfig)
	}
	independent := cfg.dimensions - cfg.dependent
	if cfg.dependent > 0 && independent < minIndependent {
		return nil, fmt.Errorf("Generate: %d independent columns: %w", independent, ErrTooFewIndependent)
	}
	if cfg.src == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNeedRandSource)
	}

	stdNormal := distuv.Normal{Mu: 0, Sigma: 1, Src: cfg.src}
	noise := distuv.Normal{Mu: 0, Sigma: depNoiseSigma, Src: cfg.src}

	d := New()

	// Independent columns X1..Xm ~ N(0,1).
	for i := 1; i <= independent; i++ {
		col := make([]float64, cfg.samples)
		for s := range col {
			col[s] = stdNormal.Rand()
		}
		if err := d.AddFeature(FeatureName(i), col); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	// Dependent columns: fixed linear combination of X1 and X2 plus noise.
	if cfg.dependent > 0 {
		x1, _ := d.Feature(FeatureName(1))
		x2, _ := d.Feature(FeatureName(2))
		for i := 0; i < cfg.dependent; i++ {
			col := make([]float64, cfg.samples)
			for s := range col {
				col[s] = depCoefX1*x1[s] + depCoefX2*x2[s] + noise.Rand()
			}
			if err := d.AddFeature(FeatureName(independent+1+i), col); err != nil {
				return nil, fmt.Errorf("Generate: %w", err)
			}
		}
	}

	// Response y ~ N(0,1).
	y := make([]float64, cfg.samples)
	for s := range y {
		y[s] = stdNormal.Rand()
	}
	if err := d.SetResponse(ResponseKey, y); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	return d, nil
}
