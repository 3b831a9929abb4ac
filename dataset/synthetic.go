// Package dataset generates synthetic regression data with a known ground
// truth, for validating estimators against coefficients the generator
// controls.
package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/olskit/olskit/pkg/errors"
)

// GroundTruth records the parameters the response was generated from.
type GroundTruth struct {
	Coefficients []float64
	Intercept    float64
}

type config struct {
	nSamples     int
	nFeatures    int
	coefficients []float64
	intercept    float64
	noiseScale   float64
	seed         uint64
}

// Option configures MakeRegression.
type Option func(*config)

// WithNSamples sets the number of rows (default 100).
func WithNSamples(n int) Option {
	return func(c *config) { c.nSamples = n }
}

// WithNFeatures sets the number of predictor columns (default 2).
func WithNFeatures(k int) Option {
	return func(c *config) { c.nFeatures = k }
}

// WithCoefficients fixes the ground-truth coefficients. Length must equal
// the feature count. Without this option coefficient j defaults to
// (j+1)/2, so every feature contributes.
func WithCoefficients(coefs []float64) Option {
	return func(c *config) { c.coefficients = coefs }
}

// WithIntercept sets the ground-truth intercept (default 0).
func WithIntercept(intercept float64) Option {
	return func(c *config) { c.intercept = intercept }
}

// WithNoise sets the standard deviation of the additive zero-mean Gaussian
// noise (default 1). Zero gives an exactly linear response.
func WithNoise(scale float64) Option {
	return func(c *config) { c.noiseScale = scale }
}

// WithSeed fixes the RNG seed for reproducible draws (default 1).
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// MakeRegression draws X from the standard normal distribution and builds
// y = X·β + intercept + ε with ε ~ N(0, noise²). It returns X (n×k), y as a
// column vector and the ground truth used.
func MakeRegression(opts ...Option) (*mat.Dense, *mat.VecDense, GroundTruth, error) {
	c := config{
		nSamples:   100,
		nFeatures:  2,
		noiseScale: 1.0,
		seed:       1,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if c.nSamples <= 0 || c.nFeatures <= 0 {
		return nil, nil, GroundTruth{}, errors.NewValueError("MakeRegression", "sample and feature counts must be positive")
	}
	if c.noiseScale < 0 {
		return nil, nil, GroundTruth{}, errors.NewValueError("MakeRegression", "noise scale must be non-negative")
	}
	if c.coefficients != nil && len(c.coefficients) != c.nFeatures {
		return nil, nil, GroundTruth{}, errors.NewDimensionError("MakeRegression", c.nFeatures, len(c.coefficients), 1)
	}

	coefs := c.coefficients
	if coefs == nil {
		coefs = make([]float64, c.nFeatures)
		for j := range coefs {
			coefs[j] = float64(j+1) * 0.5
		}
	}

	rng := rand.New(rand.NewPCG(c.seed, c.seed+1))
	standard := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	X := mat.NewDense(c.nSamples, c.nFeatures, nil)
	for i := 0; i < c.nSamples; i++ {
		for j := 0; j < c.nFeatures; j++ {
			X.Set(i, j, standard.Rand())
		}
	}

	y := mat.NewVecDense(c.nSamples, nil)
	for i := 0; i < c.nSamples; i++ {
		val := c.intercept
		for j := 0; j < c.nFeatures; j++ {
			val += X.At(i, j) * coefs[j]
		}
		if c.noiseScale > 0 {
			val += standard.Rand() * c.noiseScale
		}
		y.SetVec(i, val)
	}

	truth := GroundTruth{Coefficients: coefs, Intercept: c.intercept}
	return X, y, truth, nil
}
