// Package linear implements ordinary least squares regression solved in
// closed form via the normal equations, with per-coefficient standard
// errors and R².
package linear

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/olskit/olskit/core/model"
	"github.com/olskit/olskit/core/parallel"
	"github.com/olskit/olskit/metrics"
	"github.com/olskit/olskit/pkg/errors"
)

// Row counts at or below this are processed sequentially.
const parallelThreshold = 1000

// OLS is an ordinary least squares regressor.
//
// Fit solves the normal equations XᵀXβ = Xᵀy through a Cholesky
// factorization of XᵀX; the same factorization yields the coefficient
// covariance σ²(XᵀX)⁻¹ for the standard errors. There is no pseudo-inverse
// fallback: a rank-deficient design fails with ErrSingularMatrix so the
// caller learns about the data problem instead of receiving a silently
// regularized answer.
//
// When the intercept is enabled (the default) the coefficient vector starts
// with the intercept at index 0, followed by the feature coefficients in
// column order. Standard errors use the same ordering.
//
// Zero-feature (intercept-only) designs are not supported: mat.Dense cannot
// represent a zero-column matrix, and the intercept-only fit is just the
// sample mean with its standard error.
//
// An OLS value is single-owner: concurrent Fit calls require external
// synchronization. Predict and the accessors only read fitted state.
type OLS struct {
	model.BaseEstimator

	fitIntercept bool

	// Derived state, refreshed as a unit by each successful Fit.
	coefficients *mat.VecDense
	stdErrors    *mat.VecDense
	rSquared     float64
	nFeatures    int
}

// NewOLS creates an OLS estimator. The intercept is enabled unless
// WithFitIntercept(false) is given.
func NewOLS(opts ...Option) *OLS {
	o := &OLS{fitIntercept: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Fit estimates the coefficients from a design matrix X (n_samples ×
// n_features) and a column-vector response y, and returns the in-sample
// fitted values ŷ.
//
// On any failure the estimator's previous fitted state, if any, is left
// untouched; coefficients, standard errors and R² are only ever replaced
// together.
func (o *OLS) Fit(X, y mat.Matrix) (fitted *mat.VecDense, err error) {
	defer errors.Recover(&err, "OLS.Fit")

	n, k := X.Dims()
	ry, cy := y.Dims()

	if n == 0 || k == 0 {
		return nil, errors.NewModelError("OLS.Fit", "empty data", errors.ErrEmptyData)
	}
	if cy != 1 {
		return nil, errors.NewValueError("OLS.Fit", "y must be a column vector")
	}
	if ry != n {
		return nil, errors.NewDimensionError("OLS.Fit", n, ry, 0)
	}
	if err := errors.CheckMatrix("OLS.Fit: X", X); err != nil {
		return nil, err
	}
	if err := errors.CheckMatrix("OLS.Fit: y", y); err != nil {
		return nil, err
	}

	p := k
	if o.fitIntercept {
		p++
	}
	// σ² = RSS/(n−p) needs residual degrees of freedom.
	if n <= p {
		return nil, errors.NewModelError("OLS.Fit",
			fmt.Sprintf("need more than %d samples to estimate %d parameters, got %d", p, p, n),
			errors.ErrInsufficientData)
	}

	xAug := o.augment(X, n, k)

	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	// Factor XᵀX once; the factorization serves both the solve for β and
	// the inverse needed by the covariance. Factorization failure is
	// exactly the rank-deficient case.
	var xtx mat.SymDense
	xtx.SymOuterK(1, xAug.T())

	var chol mat.Cholesky
	if ok := chol.Factorize(&xtx); !ok {
		return nil, errors.NewModelError("OLS.Fit", "design matrix is rank deficient", errors.ErrSingularMatrix)
	}

	var xty mat.VecDense
	xty.MulVec(xAug.T(), yVec)

	beta := mat.NewVecDense(p, nil)
	if err := chol.SolveVecTo(beta, &xty); err != nil {
		return nil, errors.NewModelError("OLS.Fit", "normal equations solve failed", errors.ErrSingularMatrix)
	}

	yHat := mat.NewVecDense(n, nil)
	yHat.MulVec(xAug, beta)

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yVec.AtVec(i)
	}
	yMean /= float64(n)

	var rss, tss float64
	for i := 0; i < n; i++ {
		e := yVec.AtVec(i) - yHat.AtVec(i)
		rss += e * e
		d := yVec.AtVec(i) - yMean
		tss += d * d
	}

	sigma2 := rss / float64(n-p)

	var xtxInv mat.SymDense
	if err := chol.InverseTo(&xtxInv); err != nil {
		return nil, errors.NewModelError("OLS.Fit", "covariance inversion failed", errors.ErrSingularMatrix)
	}

	stdErrs := mat.NewVecDense(p, nil)
	for j := 0; j < p; j++ {
		stdErrs.SetVec(j, math.Sqrt(sigma2*xtxInv.At(j, j)))
	}

	// A constant response has no variance to explain. Coefficients and
	// standard errors are still valid, so report R² as NaN and warn rather
	// than failing the fit.
	rSquared := math.NaN()
	if tss == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("r_squared", "zero variance in y", math.NaN()))
	} else {
		rSquared = 1 - rss/tss
	}

	// Nothing above mutates the receiver; the fitted state flips over here
	// as a unit.
	o.nFeatures = k
	o.coefficients = beta
	o.stdErrors = stdErrs
	o.rSquared = rSquared
	o.SetFitted()

	return yHat, nil
}

// augment returns X, copied, with a leading all-ones column when the
// intercept is enabled. The caller's matrix is never written to.
func (o *OLS) augment(X mat.Matrix, n, k int) *mat.Dense {
	if !o.fitIntercept {
		out := mat.NewDense(n, k, nil)
		out.Copy(X)
		return out
	}

	out := mat.NewDense(n, k+1, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out.Set(i, 0, 1.0)
			for j := 0; j < k; j++ {
				out.Set(i, j+1, X.At(i, j))
			}
		}
	})
	return out
}

// Predict returns one predicted response per row of X. X must have the same
// feature count as the matrix passed to Fit; the intercept column, if any,
// is applied internally exactly as during fitting.
func (o *OLS) Predict(X mat.Matrix) (preds *mat.VecDense, err error) {
	defer errors.Recover(&err, "OLS.Predict")

	if !o.IsFitted() {
		return nil, errors.NewNotFittedError("OLS", "Predict")
	}

	n, k := X.Dims()
	if k != o.nFeatures {
		return nil, errors.NewDimensionError("OLS.Predict", o.nFeatures, k, 1)
	}

	var intercept float64
	offset := 0
	if o.fitIntercept {
		intercept = o.coefficients.AtVec(0)
		offset = 1
	}

	out := mat.NewVecDense(n, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := intercept
			for j := 0; j < k; j++ {
				pred += X.At(i, j) * o.coefficients.AtVec(j+offset)
			}
			out.SetVec(i, pred)
		}
	})

	return out, nil
}

// Coefficients returns a copy of the fitted coefficient vector. With the
// intercept enabled, index 0 is the intercept and the feature coefficients
// follow in column order.
func (o *OLS) Coefficients() ([]float64, error) {
	if !o.IsFitted() {
		return nil, errors.NewNotFittedError("OLS", "Coefficients")
	}
	out := make([]float64, o.coefficients.Len())
	for i := range out {
		out[i] = o.coefficients.AtVec(i)
	}
	return out, nil
}

// StandardErrors returns a copy of the estimated standard errors, ordered
// like Coefficients.
func (o *OLS) StandardErrors() ([]float64, error) {
	if !o.IsFitted() {
		return nil, errors.NewNotFittedError("OLS", "StandardErrors")
	}
	out := make([]float64, o.stdErrors.Len())
	for i := range out {
		out[i] = o.stdErrors.AtVec(i)
	}
	return out, nil
}

// RSquared returns the in-sample coefficient of determination from the last
// fit. It is NaN when the fitted response had zero variance.
func (o *OLS) RSquared() (float64, error) {
	if !o.IsFitted() {
		return 0, errors.NewNotFittedError("OLS", "RSquared")
	}
	return o.rSquared, nil
}

// Intercept returns the fitted intercept, or 0 when the estimator was built
// with WithFitIntercept(false).
func (o *OLS) Intercept() (float64, error) {
	if !o.IsFitted() {
		return 0, errors.NewNotFittedError("OLS", "Intercept")
	}
	if !o.fitIntercept {
		return 0, nil
	}
	return o.coefficients.AtVec(0), nil
}

// Score computes R² of the model's predictions on X against y.
func (o *OLS) Score(X, y mat.Matrix) (float64, error) {
	if !o.IsFitted() {
		return 0, errors.NewNotFittedError("OLS", "Score")
	}

	preds, err := o.Predict(X)
	if err != nil {
		return 0, err
	}

	n, _ := y.Dims()
	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	return metrics.R2Score(yVec, preds)
}

var _ model.Regressor = (*OLS)(nil)
