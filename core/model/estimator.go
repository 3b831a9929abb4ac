// Package model defines the estimator interfaces shared across the library
// and the fitted-state bookkeeping embedded by every estimator.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is a trainable estimator. Fit returns the in-sample fitted values
// so a caller can inspect them without a second pass over the data.
type Fitter interface {
	Fit(X, y mat.Matrix) (*mat.VecDense, error)
}

// Predictor produces one prediction per input row.
type Predictor interface {
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// Scorer reports the coefficient of determination R² of the prediction.
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor is the full contract of a regression estimator.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}
