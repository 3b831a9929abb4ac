// Package metrics provides regression evaluation metrics over gonum vectors.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/olskit/olskit/pkg/errors"
)

// MSE computes the mean squared error Σ(yTrue−yPred)²/n.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error Σ|yTrue−yPred|/n.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MAE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination 1 − RSS/TSS. A constant
// yTrue has zero total sum of squares and makes the score undefined, which
// is reported as an error.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2Score", n, yPred.Len(), 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)

		tss += (yTrueVal - yMean) * (yTrueVal - yMean)
		rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}

	return 1 - rss/tss, nil
}

// AdjustedR2Score computes R² adjusted for the number of predictors:
// 1 − (1−R²)(n−1)/(n−k−1). k counts predictors excluding the intercept.
func AdjustedR2Score(yTrue, yPred *mat.VecDense, k int) (float64, error) {
	n := yTrue.Len()
	if k < 0 {
		return 0, errors.NewValueError("AdjustedR2Score", "negative predictor count")
	}
	if n-k-1 <= 0 {
		return 0, errors.NewValueError("AdjustedR2Score", "not enough samples for the number of predictors")
	}

	r2, err := R2Score(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - (1-r2)*float64(n-1)/float64(n-k-1), nil
}
