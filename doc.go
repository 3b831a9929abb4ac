// Package olskit implements ordinary least squares regression from first
// principles, including the inferential statistics that minimal
// implementations usually drop: per-coefficient standard errors and R².
//
// The library follows the initialize-fit-predict convention familiar from
// scikit-learn. The estimator itself lives in the linear package; everything
// else is supporting material around it.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/olskit/olskit/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
//
//	    model := linear.NewOLS()
//	    if _, err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    coefs, _ := model.Coefficients()
//	    fmt.Println("intercept and slope:", coefs)
//	}
//
// # Packages
//
//   - linear: the OLS estimator (normal equations, standard errors, R²)
//   - metrics: regression metrics (MSE, RMSE, MAE, R², adjusted R²)
//   - dataset: seeded synthetic regression data with known ground truth
//   - preprocessing: StandardScaler for caller-side feature scaling
//   - diagnostics: residual and fit plots rendered with gonum/plot
//   - core/model: estimator interfaces and fitted-state tracking
//   - core/parallel: chunked row parallelism used by the hot loops
//   - pkg/errors, pkg/log: structured errors, warnings and logging
//
// The estimator performs no standardization or centering of its own; scale
// inputs with preprocessing.StandardScaler first if the design calls for it.
package olskit
