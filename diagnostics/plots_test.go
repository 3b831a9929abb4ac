package diagnostics

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/olskit/olskit/dataset"
	"github.com/olskit/olskit/linear"
)

func fitExample(t *testing.T) (y, fitted, residuals *mat.VecDense) {
	t.Helper()

	X, yVec, _, err := dataset.MakeRegression(
		dataset.WithNSamples(50),
		dataset.WithNFeatures(1),
		dataset.WithCoefficients([]float64{2}),
		dataset.WithIntercept(1),
		dataset.WithNoise(0.5),
		dataset.WithSeed(3),
	)
	if err != nil {
		t.Fatalf("MakeRegression: %v", err)
	}

	model := linear.NewOLS()
	fittedVec, err := model.Fit(X, yVec)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	res := mat.NewVecDense(yVec.Len(), nil)
	for i := 0; i < yVec.Len(); i++ {
		res.SetVec(i, yVec.AtVec(i)-fittedVec.AtVec(i))
	}
	return yVec, fittedVec, res
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("plot file %s is empty", path)
	}
}

func TestResidualPlot(t *testing.T) {
	_, fitted, residuals := fitExample(t)

	path := filepath.Join(t.TempDir(), "residuals.png")
	if err := ResidualPlot(fitted, residuals, path); err != nil {
		t.Fatalf("ResidualPlot: %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestObservedVsFitted(t *testing.T) {
	y, fitted, _ := fitExample(t)

	path := filepath.Join(t.TempDir(), "observed_vs_fitted.png")
	if err := ObservedVsFitted(y, fitted, path); err != nil {
		t.Fatalf("ObservedVsFitted: %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestPlots_Validation(t *testing.T) {
	a := mat.NewVecDense(3, []float64{1, 2, 3})
	b := mat.NewVecDense(2, []float64{1, 2})

	if err := ResidualPlot(a, b, "unused.png"); err == nil {
		t.Error("expected dimension error for mismatched lengths")
	}
	if err := ObservedVsFitted(a, b, "unused.png"); err == nil {
		t.Error("expected dimension error for mismatched lengths")
	}
}
