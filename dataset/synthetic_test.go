package dataset

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMakeRegression_Shapes(t *testing.T) {
	X, y, truth, err := MakeRegression(
		WithNSamples(50),
		WithNFeatures(3),
	)
	if err != nil {
		t.Fatalf("MakeRegression: %v", err)
	}

	r, c := X.Dims()
	if r != 50 || c != 3 {
		t.Errorf("X is %dx%d, want 50x3", r, c)
	}
	if y.Len() != 50 {
		t.Errorf("y has %d entries, want 50", y.Len())
	}
	if len(truth.Coefficients) != 3 {
		t.Errorf("ground truth has %d coefficients, want 3", len(truth.Coefficients))
	}
}

func TestMakeRegression_Reproducible(t *testing.T) {
	gen := func(seed uint64) (*mat.Dense, *mat.VecDense) {
		X, y, _, err := MakeRegression(WithNSamples(30), WithNFeatures(2), WithSeed(seed))
		if err != nil {
			t.Fatalf("MakeRegression: %v", err)
		}
		return X, y
	}

	x1, y1 := gen(42)
	x2, y2 := gen(42)
	if !mat.Equal(x1, x2) || !mat.Equal(y1, y2) {
		t.Error("same seed must reproduce the same draw")
	}

	x3, _ := gen(43)
	if mat.Equal(x1, x3) {
		t.Error("different seeds should not reproduce the same X")
	}
}

func TestMakeRegression_NoiselessIsExact(t *testing.T) {
	coefs := []float64{2, -3}
	X, y, truth, err := MakeRegression(
		WithNSamples(25),
		WithNFeatures(2),
		WithCoefficients(coefs),
		WithIntercept(1.5),
		WithNoise(0),
	)
	if err != nil {
		t.Fatalf("MakeRegression: %v", err)
	}

	for i := 0; i < y.Len(); i++ {
		want := truth.Intercept
		for j, b := range truth.Coefficients {
			want += X.At(i, j) * b
		}
		if math.Abs(y.AtVec(i)-want) > 1e-12 {
			t.Fatalf("y[%d] = %g, want exactly %g with zero noise", i, y.AtVec(i), want)
		}
	}
}

func TestMakeRegression_Validation(t *testing.T) {
	if _, _, _, err := MakeRegression(WithNSamples(0)); err == nil {
		t.Error("expected error for zero samples")
	}
	if _, _, _, err := MakeRegression(WithNFeatures(0)); err == nil {
		t.Error("expected error for zero features")
	}
	if _, _, _, err := MakeRegression(WithNoise(-1)); err == nil {
		t.Error("expected error for negative noise scale")
	}
	if _, _, _, err := MakeRegression(WithNFeatures(2), WithCoefficients([]float64{1})); err == nil {
		t.Error("expected error for coefficient/feature length mismatch")
	}
}
