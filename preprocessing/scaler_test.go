package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler_FitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	r, c := scaled.Dims()
	for j := 0; j < c; j++ {
		var sum, sumSq float64
		for i := 0; i < r; i++ {
			sum += scaled.At(i, j)
		}
		mean := sum / float64(r)
		for i := 0; i < r; i++ {
			d := scaled.At(i, j) - mean
			sumSq += d * d
		}
		std := math.Sqrt(sumSq / float64(r))

		if math.Abs(mean) > 1e-10 {
			t.Errorf("column %d mean = %g after scaling, want 0", j, mean)
		}
		if math.Abs(std-1) > 1e-10 {
			t.Errorf("column %d std = %g after scaling, want 1", j, std)
		}
	}
}

func TestStandardScaler_InverseRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1.5, -2,
		0.5, 4,
		-3, 1,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}
	back, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform: %v", err)
	}

	if !mat.EqualApprox(X, back, 1e-10) {
		t.Error("inverse transform did not recover the original data")
	}
}

func TestStandardScaler_ConstantColumn(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{5, 5, 5})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}
	for i := 0; i < 3; i++ {
		if scaled.At(i, 0) != 0 {
			t.Errorf("constant column should center to 0, got %g", scaled.At(i, 0))
		}
	}
}

func TestStandardScaler_NoCenterNoScale(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{3, 7})

	scaler := NewStandardScaler(false, false)
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}
	if !mat.Equal(X, scaled) {
		t.Error("scaler with centering and scaling disabled must be the identity")
	}
}

func TestStandardScaler_Errors(t *testing.T) {
	scaler := NewStandardScalerDefault()

	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if _, err := scaler.Transform(X); err == nil {
		t.Error("expected not-fitted error from Transform")
	}
	if _, err := scaler.InverseTransform(X); err == nil {
		t.Error("expected not-fitted error from InverseTransform")
	}

	if err := scaler.Fit(X); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	wide := mat.NewDense(2, 3, nil)
	if _, err := scaler.Transform(wide); err == nil {
		t.Error("expected dimension error for mismatched feature count")
	}
}
