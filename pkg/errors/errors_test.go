package errors

import (
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("OLS", "Predict")

	if !strings.Contains(err.Error(), "OLS") || !strings.Contains(err.Error(), "Predict") {
		t.Errorf("message should name the model and method: %q", err.Error())
	}

	var notFitted *NotFittedError
	if !As(err, &notFitted) {
		t.Fatal("As should find the NotFittedError in the chain")
	}
	if notFitted.ModelName != "OLS" || notFitted.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", notFitted)
	}
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("OLS.Fit", 10, 8, 0)

	msg := err.Error()
	if !strings.Contains(msg, "Expected 10") || !strings.Contains(msg, "got 8") {
		t.Errorf("message should carry expected and got: %q", msg)
	}
	if !strings.Contains(msg, "rows") {
		t.Errorf("axis 0 should be reported as rows: %q", msg)
	}

	err = NewDimensionError("OLS.Predict", 2, 3, 1)
	if !strings.Contains(err.Error(), "features") {
		t.Errorf("axis 1 should be reported as features: %q", err.Error())
	}
}

func TestModelError_Sentinels(t *testing.T) {
	cases := []struct {
		name     string
		sentinel error
	}{
		{"singular", ErrSingularMatrix},
		{"insufficient", ErrInsufficientData},
		{"empty", ErrEmptyData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewModelError("OLS.Fit", "some condition", tc.sentinel)
			if !Is(err, tc.sentinel) {
				t.Errorf("Is(err, sentinel) = false for %v", err)
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Fatal("As should find the ModelError")
			}
			if modelErr.Op != "OLS.Fit" {
				t.Errorf("Op = %q, want OLS.Fit", modelErr.Op)
			}
		})
	}
}

func TestValueError(t *testing.T) {
	err := NewValueError("OLS.Fit", "y must be a column vector")
	if !strings.Contains(err.Error(), "y must be a column vector") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(NewModelError("OLS.Fit", "rank deficient", ErrSingularMatrix), "outer context")
	if !Is(err, ErrSingularMatrix) {
		t.Error("wrapping must preserve the sentinel in the chain")
	}
}

func TestWarningHandler(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(w error) {})

	warning := NewUndefinedMetricWarning("r_squared", "zero variance in y", 0)
	Warn(warning)

	if len(got) != 1 {
		t.Fatalf("handler received %d warnings, want 1", len(got))
	}
	var undefined *UndefinedMetricWarning
	if !As(got[0], &undefined) {
		t.Fatalf("unexpected warning type: %T", got[0])
	}
	if undefined.Metric != "r_squared" {
		t.Errorf("Metric = %q, want r_squared", undefined.Metric)
	}
}

func TestZerologSinkTakesPrecedence(t *testing.T) {
	var handlerHits, sinkHits int
	SetWarningHandler(func(w error) { handlerHits++ })
	SetZerologWarnFunc(func(w error) { sinkHits++ })
	defer func() {
		SetZerologWarnFunc(nil)
		SetWarningHandler(func(w error) {})
	}()

	Warn(New("something"))

	if sinkHits != 1 || handlerHits != 0 {
		t.Errorf("sink hits = %d, handler hits = %d; want 1 and 0", sinkHits, handlerHits)
	}
}
