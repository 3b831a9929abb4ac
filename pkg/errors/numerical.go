package errors

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// NumericalInstabilityError reports NaN or Inf values found where finite
// IEEE doubles are required.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64 // a sample of the offending values
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("olskit: non-finite values detected in %s: [%s]", e.Operation, valStr)
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a
// stack trace attached.
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{Operation: operation, Values: values}
	return errors.WithStack(err)
}

// CheckVector returns a NumericalInstabilityError if v contains NaN or Inf.
func CheckVector(operation string, v interface {
	Len() int
	AtVec(int) float64
}) error {
	var bad []float64
	for i := 0; i < v.Len(); i++ {
		if x := v.AtVec(i); math.IsNaN(x) || math.IsInf(x, 0) {
			bad = append(bad, x)
			if len(bad) >= 10 {
				break
			}
		}
	}
	if len(bad) > 0 {
		return NewNumericalInstabilityError(operation, bad)
	}
	return nil
}

// CheckMatrix returns a NumericalInstabilityError if m contains NaN or Inf.
func CheckMatrix(operation string, m interface {
	Dims() (int, int)
	At(int, int) float64
}) error {
	rows, cols := m.Dims()
	var bad []float64
	for i := 0; i < rows && len(bad) == 0; i++ {
		for j := 0; j < cols; j++ {
			if x := m.At(i, j); math.IsNaN(x) || math.IsInf(x, 0) {
				bad = append(bad, x)
				if len(bad) >= 10 {
					break
				}
			}
		}
	}
	if len(bad) > 0 {
		return NewNumericalInstabilityError(operation, bad)
	}
	return nil
}
