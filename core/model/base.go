package model

// EstimatorState tracks whether an estimator has been trained.
type EstimatorState int

const (
	// NotFitted means Fit has not completed successfully yet.
	NotFitted EstimatorState = iota
	// Fitted means at least one Fit call completed successfully.
	Fitted
)

// BaseEstimator is embedded by every estimator to carry its fitted state.
// A failed Fit must never move the state to Fitted.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the estimator has been fitted successfully.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
