package linear

// Option configures an OLS estimator at construction time.
type Option func(*OLS)

// WithFitIntercept sets whether the model includes an intercept term. The
// policy is fixed for the lifetime of the estimator so that the column
// augmentation applied during Fit and Predict always agrees.
func WithFitIntercept(fit bool) Option {
	return func(o *OLS) {
		o.fitIntercept = fit
	}
}
