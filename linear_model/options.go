package linear_model

// LarsOption is a function that configures a Lars estimator
type LarsOption func(*Lars)

// WithCholesky sets whether the active Gram submatrix is maintained through
// an incrementally updated Cholesky factor instead of a materialized Gram
// matrix. Enabled by default.
func WithCholesky(use bool) LarsOption {
	return func(l *Lars) {
		l.useCholesky = use
	}
}

// WithLasso enables the LASSO sign constraint and sets the penalty value at
// which the path stops. The final path entry is interpolated to sit exactly
// at desiredLambda.
func WithLasso(desiredLambda float64) LarsOption {
	return func(l *Lars) {
		l.lasso = true
		l.desiredLambda = desiredLambda
	}
}

// WithElasticNet enables the ridge augmentation with strength lambda2.
// The solver then behaves as LARS/LASSO on the ridge-augmented problem.
func WithElasticNet(lambda2 float64) LarsOption {
	return func(l *Lars) {
		l.elasticNet = true
		l.lambda2 = lambda2
	}
}

// WithCopyX sets whether to copy the X matrix
func WithCopyX(copy bool) LarsOption {
	return func(l *Lars) {
		l.copyX = copy
	}
}
