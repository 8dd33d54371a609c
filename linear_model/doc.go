// Package linear_model provides least angle regression (LARS) and its
// LASSO and Elastic-Net variants as scikit-learn compatible estimators.
//
// The estimators trace the full regularization path: starting from the
// all-zero coefficient vector they repeatedly move along the equiangular
// direction of the active predictors, recording the coefficient vector and
// the penalty value at every breakpoint until the least squares solution
// (or a requested penalty level) is reached.
//
// Basic usage:
//
//	lars := linear_model.NewLassoLars(0.1)
//	if err := lars.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	pred, err := lars.Predict(XTest)
package linear_model
