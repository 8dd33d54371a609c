// Package golars provides least angle regression (LARS), LASSO, and
// Elastic-Net path solvers for Go, with a scikit-learn-like API built on
// gonum.
//
// GoLARS traces the full regularization path of a sparse linear model: the
// sequence of coefficient vectors and penalty values at every breakpoint
// between the all-zero model and the least squares solution. Predictor
// columns and the response can be swapped in place and the path re-traced
// from cached quantities, which keeps iterated fitting cheap.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/golars/linear_model"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{1, 0, 0, 1, 1, 1, 0.5, 0.2})
//	    y := mat.NewDense(4, 1, []float64{1.2, -0.8, 0.4, 0.5})
//
//	    lasso := linear_model.NewLassoLars(0.1)
//	    if err := lasso.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    coef, _ := lasso.Coef()
//	    fmt.Println(mat.Formatted(coef))
//	}
//
// # Packages
//
//   - linear_model: the Lars estimator and its LASSO/Elastic-Net variants
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - core/model: estimator interfaces, state management, weight export
//   - pkg/errors: structured errors and the warning system
//   - pkg/log: structured logging for path events
//
// The estimators assume centered data and fit no intercept.
package golars
