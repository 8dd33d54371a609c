// Package log defines standard attribute keys for path-solving operations.
//
// Using these keys consistently across the library enables filtering and
// analysis of logs produced during fitting, prediction, and path tracing.
// The keys follow a hierarchical naming convention (e.g. "model.name",
// "path.lambda").

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "Lars", "LassoLars"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "refit"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear_model", "metrics"
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of predictors (columns) in the dataset.
	FeaturesKey = "data.features"
)

// Path tracing.
// These attributes describe the state of the regularization path as it is
// traced from the empty model toward the least-squares solution.
const (
	// IterationKey is the current path iteration (step index).
	IterationKey = "training.iteration"

	// LambdaKey is the current value of the L1 penalty parameter.
	LambdaKey = "path.lambda"

	// GammaKey is the step length taken along the equiangular direction.
	GammaKey = "path.gamma"

	// ActiveKey is the current size of the active predictor set.
	ActiveKey = "path.active"

	// VariableKey is the predictor index involved in an activation or
	// deactivation event.
	VariableKey = "path.variable"

	// PathLengthKey is the total number of recorded path points.
	PathLengthKey = "path.length"
)

// Standard operation values for OperationKey.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationRefit   = "refit"
)
