// Package errors provides the error handling and warning system for GoLARS.
// It is inspired by scikit-learn's warning/exception hierarchy and emits
// structured error information suitable for zerolog.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// The default handler logs to standard error output.
		log.Printf("GoLARS-Warning: %v\n", w)
	}
	// zerolog warn function (lazily initialized to avoid a circular import)
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library.
// This controls how warnings such as ConvergenceWarning are processed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc sets the zerolog warning function (avoids a circular import).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning.
// When zerolog is available the warning is emitted as a structured log,
// otherwise the registered handler is used.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	scikit-learn compatible warning types
//
// ===========================================================================

// ConvergenceWarning is raised when an iterative algorithm stopped before
// reaching its target.
type ConvergenceWarning struct {
	Algorithm  string
	Iterations int
	Message    string
}

func (w *ConvergenceWarning) Error() string {
	if w.Message != "" {
		return fmt.Sprintf("%s stopped after %d iterations: %s", w.Algorithm, w.Iterations, w.Message)
	}
	return fmt.Sprintf("%s stopped after %d iterations before reaching its target.", w.Algorithm, w.Iterations)
}

// MarshalZerologObject adds structured warning information to a zerolog event.
func (w *ConvergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("algorithm", w.Algorithm).
		Int("iterations", w.Iterations).
		Str("message", w.Message).
		Str("type", "ConvergenceWarning")
}

// NewConvergenceWarning creates a new ConvergenceWarning.
func NewConvergenceWarning(algorithm string, iterations int, message string) *ConvergenceWarning {
	return &ConvergenceWarning{Algorithm: algorithm, Iterations: iterations, Message: message}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when Predict or a path accessor is called on a
// model that has not been fitted.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("golars: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when input data dimensions do not match the
// expected shape. The failing operation aborts without mutating any state.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("golars: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError is returned when an argument has an inappropriate or invalid value.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("golars: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// IllConditionedError is returned when a Cholesky insertion encounters a
// non-positive radicand, meaning the entering predictor is numerically
// collinear with the active set. The current run cannot continue; the caller
// must restart with different data or configuration.
type IllConditionedError struct {
	Op       string
	Radicand float64
}

func (e *IllConditionedError) Error() string {
	return fmt.Sprintf("golars: %s: ill-conditioned active set (Cholesky radicand %g <= 0); predictors are nearly collinear", e.Op, e.Radicand)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *IllConditionedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float64("radicand", e.Radicand).
		Str("type", "IllConditionedError")
}

// NewIllConditionedError creates a new IllConditionedError with a stack trace attached.
func NewIllConditionedError(op string, radicand float64) error {
	err := &IllConditionedError{Op: op, Radicand: radicand}
	return errors.WithStack(err)
}

// InterpolationError is returned when path interpolation is requested in an
// inconsistent state: fewer than two path points, or a target lambda outside
// the last two recorded values. A correctly guarded stopping check never
// produces this error.
type InterpolationError struct {
	Op            string
	PathLength    int
	Penultimate   float64
	Ultimate      float64
	DesiredLambda float64
}

func (e *InterpolationError) Error() string {
	if e.PathLength < 2 {
		return fmt.Sprintf("golars: %s: interpolation requires at least two path points, have %d", e.Op, e.PathLength)
	}
	return fmt.Sprintf("golars: %s: target lambda %g not between the last two path values [%g, %g]",
		e.Op, e.DesiredLambda, e.Ultimate, e.Penultimate)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *InterpolationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("path_length", e.PathLength).
		Float64("penultimate_lambda", e.Penultimate).
		Float64("ultimate_lambda", e.Ultimate).
		Float64("desired_lambda", e.DesiredLambda).
		Str("type", "InterpolationError")
}

// NewInterpolationError creates a new InterpolationError with a stack trace attached.
func NewInterpolationError(op string, pathLength int, penultimate, ultimate, desired float64) error {
	err := &InterpolationError{
		Op:            op,
		PathLength:    pathLength,
		Penultimate:   penultimate,
		Ultimate:      ultimate,
		DesiredLambda: desired,
	}
	return errors.WithStack(err)
}

// NumericalInstabilityError is returned when a computation produced NaN, Inf,
// or otherwise unusable values.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Iteration int
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
	return fmt.Sprintf("golars: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// NewNumericalInstabilityError creates a new NumericalInstabilityError.
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an empty dataset is passed.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when a matrix is singular.
	ErrSingularMatrix = New("singular matrix")
)
