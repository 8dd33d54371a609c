package linear_model

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/golars/core/model"
	"github.com/YuminosukeSato/golars/metrics"
	"github.com/YuminosukeSato/golars/pkg/errors"
	"github.com/YuminosukeSato/golars/pkg/log"
)

// larsEps is the correlation level below which the path is considered to
// have reached the least squares solution.
const larsEps = 1e-16

var _ model.PathEstimator = (*Lars)(nil)

// eventKind distinguishes the two breakpoint events along the path.
type eventKind int

const (
	eventActivate   eventKind = iota // a predictor enters the active set
	eventDeactivate                  // a predictor is kicked out (LASSO only)
)

// pathEvent is the event scheduled for the start of the next iteration.
// For eventActivate, index is the absolute predictor index; for
// eventDeactivate it is the position inside the active set.
type pathEvent struct {
	kind  eventKind
	index int
}

// Lars is a least angle regression estimator tracing the full
// regularization path. With the LASSO constraint enabled it enforces
// sign agreement between coefficients and correlations, dropping
// predictors whose coefficients would cross zero; with the Elastic-Net
// extension it solves the ridge-augmented problem.
//
// The estimator assumes centered data: no intercept is fitted.
type Lars struct {
	state *model.StateManager // State management (composition instead of embedding)

	// Hyperparameters
	useCholesky   bool    // Maintain a Cholesky factor instead of a materialized Gram matrix
	lasso         bool    // Enforce the LASSO sign constraint
	desiredLambda float64 // Penalty value at which the LASSO path stops
	elasticNet    bool    // Enable the ridge augmentation
	lambda2       float64 // Ridge strength
	copyX         bool    // Whether to copy input data

	// Model type and version info
	modelType string
	version   string

	// Data and derived state
	x         *mat.Dense
	y         *mat.VecDense
	nSamples  int
	nFeatures int
	cache     *gramCache
	active    *activeSet
	chol      *cholFactor

	// Recorded path
	betaPath   []*mat.VecDense
	lambdaPath []float64
}

// NewLars creates a new Lars estimator.
func NewLars(options ...LarsOption) *Lars {
	l := &Lars{
		state:       model.NewStateManager(),
		useCholesky: true,
		copyX:       true,
		modelType:   "Lars",
		version:     "1.0.0",
	}

	// Apply options
	for _, opt := range options {
		opt(l)
	}

	if l.lasso {
		l.modelType = "LassoLars"
	}

	return l
}

// NewLassoLars creates a Lars estimator with the LASSO constraint enabled,
// stopping the path at desiredLambda.
func NewLassoLars(desiredLambda float64, options ...LarsOption) *Lars {
	opts := append([]LarsOption{WithLasso(desiredLambda)}, options...)
	return NewLars(opts...)
}

// validateParams checks hyperparameter consistency before fitting.
func (l *Lars) validateParams() error {
	if l.lasso && l.desiredLambda < 0 {
		return errors.NewValueError("Lars.Fit", "desired lambda must be non-negative")
	}
	if l.elasticNet && l.lambda2 < 0 {
		return errors.NewValueError("Lars.Fit", "ridge strength lambda2 must be non-negative")
	}
	return nil
}

// Fit traces the regularization path for the given training data.
// X is the n×p predictor matrix and y the n×1 response. The recorded path
// is available through CoefPath and LambdaPath afterwards.
func (l *Lars) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Lars.Fit")

	if err := l.validateParams(); err != nil {
		return err
	}

	rows, cols := X.Dims()
	yRows, yCols := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.Wrap(errors.ErrEmptyData, "Lars.Fit")
	}
	if yCols != 1 {
		return errors.NewDimensionError("Lars.Fit", 1, yCols, 1)
	}
	if yRows != rows {
		return errors.NewDimensionError("Lars.Fit", rows, yRows, 0)
	}

	logger := log.GetLoggerWithName("linear_model.lars")
	logger.Info("fit started",
		log.ModelNameKey, l.modelType,
		log.OperationKey, log.OperationFit,
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
	)

	l.nSamples = rows
	l.nFeatures = cols

	if d, ok := X.(*mat.Dense); ok && !l.copyX {
		l.x = d
	} else {
		l.x = mat.DenseCopyOf(X)
	}

	l.y = mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		l.y.SetVec(i, y.At(i, 0))
	}

	ridge := 0.0
	if l.elasticNet {
		ridge = l.lambda2
	}
	l.cache = newGramCache(ridge)
	l.cache.computeXty(l.x, l.y)
	if !l.useCholesky {
		l.cache.computeGram(l.x)
	}

	l.active = newActiveSet(cols)
	l.chol = &cholFactor{}

	if err := l.run(logger); err != nil {
		return err
	}

	l.state.SetDimensions(cols, rows)
	l.state.SetFitted()

	logger.Info("fit completed",
		log.ModelNameKey, l.modelType,
		log.OperationKey, log.OperationFit,
		log.PathLengthKey, len(l.lambdaPath),
		log.ActiveKey, l.active.size(),
	)
	return nil
}

// Refit re-traces the path using the cached Gram quantities, without
// recomputing entries for untouched predictors. Use it after UpdateColumns
// or SetResponse to obtain the path for the modified problem.
func (l *Lars) Refit() (err error) {
	defer errors.Recover(&err, "Lars.Refit")

	if l.x == nil {
		return errors.NewNotFittedError(l.modelType, "Refit")
	}

	logger := log.GetLoggerWithName("linear_model.lars")
	logger.Info("refit started",
		log.ModelNameKey, l.modelType,
		log.OperationKey, log.OperationRefit,
	)

	l.active.reset()
	l.chol.reset()

	if err := l.run(logger); err != nil {
		return err
	}
	l.state.SetFitted()
	return nil
}

// RefitLambda enables the LASSO constraint with a new target penalty and
// re-traces the path from the cached Gram quantities.
func (l *Lars) RefitLambda(desiredLambda float64) error {
	if desiredLambda < 0 {
		return errors.NewValueError("Lars.RefitLambda", "desired lambda must be non-negative")
	}
	l.lasso = true
	l.desiredLambda = desiredLambda
	return l.Refit()
}

// run executes the path-tracing loop on the prepared caches.
func (l *Lars) run(logger log.Logger) error {
	n := l.nSamples
	p := l.nFeatures

	beta := mat.NewVecDense(p, nil)
	yHat := mat.NewVecDense(n, nil)
	yHatDir := mat.NewVecDense(n, nil)
	var xtyHat mat.VecDense

	l.betaPath = nil
	l.lambdaPath = nil

	corr := mat.VecDenseCopyOf(l.cache.xty)
	maxCorr, firstIdx := vecAbsMax(corr)
	l.appendPath(beta, maxCorr)

	// A target at or above the largest correlation is satisfied by the
	// all-zero solution already recorded.
	if l.lasso && maxCorr <= l.desiredLambda {
		return nil
	}

	debugEnabled := logger.Enabled(context.Background(), log.LevelDebug)
	next := pathEvent{kind: eventActivate, index: firstIdx}
	interpolated := false
	iteration := 0

	// The size guard alone would drop a kick-out scheduled in the same step
	// that activated the last predictor, so a pending deactivation keeps the
	// loop running even with every predictor active.
	for (l.active.size() < p || next.kind == eventDeactivate) && maxCorr > larsEps {
		iteration++

		if next.kind == eventDeactivate {
			if l.useCholesky {
				l.chol.delete(next.index)
			}
			kicked := l.active.at(next.index)
			l.active.deactivate(next.index)
			// The kicked coefficient sits at its zero crossing; pin it.
			beta.SetVec(kicked, 0)
			if debugEnabled {
				logger.Debug("predictor left the active set",
					log.IterationKey, iteration,
					log.VariableKey, kicked,
					log.ActiveKey, l.active.size(),
				)
			}
			if l.active.size() == 0 {
				// Restart from the most correlated predictor.
				_, idx := vecAbsMax(corr)
				next = pathEvent{kind: eventActivate, index: idx}
				continue
			}
		} else {
			idx := next.index
			if l.useCholesky {
				if err := l.insertCholesky(idx); err != nil {
					return err
				}
			}
			l.active.activate(idx)
			if debugEnabled {
				logger.Debug("predictor entered the active set",
					log.IterationKey, iteration,
					log.VariableKey, idx,
					log.ActiveKey, l.active.size(),
				)
			}
		}

		k := l.active.size()

		// Correlation signs over the active set. A zero correlation is
		// treated as positive so the sign is always well defined.
		s := mat.NewVecDense(k, nil)
		for i := 0; i < k; i++ {
			if corr.AtVec(l.active.at(i)) < 0 {
				s.SetVec(i, -1)
			} else {
				s.SetVec(i, 1)
			}
		}

		betaDir, normalization, err := l.equiangularDirection(s)
		if err != nil {
			return err
		}

		// Direction in response space.
		yHatDir.Zero()
		for i := 0; i < k; i++ {
			yHatDir.AddScaledVec(yHatDir, betaDir.AtVec(i), l.x.ColView(l.active.at(i)))
		}

		// Entry test: the smallest positive step at which an inactive
		// predictor's correlation catches up with the active set.
		gamma := maxCorr / normalization
		next = pathEvent{kind: eventActivate, index: -1}
		if k < p {
			for idx := 0; idx < p; idx++ {
				if l.active.contains(idx) {
					continue
				}
				dirCorr := mat.Dot(l.x.ColView(idx), yHatDir)
				val1 := (maxCorr - corr.AtVec(idx)) / (normalization - dirCorr)
				val2 := (maxCorr + corr.AtVec(idx)) / (normalization + dirCorr)
				// NaN and infinities from degenerate denominators fail
				// both comparisons and are skipped.
				if val1 > 0 && val1 < gamma {
					gamma = val1
					next = pathEvent{kind: eventActivate, index: idx}
				}
				if val2 > 0 && val2 < gamma {
					gamma = val2
					next = pathEvent{kind: eventActivate, index: idx}
				}
			}
		}

		// LASSO bound: stop earlier if an active coefficient would cross
		// zero, and kick it out at the start of the next iteration.
		if l.lasso {
			bound := math.MaxFloat64
			kickPos := -1
			for i := 0; i < k; i++ {
				val := -beta.AtVec(l.active.at(i)) / betaDir.AtVec(i)
				if val > 0 && val < bound {
					bound = val
					kickPos = i
				}
			}
			if bound < gamma {
				gamma = bound
				next = pathEvent{kind: eventDeactivate, index: kickPos}
			}
		}

		// Take the step.
		yHat.AddScaledVec(yHat, gamma, yHatDir)
		for i := 0; i < k; i++ {
			ai := l.active.at(i)
			beta.SetVec(ai, beta.AtVec(ai)+gamma*betaDir.AtVec(i))
		}

		// Residual correlations and the new penalty level.
		xtyHat.MulVec(l.x.T(), yHat)
		corr.SubVec(l.cache.xty, &xtyHat)
		maxCorr -= gamma * normalization
		l.appendPath(beta, maxCorr)

		if debugEnabled {
			logger.Debug("path step",
				log.IterationKey, iteration,
				log.GammaKey, gamma,
				log.LambdaKey, maxCorr,
				log.ActiveKey, k,
			)
		}

		if l.lasso && maxCorr <= l.desiredLambda {
			if err := l.interpolate(maxCorr); err != nil {
				return err
			}
			interpolated = true
			break
		}

		// No admissible event remains: the step above was the full least
		// squares step and only floating point residue keeps maxCorr
		// above the termination level.
		if next.kind == eventActivate && next.index < 0 {
			break
		}
	}

	final := l.betaPath[len(l.betaPath)-1]
	if err := errors.CheckVector("Lars.run", final, iteration); err != nil {
		return err
	}

	if l.lasso && !interpolated && maxCorr > l.desiredLambda {
		errors.Warn(errors.NewConvergenceWarning(l.modelType, iteration,
			fmt.Sprintf("path ended at lambda %g above the requested %g", maxCorr, l.desiredLambda)))
	}
	return nil
}

// insertCholesky grows the Cholesky factor for the entering predictor idx.
func (l *Lars) insertCholesky(idx int) error {
	k := l.active.size()
	newCol := l.x.ColView(idx)

	sqNorm := mat.Dot(newCol, newCol)
	if l.elasticNet {
		sqNorm += l.lambda2
	}

	var gramCol *mat.VecDense
	if k > 0 {
		gramCol = mat.NewVecDense(k, nil)
		for i := 0; i < k; i++ {
			gramCol.SetVec(i, mat.Dot(l.x.ColView(l.active.at(i)), newCol))
		}
	}
	return l.chol.insert(sqNorm, gramCol)
}

// equiangularDirection computes the signed, normalized step direction over
// the active set for the given sign vector, together with the normalization
// constant (the rate at which the shared correlation decreases per unit
// step).
func (l *Lars) equiangularDirection(s *mat.VecDense) (*mat.VecDense, float64, error) {
	k := s.Len()

	if l.useCholesky {
		// RᵀR is the active Gram matrix; solving against s directly
		// yields the sign-embedded direction, so no separate sign
		// application is needed in this branch.
		d, err := l.chol.equiangular(s)
		if err != nil {
			return nil, 0, err
		}
		normalization := 1.0 / math.Sqrt(mat.Dot(s, d))
		d.ScaleVec(normalization, d)
		return d, normalization, nil
	}

	// Direct solve on the sign-conjugated active Gram matrix:
	// (S Gram_active S) u = 1 with S = diag(s).
	ga := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := l.cache.at(l.active.at(i), l.active.at(j))
			ga.Set(i, j, v*s.AtVec(i)*s.AtVec(j))
		}
	}

	ones := mat.NewVecDense(k, nil)
	for i := 0; i < k; i++ {
		ones.SetVec(i, 1)
	}

	var u mat.VecDense
	if err := u.SolveVec(ga, ones); err != nil {
		return nil, 0, errors.Wrap(errors.ErrSingularMatrix, "Lars.equiangularDirection")
	}

	normalization := 1.0 / math.Sqrt(floats.Sum(u.RawVector().Data))
	d := mat.NewVecDense(k, nil)
	for i := 0; i < k; i++ {
		d.SetVec(i, normalization*u.AtVec(i)*s.AtVec(i))
	}
	return d, normalization, nil
}

// interpolate replaces the last path entry with the exact solution at the
// requested penalty, which lies between the last two recorded breakpoints.
func (l *Lars) interpolate(ultimate float64) error {
	plen := len(l.lambdaPath)
	if plen < 2 {
		return errors.NewInterpolationError("Lars.interpolate", plen, 0, ultimate, l.desiredLambda)
	}
	penultimate := l.lambdaPath[plen-2]
	if l.desiredLambda > penultimate || l.desiredLambda < ultimate {
		return errors.NewInterpolationError("Lars.interpolate", plen, penultimate, ultimate, l.desiredLambda)
	}

	interp := 1.0
	if penultimate != ultimate {
		interp = (penultimate - l.desiredLambda) / (penultimate - ultimate)
	}

	prev := l.betaPath[plen-2]
	last := l.betaPath[plen-1]
	for i := 0; i < last.Len(); i++ {
		last.SetVec(i, (1-interp)*prev.AtVec(i)+interp*last.AtVec(i))
	}
	l.lambdaPath[plen-1] = l.desiredLambda
	return nil
}

// appendPath records a deep copy of beta together with the penalty level.
func (l *Lars) appendPath(beta *mat.VecDense, lambda float64) {
	l.betaPath = append(l.betaPath, mat.VecDenseCopyOf(beta))
	l.lambdaPath = append(l.lambdaPath, lambda)
}

// vecAbsMax returns the largest absolute entry and its index; the first
// occurrence wins ties.
func vecAbsMax(v *mat.VecDense) (float64, int) {
	best := math.Inf(-1)
	idx := -1
	for i := 0; i < v.Len(); i++ {
		if a := math.Abs(v.AtVec(i)); a > best {
			best = a
			idx = i
		}
	}
	return best, idx
}

// UpdateColumns replaces predictor columns in place and refreshes every
// cached quantity involving them. indices are absolute predictor indices
// and newColumns holds one replacement column per index, in order.
// Call Refit afterwards to obtain the path for the modified problem.
func (l *Lars) UpdateColumns(indices []int, newColumns mat.Matrix) error {
	if l.x == nil {
		return errors.NewNotFittedError(l.modelType, "UpdateColumns")
	}

	rows, cols := newColumns.Dims()
	if rows != l.nSamples {
		return errors.NewDimensionError("Lars.UpdateColumns", l.nSamples, rows, 0)
	}
	if cols != len(indices) {
		return errors.NewDimensionError("Lars.UpdateColumns", len(indices), cols, 1)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= l.nFeatures {
			return errors.NewValueError("Lars.UpdateColumns",
				fmt.Sprintf("predictor index %d out of range [0, %d)", idx, l.nFeatures))
		}
	}

	buf := make([]float64, rows)
	for i, idx := range indices {
		mat.Col(buf, i, newColumns)
		l.x.SetCol(idx, buf)
	}
	l.cache.updateColumns(l.x, l.y, indices)
	return nil
}

// SetResponse replaces the response vector and recomputes the correlation
// vector; the Gram matrix is untouched. Call Refit afterwards.
func (l *Lars) SetResponse(y mat.Matrix) error {
	if l.x == nil {
		return errors.NewNotFittedError(l.modelType, "SetResponse")
	}

	rows, cols := y.Dims()
	if cols != 1 {
		return errors.NewDimensionError("Lars.SetResponse", 1, cols, 1)
	}
	if rows != l.nSamples {
		return errors.NewDimensionError("Lars.SetResponse", l.nSamples, rows, 0)
	}

	for i := 0; i < rows; i++ {
		l.y.SetVec(i, y.At(i, 0))
	}
	l.cache.computeXty(l.x, l.y)
	return nil
}

// CoefPath returns deep copies of the coefficient vectors recorded along the
// path, ordered from the all-zero model onward.
func (l *Lars) CoefPath() ([]*mat.VecDense, error) {
	if !l.state.IsFitted() {
		return nil, errors.NewNotFittedError(l.modelType, "CoefPath")
	}
	out := make([]*mat.VecDense, len(l.betaPath))
	for i, b := range l.betaPath {
		out[i] = mat.VecDenseCopyOf(b)
	}
	return out, nil
}

// LambdaPath returns a copy of the penalty values at each recorded
// breakpoint, strictly decreasing from the largest absolute correlation.
func (l *Lars) LambdaPath() ([]float64, error) {
	if !l.state.IsFitted() {
		return nil, errors.NewNotFittedError(l.modelType, "LambdaPath")
	}
	out := make([]float64, len(l.lambdaPath))
	copy(out, l.lambdaPath)
	return out, nil
}

// Coef returns a copy of the final coefficient vector on the path.
func (l *Lars) Coef() (*mat.VecDense, error) {
	if !l.state.IsFitted() {
		return nil, errors.NewNotFittedError(l.modelType, "Coef")
	}
	return mat.VecDenseCopyOf(l.betaPath[len(l.betaPath)-1]), nil
}

// ActiveSet returns the indices of the predictors active at the end of the
// path, in activation order.
func (l *Lars) ActiveSet() ([]int, error) {
	if !l.state.IsFitted() {
		return nil, errors.NewNotFittedError(l.modelType, "ActiveSet")
	}
	return l.active.ordered(), nil
}

// Predict computes predictions X·coef for the given predictor matrix using
// the final path coefficients.
func (l *Lars) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !l.state.IsFitted() {
		return nil, errors.NewNotFittedError(l.modelType, "Predict")
	}

	_, cols := X.Dims()
	if cols != l.nFeatures {
		return nil, errors.NewDimensionError("Lars.Predict", l.nFeatures, cols, 1)
	}

	coef := l.betaPath[len(l.betaPath)-1]
	var pred mat.Dense
	pred.Mul(X, coef)
	return &pred, nil
}

// Score returns the coefficient of determination R² of the prediction.
func (l *Lars) Score(X, y mat.Matrix) (float64, error) {
	pred, err := l.Predict(X)
	if err != nil {
		return 0, err
	}

	rows, cols := y.Dims()
	if cols != 1 {
		return 0, errors.NewDimensionError("Lars.Score", 1, cols, 1)
	}
	predRows, _ := pred.Dims()
	if rows != predRows {
		return 0, errors.NewDimensionError("Lars.Score", predRows, rows, 0)
	}

	yTrue := mat.NewVecDense(rows, nil)
	yPred := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yTrue.SetVec(i, y.At(i, 0))
		yPred.SetVec(i, pred.At(i, 0))
	}
	return metrics.R2Score(yTrue, yPred)
}

// IsFitted returns whether the model has been fitted.
func (l *Lars) IsFitted() bool {
	return l.state.IsFitted()
}

// GetParams returns the model's hyperparameters.
func (l *Lars) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"use_cholesky":   l.useCholesky,
		"lasso":          l.lasso,
		"desired_lambda": l.desiredLambda,
		"elastic_net":    l.elasticNet,
		"lambda2":        l.lambda2,
		"copy_x":         l.copyX,
	}
}

// SetParams sets the model's hyperparameters.
func (l *Lars) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "use_cholesky":
			v, ok := value.(bool)
			if !ok {
				return errors.NewValueError("Lars.SetParams", "use_cholesky must be a bool")
			}
			l.useCholesky = v
		case "lasso":
			v, ok := value.(bool)
			if !ok {
				return errors.NewValueError("Lars.SetParams", "lasso must be a bool")
			}
			l.lasso = v
		case "desired_lambda":
			v, ok := toFloat(value)
			if !ok {
				return errors.NewValueError("Lars.SetParams", "desired_lambda must be a number")
			}
			l.desiredLambda = v
		case "elastic_net":
			v, ok := value.(bool)
			if !ok {
				return errors.NewValueError("Lars.SetParams", "elastic_net must be a bool")
			}
			l.elasticNet = v
		case "lambda2":
			v, ok := toFloat(value)
			if !ok {
				return errors.NewValueError("Lars.SetParams", "lambda2 must be a number")
			}
			l.lambda2 = v
		case "copy_x":
			v, ok := value.(bool)
			if !ok {
				return errors.NewValueError("Lars.SetParams", "copy_x must be a bool")
			}
			l.copyX = v
		default:
			return errors.NewValueError("Lars.SetParams", fmt.Sprintf("unknown parameter: %s", key))
		}
	}
	return nil
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// ExportWeights returns the fitted model as serializable weights. Only the
// final path coefficients are exported; the breakpoints before it are not
// preserved.
func (l *Lars) ExportWeights() (*model.ModelWeights, error) {
	if !l.state.IsFitted() {
		return nil, errors.NewNotFittedError(l.modelType, "ExportWeights")
	}

	final := l.betaPath[len(l.betaPath)-1]
	coef := make([]float64, final.Len())
	for i := range coef {
		coef[i] = final.AtVec(i)
	}

	return &model.ModelWeights{
		ModelType:       l.modelType,
		Version:         l.version,
		Coefficients:    coef,
		Hyperparameters: l.GetParams(),
		Metadata: map[string]interface{}{
			"final_lambda": l.lambdaPath[len(l.lambdaPath)-1],
			"n_samples":    l.nSamples,
			"n_features":   l.nFeatures,
		},
		IsFitted: true,
	}, nil
}

// ImportWeights restores a fitted model from exported weights. The path
// collapses to the single exported solution.
func (l *Lars) ImportWeights(weights *model.ModelWeights) error {
	if weights == nil {
		return errors.NewValueError("Lars.ImportWeights", "weights must not be nil")
	}
	if err := weights.Validate(); err != nil {
		return errors.Wrap(err, "Lars.ImportWeights")
	}
	if weights.ModelType != l.modelType {
		return errors.NewValueError("Lars.ImportWeights",
			fmt.Sprintf("model type mismatch: expected %s, got %s", l.modelType, weights.ModelType))
	}

	if err := l.SetParams(weights.Hyperparameters); err != nil {
		return err
	}

	p := len(weights.Coefficients)
	beta := mat.NewVecDense(p, nil)
	for i, c := range weights.Coefficients {
		beta.SetVec(i, c)
	}

	lambda := 0.0
	if v, ok := weights.Metadata["final_lambda"]; ok {
		if f, ok := toFloat(v); ok {
			lambda = f
		}
	}

	l.nFeatures = p
	l.betaPath = []*mat.VecDense{beta}
	l.lambdaPath = []float64{lambda}
	l.active = newActiveSet(p)
	for i := 0; i < p; i++ {
		if beta.AtVec(i) != 0 {
			l.active.activate(i)
		}
	}
	l.state.SetDimensions(p, 0)
	l.state.SetFitted()
	return nil
}

// Clone returns an unfitted copy with the same hyperparameters.
func (l *Lars) Clone() *Lars {
	return &Lars{
		state:         model.NewStateManager(),
		useCholesky:   l.useCholesky,
		lasso:         l.lasso,
		desiredLambda: l.desiredLambda,
		elasticNet:    l.elasticNet,
		lambda2:       l.lambda2,
		copyX:         l.copyX,
		modelType:     l.modelType,
		version:       l.version,
	}
}

// String returns a short description of the estimator.
func (l *Lars) String() string {
	return fmt.Sprintf("%s(cholesky=%t, lasso=%t, desired_lambda=%g, elastic_net=%t, lambda2=%g, fitted=%t)",
		l.modelType, l.useCholesky, l.lasso, l.desiredLambda, l.elasticNet, l.lambda2, l.state.IsFitted())
}
