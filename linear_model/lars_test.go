package linear_model

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/golars/pkg/errors"
)

// singleFixture is a one-predictor problem with an exactly known path:
// Xᵀy = 28, so the path is [(0, 28), (2, 0)].
func singleFixture() (*mat.Dense, *mat.Dense) {
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{2, 4, 6})
	return x, y
}

// kickOutFixture is built so the LASSO path must drop a predictor: the
// first variable enters with the largest positive correlation (16.6) but
// its least squares coefficient is negative (-0.2), forcing a zero
// crossing along the path. y lies in the column span, so the full least
// squares solution is exactly (-0.2, 3.1, 2.9).
func kickOutFixture() (*mat.Dense, *mat.Dense) {
	x := mat.NewDense(4, 3, []float64{
		2, 1, 1,
		1, 1, 0,
		1, 0, 1,
		1, 0, 0,
	})
	y := mat.NewDense(4, 1, []float64{5.6, 2.9, 2.7, -0.2})
	return x, y
}

// spanFixture is a 5×3 problem whose response is exactly X·(1.5, -2, 0.5).
func spanFixture() (*mat.Dense, *mat.Dense, []float64) {
	x := mat.NewDense(5, 3, []float64{
		1, 0, 0.5,
		0, 1, 0.5,
		1, 1, 0,
		0.5, 0.2, 1,
		0.3, 0.8, 0.6,
	})
	target := []float64{1.5, -2, 0.5}
	y := mat.NewDense(5, 1, nil)
	y.Mul(x, mat.NewVecDense(3, target))
	return x, y, target
}

func TestLarsSinglePredictor(t *testing.T) {
	x, y := singleFixture()

	lars := NewLars()
	if err := lars.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	lambdas, err := lars.LambdaPath()
	if err != nil {
		t.Fatal(err)
	}
	if len(lambdas) != 2 {
		t.Fatalf("path length = %d, want 2", len(lambdas))
	}
	if math.Abs(lambdas[0]-28) > 1e-12 {
		t.Errorf("initial lambda = %g, want 28", lambdas[0])
	}
	if math.Abs(lambdas[1]) > 1e-12 {
		t.Errorf("final lambda = %g, want 0", lambdas[1])
	}

	coef, err := lars.Coef()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(coef.AtVec(0)-2) > 1e-12 {
		t.Errorf("coef = %g, want 2", coef.AtVec(0))
	}
}

func TestLarsRecoversLeastSquares(t *testing.T) {
	x, y, target := spanFixture()

	for _, useCholesky := range []bool{true, false} {
		lars := NewLars(WithCholesky(useCholesky))
		if err := lars.Fit(x, y); err != nil {
			t.Fatalf("cholesky=%t: %v", useCholesky, err)
		}

		coef, err := lars.Coef()
		if err != nil {
			t.Fatal(err)
		}
		for i, want := range target {
			if math.Abs(coef.AtVec(i)-want) > 1e-6 {
				t.Errorf("cholesky=%t: coef(%d) = %g, want %g", useCholesky, i, coef.AtVec(i), want)
			}
		}

		score, err := lars.Score(x, y)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(score-1) > 1e-9 {
			t.Errorf("cholesky=%t: score = %g, want 1", useCholesky, score)
		}
	}
}

func TestLarsBranchesAgree(t *testing.T) {
	x, y := kickOutFixture()

	chol := NewLassoLars(0)
	if err := chol.Fit(x, y); err != nil {
		t.Fatal(err)
	}
	direct := NewLassoLars(0, WithCholesky(false))
	if err := direct.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	lc, _ := chol.LambdaPath()
	ld, _ := direct.LambdaPath()
	if len(lc) != len(ld) {
		t.Fatalf("path lengths differ: %d vs %d", len(lc), len(ld))
	}
	for i := range lc {
		if math.Abs(lc[i]-ld[i]) > 1e-8 {
			t.Errorf("lambda(%d): %g vs %g", i, lc[i], ld[i])
		}
	}

	bc, _ := chol.CoefPath()
	bd, _ := direct.CoefPath()
	for i := range bc {
		for j := 0; j < bc[i].Len(); j++ {
			if math.Abs(bc[i].AtVec(j)-bd[i].AtVec(j)) > 1e-8 {
				t.Errorf("beta(%d)(%d): %g vs %g", i, j, bc[i].AtVec(j), bd[i].AtVec(j))
			}
		}
	}
}

func TestLassoLarsInterpolation(t *testing.T) {
	x, y := singleFixture()

	// The target 14 sits halfway between the breakpoints 28 and 0, so the
	// interpolated coefficient is exactly half the least squares value.
	lasso := NewLassoLars(14)
	if err := lasso.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	lambdas, _ := lasso.LambdaPath()
	if len(lambdas) != 2 {
		t.Fatalf("path length = %d, want 2", len(lambdas))
	}
	if lambdas[1] != 14 {
		t.Errorf("final lambda = %g, want exactly 14", lambdas[1])
	}

	coef, _ := lasso.Coef()
	if math.Abs(coef.AtVec(0)-1) > 1e-12 {
		t.Errorf("coef = %g, want 1", coef.AtVec(0))
	}
}

func TestInterpolationMidpoint(t *testing.T) {
	l := NewLassoLars(4)
	l.betaPath = []*mat.VecDense{
		mat.NewVecDense(2, []float64{1, 0}),
		mat.NewVecDense(2, []float64{3, 2}),
	}
	l.lambdaPath = []float64{5, 3}

	if err := l.interpolate(3); err != nil {
		t.Fatal(err)
	}

	got := l.betaPath[1]
	if got.AtVec(0) != 2 || got.AtVec(1) != 1 {
		t.Errorf("interpolated beta = (%g, %g), want (2, 1)", got.AtVec(0), got.AtVec(1))
	}
	if l.lambdaPath[1] != 4 {
		t.Errorf("interpolated lambda = %g, want exactly 4", l.lambdaPath[1])
	}
}

func TestInterpolationGuards(t *testing.T) {
	short := NewLassoLars(1)
	short.betaPath = []*mat.VecDense{mat.NewVecDense(1, nil)}
	short.lambdaPath = []float64{5}
	if err := short.interpolate(3); !isInterpolationError(err) {
		t.Errorf("single path point: got %v, want InterpolationError", err)
	}

	outside := NewLassoLars(7)
	outside.betaPath = []*mat.VecDense{
		mat.NewVecDense(1, nil),
		mat.NewVecDense(1, []float64{1}),
	}
	outside.lambdaPath = []float64{5, 3}
	if err := outside.interpolate(3); !isInterpolationError(err) {
		t.Errorf("target above penultimate: got %v, want InterpolationError", err)
	}
}

func isInterpolationError(err error) bool {
	var ie *errors.InterpolationError
	return errors.As(err, &ie)
}

func TestLassoTargetAboveLambdaMax(t *testing.T) {
	x, y := singleFixture()

	lasso := NewLassoLars(100)
	if err := lasso.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	lambdas, _ := lasso.LambdaPath()
	if len(lambdas) != 1 {
		t.Fatalf("path length = %d, want 1 (zero solution only)", len(lambdas))
	}
	coef, _ := lasso.Coef()
	if coef.AtVec(0) != 0 {
		t.Errorf("coef = %g, want exactly 0", coef.AtVec(0))
	}
}

func TestLassoKickOut(t *testing.T) {
	x, y := kickOutFixture()

	for _, useCholesky := range []bool{true, false} {
		lasso := NewLassoLars(0, WithCholesky(useCholesky))
		if err := lasso.Fit(x, y); err != nil {
			t.Fatalf("cholesky=%t: %v", useCholesky, err)
		}

		// The path must end at the least squares solution.
		coef, _ := lasso.Coef()
		want := []float64{-0.2, 3.1, 2.9}
		for i := range want {
			if math.Abs(coef.AtVec(i)-want[i]) > 1e-8 {
				t.Errorf("cholesky=%t: coef(%d) = %g, want %g", useCholesky, i, coef.AtVec(i), want[i])
			}
		}

		// Predictor 0 entered first with positive correlation but has a
		// negative least squares coefficient, so somewhere along the path
		// it must hit zero and leave the active set.
		path, _ := lasso.CoefPath()
		dropped := false
		for i := 1; i < len(path); i++ {
			if path[i-1].AtVec(0) > 0 && math.Abs(path[i].AtVec(0)) <= 1e-10 {
				dropped = true
				break
			}
		}
		if !dropped {
			t.Errorf("cholesky=%t: expected predictor 0 to be dropped along the path", useCholesky)
		}
	}
}

func TestLassoDropPendingAtFullActiveSet(t *testing.T) {
	x, y := kickOutFixture()

	// The zero crossing for predictor 0 is found in the same step that
	// brings the last predictor in. The scheduled drop must still be
	// consumed with every predictor active, the variable re-entering at
	// the flipped sign, so the path reaches the least squares solution
	// instead of stopping at the breakpoint.
	for _, useCholesky := range []bool{true, false} {
		lasso := NewLassoLars(0, WithCholesky(useCholesky))
		if err := lasso.Fit(x, y); err != nil {
			t.Fatalf("cholesky=%t: %v", useCholesky, err)
		}

		lambdas, _ := lasso.LambdaPath()
		if final := lambdas[len(lambdas)-1]; final > 1e-10 {
			t.Errorf("cholesky=%t: final lambda = %g, path stopped early", useCholesky, final)
		}

		path, _ := lasso.CoefPath()
		pinned := false
		for _, b := range path {
			if b.AtVec(0) == 0 && (b.AtVec(1) != 0 || b.AtVec(2) != 0) {
				pinned = true
				break
			}
		}
		if !pinned {
			t.Errorf("cholesky=%t: expected a path entry with predictor 0 pinned at zero", useCholesky)
		}

		coef, _ := lasso.Coef()
		if coef.AtVec(0) >= 0 {
			t.Errorf("cholesky=%t: coef(0) = %g, want negative after re-entry", useCholesky, coef.AtVec(0))
		}
	}
}

func TestLarsPathLambdaDecreasing(t *testing.T) {
	x, y := kickOutFixture()

	lasso := NewLassoLars(0)
	if err := lasso.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	lambdas, _ := lasso.LambdaPath()
	betas, _ := lasso.CoefPath()
	if len(lambdas) != len(betas) {
		t.Fatalf("path lengths differ: %d lambdas, %d betas", len(lambdas), len(betas))
	}
	for i := 1; i < len(lambdas); i++ {
		if lambdas[i] >= lambdas[i-1] {
			t.Errorf("lambda(%d) = %g not below lambda(%d) = %g", i, lambdas[i], i-1, lambdas[i-1])
		}
	}
}

func TestLassoSparsity(t *testing.T) {
	x, y := kickOutFixture()

	// At lambda 8.4 only the first predictor has entered.
	lasso := NewLassoLars(8.4)
	if err := lasso.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	lambdas, _ := lasso.LambdaPath()
	if got := lambdas[len(lambdas)-1]; got != 8.4 {
		t.Errorf("final lambda = %g, want exactly 8.4", got)
	}

	coef, _ := lasso.Coef()
	nonzero := 0
	for i := 0; i < coef.Len(); i++ {
		if coef.AtVec(i) != 0 {
			nonzero++
		}
	}
	if nonzero != 1 {
		t.Errorf("nonzero coefficients = %d, want 1", nonzero)
	}
	if coef.AtVec(0) <= 0 {
		t.Errorf("coef(0) = %g, want > 0", coef.AtVec(0))
	}

	active, _ := lasso.ActiveSet()
	if len(active) != 1 || active[0] != 0 {
		t.Errorf("active set = %v, want [0]", active)
	}
}

func TestLarsElasticNetExact(t *testing.T) {
	x, y := singleFixture()

	// Ridge strength equal to the squared norm halves the coefficient:
	// beta = 28 / (14 + 14) = 1.
	for _, useCholesky := range []bool{true, false} {
		en := NewLars(WithElasticNet(14), WithCholesky(useCholesky))
		if err := en.Fit(x, y); err != nil {
			t.Fatalf("cholesky=%t: %v", useCholesky, err)
		}

		coef, _ := en.Coef()
		if math.Abs(coef.AtVec(0)-1) > 1e-12 {
			t.Errorf("cholesky=%t: coef = %g, want 1", useCholesky, coef.AtVec(0))
		}
	}
}

func TestLarsUpdateColumnsRefit(t *testing.T) {
	x, y := kickOutFixture()

	lars := NewLars(WithCholesky(false))
	if err := lars.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	newCol := mat.NewDense(4, 1, []float64{0, 2, 1, 1})
	if err := lars.UpdateColumns([]int{1}, newCol); err != nil {
		t.Fatal(err)
	}
	if err := lars.Refit(); err != nil {
		t.Fatal(err)
	}

	// A fresh fit on the modified matrix is the reference.
	x2, _ := kickOutFixture()
	x2.SetCol(1, []float64{0, 2, 1, 1})
	fresh := NewLars(WithCholesky(false))
	if err := fresh.Fit(x2, y); err != nil {
		t.Fatal(err)
	}

	got, _ := lars.Coef()
	want, _ := fresh.Coef()
	for i := 0; i < want.Len(); i++ {
		if math.Abs(got.AtVec(i)-want.AtVec(i)) > 1e-10 {
			t.Errorf("coef(%d) = %g, want %g", i, got.AtVec(i), want.AtVec(i))
		}
	}

	gl, _ := lars.LambdaPath()
	wl, _ := fresh.LambdaPath()
	if len(gl) != len(wl) {
		t.Fatalf("path lengths differ: %d vs %d", len(gl), len(wl))
	}
	for i := range gl {
		if math.Abs(gl[i]-wl[i]) > 1e-10 {
			t.Errorf("lambda(%d) = %g, want %g", i, gl[i], wl[i])
		}
	}
}

func TestLarsSetResponseRefit(t *testing.T) {
	x, y := kickOutFixture()

	lars := NewLars()
	if err := lars.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	y2 := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	if err := lars.SetResponse(y2); err != nil {
		t.Fatal(err)
	}
	if err := lars.Refit(); err != nil {
		t.Fatal(err)
	}

	fresh := NewLars()
	if err := fresh.Fit(x, y2); err != nil {
		t.Fatal(err)
	}

	got, _ := lars.Coef()
	want, _ := fresh.Coef()
	for i := 0; i < want.Len(); i++ {
		if math.Abs(got.AtVec(i)-want.AtVec(i)) > 1e-10 {
			t.Errorf("coef(%d) = %g, want %g", i, got.AtVec(i), want.AtVec(i))
		}
	}
}

func TestLarsRefitLambda(t *testing.T) {
	x, y := singleFixture()

	lars := NewLars()
	if err := lars.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	if err := lars.RefitLambda(14); err != nil {
		t.Fatal(err)
	}

	coef, _ := lars.Coef()
	if math.Abs(coef.AtVec(0)-1) > 1e-12 {
		t.Errorf("coef after RefitLambda = %g, want 1", coef.AtVec(0))
	}
	lambdas, _ := lars.LambdaPath()
	if lambdas[len(lambdas)-1] != 14 {
		t.Errorf("final lambda = %g, want 14", lambdas[len(lambdas)-1])
	}
}

func TestLarsNotFitted(t *testing.T) {
	lars := NewLars()
	x, _ := singleFixture()

	if _, err := lars.Predict(x); !isNotFitted(err) {
		t.Errorf("Predict before Fit: got %v, want NotFittedError", err)
	}
	if _, err := lars.Coef(); !isNotFitted(err) {
		t.Errorf("Coef before Fit: got %v, want NotFittedError", err)
	}
	if _, err := lars.CoefPath(); !isNotFitted(err) {
		t.Errorf("CoefPath before Fit: got %v, want NotFittedError", err)
	}
	if _, err := lars.LambdaPath(); !isNotFitted(err) {
		t.Errorf("LambdaPath before Fit: got %v, want NotFittedError", err)
	}
	if err := lars.Refit(); !isNotFitted(err) {
		t.Errorf("Refit before Fit: got %v, want NotFittedError", err)
	}
	if lars.IsFitted() {
		t.Error("IsFitted should be false before Fit")
	}
}

func isNotFitted(err error) bool {
	var nf *errors.NotFittedError
	return errors.As(err, &nf)
}

func TestLarsDimensionErrors(t *testing.T) {
	x, _ := kickOutFixture()

	short := mat.NewDense(2, 1, []float64{1, 2})
	lars := NewLars()
	if err := lars.Fit(x, short); err == nil {
		t.Error("expected error for row count mismatch")
	}

	wide := mat.NewDense(4, 2, nil)
	if err := lars.Fit(x, wide); err == nil {
		t.Error("expected error for multi-column response")
	}

	_, y := kickOutFixture()
	if err := lars.Fit(x, y); err != nil {
		t.Fatal(err)
	}
	narrow := mat.NewDense(4, 2, nil)
	if _, err := lars.Predict(narrow); err == nil {
		t.Error("expected error for predictor count mismatch")
	}

	bad := mat.NewDense(3, 1, nil)
	if err := lars.SetResponse(bad); err == nil {
		t.Error("expected error for response length mismatch")
	}
	tall := mat.NewDense(5, 1, nil)
	if _, err := lars.Score(x, tall); err == nil {
		t.Error("expected error for response row count mismatch in Score")
	}
	if err := lars.UpdateColumns([]int{5}, mat.NewDense(4, 1, nil)); err == nil {
		t.Error("expected error for out-of-range predictor index")
	}
}

func TestLarsCoefPathReturnsCopies(t *testing.T) {
	x, y := kickOutFixture()

	lasso := NewLassoLars(0)
	if err := lasso.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	first, _ := lasso.CoefPath()
	first[len(first)-1].SetVec(0, 12345)

	second, _ := lasso.CoefPath()
	if second[len(second)-1].AtVec(0) == 12345 {
		t.Error("CoefPath must return copies, internal path was mutated")
	}
}

func TestLarsGetSetParams(t *testing.T) {
	lars := NewLassoLars(0.5, WithElasticNet(2), WithCholesky(false))

	params := lars.GetParams()
	if params["lasso"] != true || params["desired_lambda"] != 0.5 {
		t.Errorf("unexpected params: %v", params)
	}
	if params["elastic_net"] != true || params["lambda2"] != 2.0 {
		t.Errorf("unexpected params: %v", params)
	}
	if params["use_cholesky"] != false {
		t.Errorf("unexpected params: %v", params)
	}

	clone := NewLars()
	if err := clone.SetParams(params); err != nil {
		t.Fatal(err)
	}
	if clone.desiredLambda != 0.5 || !clone.lasso || !clone.elasticNet || clone.lambda2 != 2 {
		t.Errorf("params not applied: %s", clone.String())
	}

	if err := clone.SetParams(map[string]interface{}{"bogus": 1}); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestLarsExportImportWeights(t *testing.T) {
	x, y := kickOutFixture()

	lasso := NewLassoLars(0.5)
	if err := lasso.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	weights, err := lasso.ExportWeights()
	if err != nil {
		t.Fatal(err)
	}
	data, err := weights.ToJSON()
	if err != nil {
		t.Fatal(err)
	}

	var roundTripped = weights.Clone()
	if err := roundTripped.FromJSON(data); err != nil {
		t.Fatal(err)
	}

	restored := NewLassoLars(0.5)
	if err := restored.ImportWeights(roundTripped); err != nil {
		t.Fatal(err)
	}

	wantPred, err := lasso.Predict(x)
	if err != nil {
		t.Fatal(err)
	}
	gotPred, err := restored.Predict(x)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if math.Abs(gotPred.At(i, 0)-wantPred.At(i, 0)) > 1e-12 {
			t.Errorf("pred(%d) = %g, want %g", i, gotPred.At(i, 0), wantPred.At(i, 0))
		}
	}
}

func TestLarsInvalidHyperparameters(t *testing.T) {
	x, y := singleFixture()

	if err := NewLassoLars(-1).Fit(x, y); err == nil {
		t.Error("expected error for negative desired lambda")
	}
	if err := NewLars(WithElasticNet(-3)).Fit(x, y); err == nil {
		t.Error("expected error for negative ridge strength")
	}
	if err := NewLars().RefitLambda(-1); err == nil {
		t.Error("expected error for negative lambda in RefitLambda")
	}
}

func TestLarsClone(t *testing.T) {
	x, y := singleFixture()

	lasso := NewLassoLars(14, WithCholesky(false))
	if err := lasso.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	clone := lasso.Clone()
	if clone.IsFitted() {
		t.Error("clone must be unfitted")
	}
	if clone.desiredLambda != 14 || !clone.lasso || clone.useCholesky {
		t.Errorf("clone lost hyperparameters: %s", clone.String())
	}

	if err := clone.Fit(x, y); err != nil {
		t.Fatal(err)
	}
	got, _ := clone.Coef()
	want, _ := lasso.Coef()
	if math.Abs(got.AtVec(0)-want.AtVec(0)) > 1e-12 {
		t.Errorf("clone coef = %g, want %g", got.AtVec(0), want.AtVec(0))
	}
}
