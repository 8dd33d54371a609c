package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	yPred := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	mse, err := MSE(yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}
	if mse != 0 {
		t.Errorf("perfect prediction should give MSE 0, got %g", mse)
	}

	yPred2 := mat.NewVecDense(4, []float64{2, 3, 4, 5})
	mse, err = MSE(yTrue, yPred2)
	if err != nil {
		t.Fatal(err)
	}
	if mse != 1 {
		t.Errorf("constant offset of 1 should give MSE 1, got %g", mse)
	}
}

func TestMSEDimensionMismatch(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})
	yPred := mat.NewVecDense(2, []float64{1, 2})

	if _, err := MSE(yTrue, yPred); err == nil {
		t.Error("expected dimension error")
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(2, []float64{0, 0})
	yPred := mat.NewVecDense(2, []float64{3, 4})

	rmse, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(12.5)
	if math.Abs(rmse-want) > 1e-12 {
		t.Errorf("RMSE = %g, want %g", rmse, want)
	}
}

func TestMAE(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})
	yPred := mat.NewVecDense(3, []float64{2, 2, 1})

	mae, err := MAE(yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}
	if mae != 1 {
		t.Errorf("MAE = %g, want 1", mae)
	}
}

func TestR2Score(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	perfect, err := R2Score(yTrue, mat.NewVecDense(4, []float64{1, 2, 3, 4}))
	if err != nil {
		t.Fatal(err)
	}
	if perfect != 1 {
		t.Errorf("perfect prediction should give R2 = 1, got %g", perfect)
	}

	// 平均値で予測した場合はR² = 0になる
	meanPred := mat.NewVecDense(4, []float64{2.5, 2.5, 2.5, 2.5})
	zero, err := R2Score(yTrue, meanPred)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(zero) > 1e-12 {
		t.Errorf("mean prediction should give R2 = 0, got %g", zero)
	}
}

func TestR2ScoreNoVariance(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{5, 5, 5})
	yPred := mat.NewVecDense(3, []float64{5, 5, 5})

	if _, err := R2Score(yTrue, yPred); err == nil {
		t.Error("expected error when yTrue has no variance")
	}
}

func TestMSEMatrix(t *testing.T) {
	yTrue := mat.NewDense(3, 1, []float64{1, 2, 3})
	yPred := mat.NewDense(3, 1, []float64{1, 2, 3})

	mse, err := MSEMatrix(yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}
	if mse != 0 {
		t.Errorf("MSEMatrix = %g, want 0", mse)
	}

	wide := mat.NewDense(3, 2, nil)
	if _, err := MSEMatrix(wide, wide); err == nil {
		t.Error("expected error for non column-vector input")
	}
}
