package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/selago-ml/selago/pkg/errors"
)

func TestLinearRegressionFitExactLine(t *testing.T) {
	// y = 2x + 1
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	weights := lr.GetWeights()
	if len(weights) != 1 || math.Abs(weights[0]-2) > 1e-8 {
		t.Errorf("weights = %v, want [2]", weights)
	}
	if math.Abs(lr.GetIntercept()-1) > 1e-8 {
		t.Errorf("intercept = %v, want 1", lr.GetIntercept())
	}

	pred, err := lr.Predict(mat.NewDense(2, 1, []float64{5, 6}))
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if math.Abs(pred.At(0, 0)-11) > 1e-8 || math.Abs(pred.At(1, 0)-13) > 1e-8 {
		t.Errorf("predictions = [%v %v], want [11 13]", pred.At(0, 0), pred.At(1, 0))
	}
}

func TestLinearRegressionMultipleFeatures(t *testing.T) {
	// y = x1 + 2*x2
	X := mat.NewDense(4, 2, []float64{
		1, 1,
		2, 1,
		1, 2,
		2, 2,
	})
	y := mat.NewDense(4, 1, []float64{3, 4, 5, 6})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	weights := lr.GetWeights()
	if math.Abs(weights[0]-1) > 1e-8 || math.Abs(weights[1]-2) > 1e-8 {
		t.Errorf("weights = %v, want [1 2]", weights)
	}
	if math.Abs(lr.GetIntercept()) > 1e-8 {
		t.Errorf("intercept = %v, want 0", lr.GetIntercept())
	}
}

func TestLinearRegressionInputValidation(t *testing.T) {
	tests := []struct {
		name string
		X    *mat.Dense
		y    *mat.Dense
	}{
		{
			name: "row count mismatch",
			X:    mat.NewDense(3, 1, []float64{1, 2, 3}),
			y:    mat.NewDense(2, 1, []float64{1, 2}),
		},
		{
			name: "y not a column vector",
			X:    mat.NewDense(2, 1, []float64{1, 2}),
			y:    mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewLinearRegression().Fit(tt.X, tt.y); err == nil {
				t.Error("Fit() succeeded, want error")
			}
		})
	}
}

func TestLinearRegressionNotFitted(t *testing.T) {
	lr := NewLinearRegression()

	_, err := lr.Predict(mat.NewDense(1, 1, []float64{1}))
	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("Predict() error = %v, want NotFittedError", err)
	}
}

func TestLinearRegressionScore(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	y := mat.NewDense(5, 1, []float64{2, 4, 6, 8, 10})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	r2, err := lr.Score(X, y)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if math.Abs(r2-1.0) > 1e-10 {
		t.Errorf("Score() = %v, want 1.0", r2)
	}
}

func TestLinearRegressionCloneIsUnfitted(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	clone := lr.Clone()
	if _, err := clone.Predict(X); err == nil {
		t.Error("clone must not inherit fitted state")
	}
}

func TestRidgeShrinksTowardZero(t *testing.T) {
	X := mat.NewDense(6, 1, []float64{-2, -1, 0, 1, 2, 3})
	y := mat.NewDense(6, 1, []float64{-4.1, -2.2, 0.1, 2.2, 3.9, 6.1})

	ols := NewLinearRegression()
	if err := ols.Fit(X, y); err != nil {
		t.Fatalf("OLS Fit() error = %v", err)
	}

	ridge := NewRidge(10.0)
	if err := ridge.Fit(X, y); err != nil {
		t.Fatalf("Ridge Fit() error = %v", err)
	}

	olsW := math.Abs(ols.GetWeights()[0])
	ridgeW := math.Abs(ridge.Weights.AtVec(0))
	if ridgeW >= olsW {
		t.Errorf("ridge weight %v not smaller than OLS weight %v", ridgeW, olsW)
	}
}

func TestRidgeZeroAlphaMatchesOLS(t *testing.T) {
	X := mat.NewDense(5, 2, []float64{
		1, 0.5,
		2, 1.1,
		3, 2.3,
		4, 2.9,
		5, 4.2,
	})
	y := mat.NewDense(5, 1, []float64{2.1, 3.9, 6.2, 7.8, 10.1})

	ols := NewLinearRegression()
	if err := ols.Fit(X, y); err != nil {
		t.Fatalf("OLS Fit() error = %v", err)
	}
	ridge := NewRidge(0)
	if err := ridge.Fit(X, y); err != nil {
		t.Fatalf("Ridge Fit() error = %v", err)
	}

	for i, w := range ols.GetWeights() {
		if math.Abs(w-ridge.Weights.AtVec(i)) > 1e-8 {
			t.Errorf("weight %d: OLS %v vs ridge(0) %v", i, w, ridge.Weights.AtVec(i))
		}
	}
	if math.Abs(ols.GetIntercept()-ridge.Intercept) > 1e-8 {
		t.Errorf("intercepts differ: %v vs %v", ols.GetIntercept(), ridge.Intercept)
	}
}

func TestRidgeRejectsNegativeAlpha(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})
	y := mat.NewDense(2, 1, []float64{1, 2})

	if err := NewRidge(-1).Fit(X, y); err == nil {
		t.Error("negative alpha must error")
	}
}
